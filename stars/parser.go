// Package stars parses PokerStars tournament hand-history exports into
// hand.Hand records. A parse runs a fixed pipeline: the raw text is split
// into line tokens on section markers, the first token is matched against
// the header grammar, and the body extractors pull table, seating, hole
// cards, streets, pot, board and winners out of the token stream using the
// section-boundary indices recorded during splitting.
//
// Parsers hold no per-hand state, so a single Parser is safe for concurrent
// use across goroutines; each parse works on private scratch data only.
package stars

import (
	"io"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // the room reports in ET regardless of host zoneinfo

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"github.com/pokertools/handhistory/hand"
)

// Room identifies PokerStars in parsed records.
const Room = "STARS"

const dateFormat = "2006/01/02 15:04:05"

// et is the room's reporting zone. Timestamps in brackets are always ET.
var et = mustLoadLocation("America/New_York")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Parser parses PokerStars tournament hands.
type Parser struct {
	logger *log.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger attaches a logger that receives per-stage debug output.
func WithLogger(logger *log.Logger) Option {
	return func(p *Parser) {
		p.logger = logger
	}
}

// NewParser creates a Parser. Without options it parses silently.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse is a convenience wrapper around NewParser().Parse.
func Parse(text string) (*hand.Hand, error) {
	return NewParser().Parse(text)
}

// ParseHeader is a convenience wrapper around NewParser().ParseHeader.
func ParseHeader(text string) (*hand.Hand, error) {
	return NewParser().ParseHeader(text)
}

// document is the per-parse scratch state: the token stream, the indices of
// the empty tokens that mark section boundaries, and the record being built.
// It never outlives one Parse call.
type document struct {
	tokens       []string
	sections     []int
	h            *hand.Hand
	headerParsed bool
}

func newDocument(text string) *document {
	tokens := splitPattern.Split(strings.TrimSpace(text), -1)
	var sections []int
	for i, tok := range tokens {
		if tok == "" {
			sections = append(sections, i)
		}
	}
	return &document{
		tokens:   tokens,
		sections: sections,
		h:        &hand.Hand{Room: Room},
	}
}

func (d *document) token(i int) (string, bool) {
	if i < 0 || i >= len(d.tokens) {
		return "", false
	}
	return d.tokens[i], true
}

// Parse converts one raw hand-history text into a Hand. The record is
// returned only after every extraction step succeeded; on error no partial
// record escapes.
func (p *Parser) Parse(text string) (*hand.Hand, error) {
	doc := newDocument(text)
	if err := p.parseHeader(doc); err != nil {
		return nil, err
	}
	if err := p.parseBody(doc); err != nil {
		return nil, err
	}
	return doc.h, nil
}

// ParseHeader parses only the first line of a hand history and returns a
// record with just the header fields populated. Useful for cheap filtering
// before a full parse.
func (p *Parser) ParseHeader(text string) (*hand.Hand, error) {
	doc := newDocument(text)
	if err := p.parseHeader(doc); err != nil {
		return nil, err
	}
	return doc.h, nil
}

func (p *Parser) parseHeader(d *document) error {
	first, ok := d.token(0)
	if !ok {
		return &hand.GrammarError{Section: "header"}
	}
	m := headerPattern.FindStringSubmatch(first)
	if m == nil {
		return &hand.GrammarError{Section: "header", Line: first}
	}
	groups := make(map[string]string, len(m))
	for i, name := range headerPattern.SubexpNames() {
		if name != "" {
			groups[name] = m[i]
		}
	}

	h := d.h
	h.ID = groups["ident"]
	h.TournamentID = groups["tournament_ident"]
	h.TournamentLevel = groups["level"]

	var err error
	if h.GameType, err = hand.GameTypeFromString(groups["game_type"]); err != nil {
		return err
	}
	if h.Game, err = hand.GameFromString(groups["game"]); err != nil {
		return err
	}
	if h.Limit, err = hand.LimitFromString(groups["limit"]); err != nil {
		return err
	}
	if h.Currency, err = hand.CurrencyFromString(groups["currency"]); err != nil {
		return err
	}

	for _, field := range []struct {
		name string
		dst  *decimal.Decimal
	}{
		{"buyin", &h.BuyIn},
		{"rake", &h.Rake},
		{"sb", &h.SmallBlind},
		{"bb", &h.BigBlind},
	} {
		value, err := decimal.NewFromString(groups[field.name])
		if err != nil {
			return &hand.GrammarError{Section: "header", Line: first}
		}
		*field.dst = value
	}

	date, err := time.ParseInLocation(dateFormat, groups["date"], et)
	if err != nil {
		return &hand.GrammarError{Section: "header", Line: first}
	}
	h.Date = date

	d.headerParsed = true
	p.logger.Debug("parsed header", "hand", h.ID, "tournament", h.TournamentID, "level", h.TournamentLevel)
	return nil
}

func (p *Parser) parseBody(d *document) error {
	if !d.headerParsed {
		if err := p.parseHeader(d); err != nil {
			return err
		}
	}
	if len(d.sections) < 2 {
		return &hand.GrammarError{Section: "section boundaries"}
	}

	steps := []func(*document) error{
		p.parseTable,
		p.parseSeats,
		p.parseHoleCards,
		p.parsePreflop,
		p.parseStreets,
		p.parsePot,
		p.parseBoard,
		p.parseWinners,
	}
	for _, step := range steps {
		if err := step(d); err != nil {
			return err
		}
	}
	p.logger.Debug("parsed hand", "hand", d.h.ID, "winners", d.h.Winners, "pot", d.h.TotalPot)
	return nil
}

func (p *Parser) parseTable(d *document) error {
	line, ok := d.token(1)
	if !ok {
		return &hand.GrammarError{Section: "table line"}
	}
	m := tablePattern.FindStringSubmatch(line)
	if m == nil {
		return &hand.GrammarError{Section: "table line", Line: line}
	}
	maxSeats, err := strconv.Atoi(m[2])
	if err != nil {
		return &hand.GrammarError{Section: "table line", Line: line}
	}
	buttonSeat, err := strconv.Atoi(m[3])
	if err != nil {
		return &hand.GrammarError{Section: "table line", Line: line}
	}

	h := d.h
	h.TableName = m[1]
	h.MaxSeats = maxSeats
	h.ButtonSeat = buttonSeat

	if h.MaxSeats < 2 || h.MaxSeats > 10 {
		return &hand.UnknownFieldError{Field: "seat_count", Value: m[2]}
	}
	if h.ButtonSeat < 1 || h.ButtonSeat > h.MaxSeats {
		return &hand.InconsistentDataError{
			Field:  "button_seat",
			Value:  m[3],
			Detail: "outside the table's seat range",
		}
	}
	return nil
}

func (p *Parser) parseSeats(d *document) error {
	h := d.h
	h.Seats = make([]hand.Seat, h.MaxSeats)
	for num := 1; num <= h.MaxSeats; num++ {
		h.Seats[num-1] = hand.EmptySeat(num)
	}

	// The seat listing starts right after the table line and ends at the
	// first non-matching token (usually a blind post).
	for i := 2; i < len(d.tokens); i++ {
		m := seatPattern.FindStringSubmatch(d.tokens[i])
		if m == nil {
			break
		}
		num, err := strconv.Atoi(m[1])
		if err != nil {
			return &hand.GrammarError{Section: "seat line", Line: d.tokens[i]}
		}
		if num < 1 || num > h.MaxSeats {
			return &hand.InconsistentDataError{
				Field:  "seat",
				Value:  m[1],
				Detail: "outside the table's seat range",
			}
		}
		stack, err := strconv.Atoi(m[3])
		if err != nil {
			return &hand.GrammarError{Section: "seat line", Line: d.tokens[i]}
		}
		h.Seats[num-1] = hand.Seat{Name: m[2], Stack: stack}
	}

	h.Button = h.Seats[h.ButtonSeat-1].Name
	p.logger.Debug("parsed seats", "hand", h.ID, "max", h.MaxSeats, "button", h.Button)
	return nil
}

func (p *Parser) parseHoleCards(d *document) error {
	line, ok := d.token(d.sections[0] + 2)
	if !ok {
		return nil
	}
	m := dealtToPattern.FindStringSubmatch(line)
	if m == nil {
		// No hero reveal: the viewpoint player was not dealt in.
		return nil
	}
	h := d.h
	h.HeroName = m[1]
	cards, err := hand.ParseCards([]string{m[2], m[3]})
	if err != nil {
		return err
	}
	h.HoleCards = cards

	for i, seat := range h.Seats {
		if seat.Name == h.HeroName {
			h.HeroSeat = i + 1
			return nil
		}
	}
	return &hand.InconsistentDataError{
		Field:  "hero",
		Value:  h.HeroName,
		Detail: "not found among seated players",
	}
}

func (p *Parser) parsePreflop(d *document) error {
	start := d.sections[0] + 3
	stop := d.sections[1]
	if start > stop || stop > len(d.tokens) {
		return &hand.GrammarError{Section: "preflop actions"}
	}
	actions := d.tokens[start:stop]
	if len(actions) == 0 {
		return &hand.GrammarError{Section: "preflop actions"}
	}
	d.h.Preflop = append([]string(nil), actions...)
	return nil
}

func (p *Parser) parseStreets(d *document) error {
	d.h.Flop = d.street(markerFlop)
	d.h.Turn = d.street(markerTurn)
	d.h.River = d.street(markerRiver)
	for _, tok := range d.tokens {
		if tok == markerShowDown {
			d.h.ShowDown = true
			break
		}
	}
	return nil
}

// street locates a street by its marker token. A missing marker means the
// hand ended earlier and yields nil; a present marker yields a Street whose
// actions run from two tokens past the marker (skipping the board echo) to
// the next section boundary, possibly empty.
func (d *document) street(marker string) *hand.Street {
	idx := -1
	for i, tok := range d.tokens {
		if tok == marker {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil
	}
	start := idx + 2
	stop := -1
	for i := start; i < len(d.tokens); i++ {
		if d.tokens[i] == "" {
			stop = i
			break
		}
	}
	if stop == -1 {
		return nil
	}
	return &hand.Street{Actions: append([]string(nil), d.tokens[start:stop]...)}
}

func (p *Parser) parsePot(d *document) error {
	line, ok := d.token(d.lastSection() + 2)
	if !ok {
		return &hand.GrammarError{Section: "pot line"}
	}
	m := potPattern.FindStringSubmatch(line)
	if m == nil {
		return &hand.GrammarError{Section: "pot line", Line: line}
	}
	totalPot, err := strconv.Atoi(m[1])
	if err != nil {
		return &hand.GrammarError{Section: "pot line", Line: line}
	}
	rake, err := strconv.Atoi(m[2])
	if err != nil {
		return &hand.GrammarError{Section: "pot line", Line: line}
	}
	d.h.TotalPot = totalPot
	d.h.PotRake = rake
	return nil
}

func (p *Parser) parseBoard(d *document) error {
	line, ok := d.token(d.lastSection() + 3)
	if !ok || !strings.HasPrefix(line, boardPrefix) {
		// No board line: the hand ended before any community cards.
		return nil
	}
	tokens := cardPattern.FindAllString(line, -1)
	cards, err := hand.ParseCards(tokens)
	if err != nil {
		return err
	}
	switch len(cards) {
	case 3, 4, 5:
		d.h.Board = cards
	default:
		return &hand.GrammarError{Section: "board line", Line: line}
	}
	return nil
}

func (p *Parser) parseWinners(d *document) error {
	h := d.h
	seen := make(map[string]bool)
	for i := d.lastSection() + 4; i < len(d.tokens); i++ {
		line := d.tokens[i]
		var m []string
		switch {
		case !h.ShowDown && strings.Contains(line, "collected"):
			m = winnerPattern.FindStringSubmatch(line)
		case h.ShowDown && strings.Contains(line, "won"):
			m = showdownPattern.FindStringSubmatch(line)
		default:
			continue
		}
		if m == nil {
			return &hand.GrammarError{Section: "winner line", Line: line}
		}
		if name := m[2]; !seen[name] {
			seen[name] = true
			h.Winners = append(h.Winners, name)
		}
	}
	return nil
}

func (d *document) lastSection() int {
	return d.sections[len(d.sections)-1]
}

// AnteAmount extracts the posted ante from a single action line, for callers
// that inspect the raw action strings the core leaves unparsed.
func AnteAmount(line string) (player string, amount int, ok bool) {
	m := antePattern.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}
	amount, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, false
	}
	return m[1], amount, true
}
