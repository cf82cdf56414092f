// Package phh exports parsed hand records to the PHH (Poker Hand History)
// TOML document format. Only the structure the parser actually recovers is
// emitted: seats, stacks, blinds, hero and board deals. The raw action
// lines, which the core deliberately leaves unparsed, are carried as PHH
// comment actions so nothing from the source text is lost.
package phh

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pokertools/handhistory/hand"
)

// HandHistory is a single hand encoded in PHH format.
type HandHistory struct {
	Variant           string         `toml:"variant"`
	Table             string         `toml:"table,omitempty"`
	SeatCount         int            `toml:"seat_count,omitempty"`
	Seats             []int          `toml:"seats,omitempty"`
	Antes             []int          `toml:"antes"`
	BlindsOrStraddles []int          `toml:"blinds_or_straddles"`
	MinBet            int            `toml:"min_bet"`
	StartingStacks    []int          `toml:"starting_stacks"`
	Actions           []string       `toml:"actions"`
	Players           []string       `toml:"players,omitempty"`
	HandID            string         `toml:"hand"`
	Time              string         `toml:"time,omitempty"`
	TimeZoneAbbrev    string         `toml:"time_zone_abbreviation,omitempty"`
	Day               int            `toml:"day,omitempty"`
	Month             int            `toml:"month,omitempty"`
	Year              int            `toml:"year,omitempty"`
	Metadata          map[string]any `toml:"metadata,omitempty"`
}

// variantCodes maps game and limit to the PHH variant code.
var variantCodes = map[hand.Game]map[hand.Limit]string{
	hand.Holdem: {
		hand.NoLimit:    "NT",
		hand.FixedLimit: "FT",
	},
	hand.Omaha: {
		hand.PotLimit: "PO",
	},
}

// FromHand converts a parsed record into a PHH document.
func FromHand(h *hand.Hand) (*HandHistory, error) {
	variant, ok := variantCodes[h.Game][h.Limit]
	if !ok {
		return nil, &hand.UnknownFieldError{
			Field: "variant",
			Value: fmt.Sprintf("%s %s", h.Game, h.Limit),
		}
	}

	var (
		seats   []int
		players []string
		stacks  []int
	)
	for i, seat := range h.Seats {
		if seat.Empty() {
			continue
		}
		seats = append(seats, i+1)
		players = append(players, seat.Name)
		stacks = append(stacks, seat.Stack)
	}

	doc := &HandHistory{
		Variant:           variant,
		Table:             h.TableName,
		SeatCount:         h.MaxSeats,
		Seats:             seats,
		Antes:             make([]int, len(players)),
		BlindsOrStraddles: []int{int(h.SmallBlind.IntPart()), int(h.BigBlind.IntPart())},
		MinBet:            int(h.BigBlind.IntPart()),
		StartingStacks:    stacks,
		Actions:           buildActions(h, players),
		Players:           players,
		HandID:            h.ID,
		Time:              h.Date.Format("15:04:05"),
		TimeZoneAbbrev:    "ET",
		Day:               h.Date.Day(),
		Month:             int(h.Date.Month()),
		Year:              h.Date.Year(),
		Metadata: map[string]any{
			"room":       h.Room,
			"tournament": h.TournamentID,
			"level":      h.TournamentLevel,
			"total_pot":  h.TotalPot,
			"rake":       h.PotRake,
			"winners":    h.Winners,
		},
	}
	return doc, nil
}

// buildActions emits the deal actions the parser recovered plus the raw
// betting lines as PHH comments.
func buildActions(h *hand.Hand, players []string) []string {
	var actions []string

	if h.HeroName != "" {
		for i, name := range players {
			if name == h.HeroName {
				actions = append(actions, fmt.Sprintf("d dh p%d %s", i+1, cardCode(h.HoleCards)))
				break
			}
		}
	}

	for _, line := range h.Preflop {
		actions = append(actions, "# "+line)
	}
	if h.Flop != nil {
		if flop := h.FlopCards(); len(flop) == 3 {
			actions = append(actions, "d db "+cardCode(flop))
		}
		actions = appendComments(actions, h.Flop.Actions)
	}
	if turn, ok := h.TurnCard(); ok && h.Turn != nil {
		actions = append(actions, "d db "+turn.String())
		actions = appendComments(actions, h.Turn.Actions)
	}
	if river, ok := h.RiverCard(); ok && h.River != nil {
		actions = append(actions, "d db "+river.String())
		actions = appendComments(actions, h.River.Actions)
	}
	return actions
}

func appendComments(actions []string, lines []string) []string {
	for _, line := range lines {
		actions = append(actions, "# "+line)
	}
	return actions
}

func cardCode(cards []hand.Card) string {
	var b strings.Builder
	for _, c := range cards {
		b.WriteString(c.String())
	}
	return b.String()
}

// Encode writes the hand history to the provided writer in PHH TOML format.
func Encode(w io.Writer, doc *HandHistory) error {
	if doc == nil {
		return fmt.Errorf("phh: hand history is nil")
	}

	enc := toml.NewEncoder(w)
	// Use tabs for arrays to match human expectations
	enc.Indent = "\t"
	return enc.Encode(doc)
}

// EncodeToBytes encodes and returns the result as bytes.
func EncodeToBytes(doc *HandHistory) ([]byte, error) {
	var buf strings.Builder
	if err := Encode(&buf, doc); err != nil {
		return nil, err
	}
	return []byte(buf.String()), nil
}
