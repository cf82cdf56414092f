// Package hand defines the structured representation of a single parsed
// poker hand history: header metadata, seating, per-street actions, the
// board, and payout results. Room-specific parsers (such as package stars)
// populate a Hand and return it only once every extraction step has
// succeeded; after that the record is read-only.
package hand

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Seat is one position at the table. Seats that were never listed in the
// hand text are filled with deterministic placeholders so every seat number
// from 1 to the table maximum resolves to an entry.
type Seat struct {
	Name  string
	Stack int
}

// EmptySeat returns the placeholder entry for an unoccupied seat number.
func EmptySeat(num int) Seat {
	return Seat{Name: fmt.Sprintf("Empty Seat %d", num)}
}

// Empty reports whether the seat holds the unoccupied placeholder.
func (s Seat) Empty() bool {
	return s.Stack == 0 && strings.HasPrefix(s.Name, "Empty Seat ")
}

// Street holds the recorded action lines of one dealt betting round. A nil
// *Street on the Hand means the street never occurred; a non-nil Street with
// no actions means it was dealt but nothing was recorded for it.
type Street struct {
	Actions []string
}

// Hand is one fully parsed hand history. All fields are populated by a room
// parser before the record is returned and must not be mutated afterwards;
// concurrent reads are safe.
type Hand struct {
	// Identity
	Room            string
	ID              string
	TournamentID    string
	TournamentLevel string

	// Classification
	GameType GameType
	Game     Game
	Limit    Limit

	// Stakes, in the tournament's real-money currency. Exact decimals;
	// money never touches a float.
	Currency   Currency
	BuyIn      decimal.Decimal
	Rake       decimal.Decimal
	SmallBlind decimal.Decimal
	BigBlind   decimal.Decimal

	// Date is the hand timestamp in the room's reporting zone (ET).
	Date time.Time

	// Table
	TableName  string
	MaxSeats   int
	ButtonSeat int    // 1-based
	Button     string // name of the player on the button

	// Seats has length MaxSeats; seat number n is Seats[n-1].
	Seats []Seat

	// Hero, set only when the text contains a "Dealt to" reveal.
	HeroName  string
	HeroSeat  int    // 1-based, 0 when there is no hero
	HoleCards []Card // exactly two cards when set

	// Streets. Preflop actions are mandatory; later streets are nil when
	// the hand ended before them.
	Preflop []string
	Flop    *Street
	Turn    *Street
	River   *Street

	ShowDown bool

	// Pot totals in chips.
	TotalPot int
	PotRake  int

	// Board is the community cards in deal order: 0, 3, 4 or 5 cards.
	Board []Card

	// Winners are the players who collected the pot, deduplicated and in
	// first-seen order. Position tags from the summary lines ("(button)",
	// "(big blind)") are not part of the name.
	Winners []string
}

// String identifies the hand for logs and debugging.
func (h *Hand) String() string {
	return fmt.Sprintf("<%s hand #%s>", h.Room, h.ID)
}

// SeatAt returns the entry for a 1-based seat number.
func (h *Hand) SeatAt(num int) (Seat, bool) {
	if num < 1 || num > len(h.Seats) {
		return Seat{}, false
	}
	return h.Seats[num-1], true
}

// FlopCards returns the first three board cards, or nil if no flop was dealt.
func (h *Hand) FlopCards() []Card {
	if len(h.Board) < 3 {
		return nil
	}
	return h.Board[:3]
}

// TurnCard returns the fourth board card if it was dealt.
func (h *Hand) TurnCard() (Card, bool) {
	if len(h.Board) < 4 {
		return Card{}, false
	}
	return h.Board[3], true
}

// RiverCard returns the fifth board card if it was dealt.
func (h *Hand) RiverCard() (Card, bool) {
	if len(h.Board) < 5 {
		return Card{}, false
	}
	return h.Board[4], true
}
