package hand

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the suit letter used in hand-history notation
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Two:
		return "2"
	case Three:
		return "3"
	case Four:
		return "4"
	case Five:
		return "5"
	case Six:
		return "6"
	case Seven:
		return "7"
	case Eight:
		return "8"
	case Nine:
		return "9"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		return "?"
	}
}

// Card represents a playing card
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a new card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the two-character hand-history notation (e.g., "Ah")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// Value returns the numeric value of the card for comparison.
// Aces are high (14)
func (c Card) Value() int {
	return int(c.Rank)
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsFaceCard returns true if the card is a face card (J, Q, K)
func (c Card) IsFaceCard() bool {
	return c.Rank >= Jack && c.Rank <= King
}

var ranksByLetter = map[byte]Rank{
	'2': Two, '3': Three, '4': Four, '5': Five, '6': Six,
	'7': Seven, '8': Eight, '9': Nine, 'T': Ten,
	'J': Jack, 'Q': Queen, 'K': King, 'A': Ace,
}

var suitsByLetter = map[byte]Suit{
	's': Spades, 'h': Hearts, 'd': Diamonds, 'c': Clubs,
}

// ParseCard parses two-character hand-history notation such as "Ah" or "Td".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, &UnknownFieldError{Field: "card", Value: s}
	}
	rank, ok := ranksByLetter[s[0]]
	if !ok {
		return Card{}, &UnknownFieldError{Field: "card", Value: s}
	}
	suit, ok := suitsByLetter[s[1]]
	if !ok {
		return Card{}, &UnknownFieldError{Field: "card", Value: s}
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a sequence of two-character card tokens.
func ParseCards(tokens []string) ([]Card, error) {
	if len(tokens) == 0 {
		return nil, nil
	}
	cards := make([]Card, len(tokens))
	for i, tok := range tokens {
		card, err := ParseCard(tok)
		if err != nil {
			return nil, err
		}
		cards[i] = card
	}
	return cards, nil
}
