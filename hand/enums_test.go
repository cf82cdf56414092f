package hand_test

import (
	"errors"
	"testing"

	"github.com/pokertools/handhistory/hand"
)

func TestClosedTables(t *testing.T) {
	tests := []struct {
		raw  string
		got  func() (any, error)
		want any
	}{
		{"Tournament", func() (any, error) { return hand.GameTypeFromString("Tournament") }, hand.GameTypeTournament},
		{"Cash Game", func() (any, error) { return hand.GameTypeFromString("Cash Game") }, hand.GameTypeCash},
		{"Hold'em", func() (any, error) { return hand.GameFromString("Hold'em") }, hand.Holdem},
		{"Omaha", func() (any, error) { return hand.GameFromString("Omaha") }, hand.Omaha},
		{"No Limit", func() (any, error) { return hand.LimitFromString("No Limit") }, hand.NoLimit},
		{"Pot Limit", func() (any, error) { return hand.LimitFromString("Pot Limit") }, hand.PotLimit},
		{"Limit", func() (any, error) { return hand.LimitFromString("Limit") }, hand.FixedLimit},
		{"USD", func() (any, error) { return hand.CurrencyFromString("USD") }, hand.USD},
		{"EUR", func() (any, error) { return hand.CurrencyFromString("EUR") }, hand.EUR},
	}

	for _, tt := range tests {
		got, err := tt.got()
		if err != nil {
			t.Fatalf("%q: %v", tt.raw, err)
		}
		if got != tt.want {
			t.Fatalf("%q resolved to %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestUnknownValuesFailClosed(t *testing.T) {
	tests := []struct {
		field string
		err   error
	}{
		{"game_type", func() error { _, err := hand.GameTypeFromString("Freeroll"); return err }()},
		{"game", func() error { _, err := hand.GameFromString("Razz"); return err }()},
		{"limit", func() error { _, err := hand.LimitFromString("Half Limit"); return err }()},
		{"currency", func() error { _, err := hand.CurrencyFromString("XBT"); return err }()},
	}

	for _, tt := range tests {
		var ue *hand.UnknownFieldError
		if !errors.As(tt.err, &ue) {
			t.Fatalf("%s: expected UnknownFieldError, got %v", tt.field, tt.err)
		}
		if ue.Field != tt.field {
			t.Fatalf("error names field %q, want %q", ue.Field, tt.field)
		}
	}
}
