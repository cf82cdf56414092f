package hand_test

import (
	"testing"

	"github.com/pokertools/handhistory/hand"
)

func board(t *testing.T, tokens ...string) []hand.Card {
	t.Helper()
	cards, err := hand.ParseCards(tokens)
	if err != nil {
		t.Fatalf("parse board %v: %v", tokens, err)
	}
	return cards
}

func TestBoardViews(t *testing.T) {
	tests := []struct {
		name      string
		board     []hand.Card
		wantFlop  bool
		wantTurn  bool
		wantRiver bool
	}{
		{"no board", nil, false, false, false},
		{"flop", board(t, "2s", "6d", "6h"), true, false, false},
		{"turn", board(t, "2s", "6d", "6h", "8c"), true, true, false},
		{"river", board(t, "2s", "6d", "6h", "8c", "Qd"), true, true, true},
	}

	for _, tt := range tests {
		h := &hand.Hand{Board: tt.board}
		if got := h.FlopCards() != nil; got != tt.wantFlop {
			t.Fatalf("%s: flop set=%v, want %v", tt.name, got, tt.wantFlop)
		}
		if _, got := h.TurnCard(); got != tt.wantTurn {
			t.Fatalf("%s: turn set=%v, want %v", tt.name, got, tt.wantTurn)
		}
		if _, got := h.RiverCard(); got != tt.wantRiver {
			t.Fatalf("%s: river set=%v, want %v", tt.name, got, tt.wantRiver)
		}
	}
}

func TestSeatAt(t *testing.T) {
	h := &hand.Hand{Seats: []hand.Seat{
		{Name: "alpha", Stack: 1500},
		hand.EmptySeat(2),
	}}

	seat, ok := h.SeatAt(1)
	if !ok || seat.Name != "alpha" {
		t.Fatalf("seat 1: %v %v", seat, ok)
	}
	seat, ok = h.SeatAt(2)
	if !ok || !seat.Empty() {
		t.Fatalf("seat 2 should be the placeholder: %v", seat)
	}
	if _, ok := h.SeatAt(0); ok {
		t.Fatal("seat 0 must not resolve")
	}
	if _, ok := h.SeatAt(3); ok {
		t.Fatal("seat 3 must not resolve")
	}
}

func TestEmptySeat(t *testing.T) {
	seat := hand.EmptySeat(7)
	if seat.Name != "Empty Seat 7" || seat.Stack != 0 {
		t.Fatalf("unexpected placeholder: %+v", seat)
	}
	if !seat.Empty() {
		t.Fatal("placeholder must report empty")
	}
	if (hand.Seat{Name: "bob", Stack: 200}).Empty() {
		t.Fatal("occupied seat must not report empty")
	}
}

func TestHandString(t *testing.T) {
	h := &hand.Hand{Room: "STARS", ID: "105024000105"}
	if got := h.String(); got != "<STARS hand #105024000105>" {
		t.Fatalf("String() = %q", got)
	}
}
