package stars_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/pokertools/handhistory/stars"
)

// A single Parser carries no per-hand state, so concurrent parses must
// produce exactly what sequential parses produce.
func TestParseConcurrently(t *testing.T) {
	texts := []string{handFlopOnly, handShowdown, handPreflopOnly, handEmptySeats, handAllIn}

	want := make([]any, len(texts))
	for i, text := range texts {
		h, err := stars.Parse(text)
		if err != nil {
			t.Fatalf("sequential parse %d: %v", i, err)
		}
		want[i] = h
	}

	parser := stars.NewParser()
	var g errgroup.Group
	for round := 0; round < 8; round++ {
		for i, text := range texts {
			i, text := i, text
			g.Go(func() error {
				h, err := parser.Parse(text)
				if err != nil {
					return err
				}
				if !reflect.DeepEqual(want[i], h) {
					t.Errorf("concurrent parse of hand %d diverged", i)
				}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent parse: %v", err)
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	parser := stars.NewParser(stars.WithLogger(logger))
	if _, err := parser.Parse(handFlopOnly); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected debug output from parse stages")
	}
}
