package stars

import "regexp"

// The PokerStars export grammar. Delimiters, field order and punctuation are
// contract surfaces: the room has kept this format stable for years and the
// patterns reproduce it literally.
var (
	// splitPattern breaks the raw text into line tokens. Section marker
	// lines ("*** HOLE CARDS ***") collapse into their inner label plus an
	// empty token, so empty tokens double as section boundaries.
	splitPattern = regexp.MustCompile(` ?\*\*\* ?\n?|\n`)

	// headerPattern matches the first line of a tournament hand. The
	// vocabulary groups (game_type, currency, game, limit) are captured
	// permissively and resolved against the closed tables in package hand,
	// so unknown vocabulary reports the offending field instead of a bare
	// mismatch.
	headerPattern = regexp.MustCompile(
		`^PokerStars Hand #(?P<ident>\d+): ` +
			`(?P<game_type>[\w ]+?) #(?P<tournament_ident>\d+), ` +
			`\$(?P<buyin>\d+\.\d{2})\+\$(?P<rake>\d+\.\d{2}) ` +
			`(?P<currency>[A-Z]{3}) ` +
			`(?P<game>.+?) ` +
			`(?P<limit>\w+ Limit|Limit) ` +
			`- Level (?P<level>\S+) ` +
			`\((?P<sb>[\d.]+)/(?P<bb>[\d.]+)\) ` +
			`- .+ \[(?P<date>.+) ET\]$`)

	tablePattern    = regexp.MustCompile(`^Table '(.+)' (\d+)-max Seat #(\d+) is the button$`)
	seatPattern     = regexp.MustCompile(`^Seat (\d+): (.+) \((\d+) in chips\)$`)
	dealtToPattern  = regexp.MustCompile(`^Dealt to (.+) \[(..) (..)\]$`)
	potPattern      = regexp.MustCompile(`^Total pot (\d+) .*\| Rake (\d+)$`)
	// Summary seat lines tag blind and button positions after the player
	// name; the winner captures strip those tags so winners are bare
	// player names.
	winnerPattern   = regexp.MustCompile(`^Seat (\d+): (.+?)(?: \((?:button|small blind|big blind)\))* collected \((\d+)\)$`)
	showdownPattern = regexp.MustCompile(`^Seat (\d+): (.+?)(?: \((?:button|small blind|big blind)\))* showed .+ and won`)
	antePattern     = regexp.MustCompile(`^(.+?): posts the ante (\d+)$`)

	// cardPattern extracts the two-character card tokens from a board
	// line ("Board [2s 6d 6h 8c]").
	cardPattern = regexp.MustCompile(`[2-9TJQKA][cdhs]`)
)

// boardPrefix marks the summary line carrying the community cards.
const boardPrefix = "Board"

// Street marker tokens produced by the segmenter.
const (
	markerFlop     = "FLOP"
	markerTurn     = "TURN"
	markerRiver    = "RIVER"
	markerShowDown = "SHOW DOWN"
)
