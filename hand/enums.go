package hand

// GameType classifies a hand as tournament or cash play.
type GameType string

const (
	GameTypeTournament GameType = "TOUR"
	GameTypeCash       GameType = "CASH"
)

// gameTypes maps the raw room vocabulary to canonical game types. The table
// is closed: anything outside it is an unrecognized-field error, never a
// silent default.
var gameTypes = map[string]GameType{
	"Tournament": GameTypeTournament,
	"Cash Game":  GameTypeCash,
	"Ring":       GameTypeCash,
}

// GameTypeFromString resolves a raw room token to a GameType.
func GameTypeFromString(s string) (GameType, error) {
	gt, ok := gameTypes[s]
	if !ok {
		return "", &UnknownFieldError{Field: "game_type", Value: s}
	}
	return gt, nil
}

// Game is the poker variant being dealt.
type Game string

const (
	Holdem Game = "HOLDEM"
	Omaha  Game = "OMAHA"
	Stud   Game = "STUD"
)

var games = map[string]Game{
	"Hold'em":     Holdem,
	"Omaha":       Omaha,
	"Omaha Hi":    Omaha,
	"7 Card Stud": Stud,
}

// GameFromString resolves a raw room token to a Game.
func GameFromString(s string) (Game, error) {
	g, ok := games[s]
	if !ok {
		return "", &UnknownFieldError{Field: "game", Value: s}
	}
	return g, nil
}

// Limit is the betting structure of a hand.
type Limit string

const (
	NoLimit    Limit = "NL"
	PotLimit   Limit = "PL"
	FixedLimit Limit = "FL"
)

var limits = map[string]Limit{
	"No Limit":    NoLimit,
	"Pot Limit":   PotLimit,
	"Limit":       FixedLimit,
	"Fixed Limit": FixedLimit,
}

// LimitFromString resolves a raw room token to a Limit.
func LimitFromString(s string) (Limit, error) {
	l, ok := limits[s]
	if !ok {
		return "", &UnknownFieldError{Field: "limit", Value: s}
	}
	return l, nil
}

// Currency is the real-money currency of the buy-in.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

var currencies = map[string]Currency{
	"USD": USD,
	"EUR": EUR,
	"GBP": GBP,
}

// CurrencyFromString resolves a raw currency code to a Currency.
func CurrencyFromString(s string) (Currency, error) {
	c, ok := currencies[s]
	if !ok {
		return "", &UnknownFieldError{Field: "currency", Value: s}
	}
	return c, nil
}
