package parser

import (
	"time"

	"github.com/shopspring/decimal"
	"voyager.com/handparser/poker"
)

type GameType string

const (
	Holdem    GameType = "HOLDEM"
	Omaha     GameType = "OMAHA"
	OmahaHiLo GameType = "OHILO"
	Razz      GameType = "RAZZ"
	Stud      GameType = "STUD"
)

// games maps the variant names rooms print in the header to a GameType.
// A name outside this table is an unsupported format, not a default.
var games = map[string]GameType{
	"Hold'em":     Holdem,
	"Omaha":       Omaha,
	"Omaha Hi/Lo": OmahaHiLo,
	"Razz":        Razz,
	"Stud":        Stud,
}

var limits = map[string]string{
	"NL":        "NL",
	"No Limit":  "NL",
	"PL":        "PL",
	"Pot Limit": "PL",
	"FL":        "FL",
	"Limit":     "FL",
}

type Player struct {
	Name  string `json:"name"`
	Seat  int    `json:"seat"`
	Stack int64  `json:"stack"`
}

// Street holds one betting round that was actually reached. Cards are the
// incremental board cards revealed on that street (3 on the flop, 1 on the
// turn and river). Actions may be empty when everyone checked through
// without a logged voluntary action.
type Street struct {
	Cards      []poker.Card    `json:"cards"`
	Pot        decimal.Decimal `json:"pot"`
	NumPlayers int             `json:"numPlayers"`
	Actions    []string        `json:"actions"`
}

// Hand is the parsed record for a single played hand. A nil street means the
// hand ended before that street, which is different from a street with no
// actions.
type Hand struct {
	Room           string          `json:"room"`
	ID             string          `json:"id"`
	GameCategory   string          `json:"gameCategory"` // TOUR or RING
	Game           GameType        `json:"game"`
	Limit          string          `json:"limit"`
	SB             decimal.Decimal `json:"sb"`
	BB             decimal.Decimal `json:"bb"`
	Date           time.Time       `json:"date"` // always UTC
	TableName      string          `json:"tableName,omitempty"`
	TournamentID   string          `json:"tournamentId,omitempty"`
	TournamentName string          `json:"tournamentName,omitempty"`
	MaxPlayers     int             `json:"maxPlayers"`
	Players        []Player        `json:"players"`
	ButtonSeat     int             `json:"buttonSeat"`
	Button         string          `json:"button"`
	Hero           string          `json:"hero"`
	HeroSeat       int             `json:"heroSeat"`
	HeroCards      [2]poker.Card   `json:"heroCards"`
	PreflopActions []string        `json:"preflopActions"`
	Flop           *Street         `json:"flop,omitempty"`
	Turn           *Street         `json:"turn,omitempty"`
	River          *Street         `json:"river,omitempty"`
}

// PlayerInSeat returns the occupant of a 1-based seat, placeholders included.
func (h *Hand) PlayerInSeat(seatNo int) (Player, bool) {
	if seatNo < 1 || seatNo > len(h.Players) {
		return Player{}, false
	}
	return h.Players[seatNo-1], true
}

// PlayerByName looks a player up in seat order.
func (h *Hand) PlayerByName(name string) (Player, bool) {
	for _, p := range h.Players {
		if p.Name == name {
			return p, true
		}
	}
	return Player{}, false
}
