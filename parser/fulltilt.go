package parser

import "regexp"

// Full Tilt tournament hands. Header example:
//
//	Full Tilt Poker Game #33286946295: MiniFTOPS Main Event (255707037),
//	Table 179 - NL Hold'em - 10/20 - 19:26:50 CET - 2013/09/22 [13:26:50 ET - 2013/09/22]
var fullTilt = &Room{
	Name:         "fulltilt",
	GameCategory: "TOUR",
	SplitPattern: regexp.MustCompile(` ?\*\*\* ?\n?|\n`),
	HeaderPattern: regexp.MustCompile(
		`^Full Tilt Poker Game #(?P<ident>\d+): ` +
			`(?P<tournament_name>.+) \((?P<tournament_ident>\d+)\), ` +
			`Table (?P<table_name>\d+) - ` +
			`(?P<limit>NL|PL|FL) (?P<game>.+?) - ` +
			`(?P<sb>[\d,.]+)/(?P<bb>[\d,.]+) - ` +
			`.+ \[(?P<date>.+)\]$`),
	SeatPattern:      regexp.MustCompile(`^Seat (\d+): (.+) \(([\d,]+)\)$`),
	ButtonPattern:    regexp.MustCompile(`^The button is in seat #(\d+)$`),
	HoleCardsPattern: regexp.MustCompile(`^Dealt to (.+) \[(..) (..)\]$`),
	StreetPattern:    regexp.MustCompile(`\[([^\]]+)\] \(Total Pot: \$?([\d,.]+), (\d+) Players`),
	DateLayout:       "15:04:05 ET - 2006/01/02",
	Timezone:         "America/New_York",
	MaxSeats:         9,
}

// Full Tilt ring games. The header carries the table name and dollar blinds
// instead of tournament identity, and the limit is spelled out. Tables are
// capped at 6 seats.
var fullTiltRing = &Room{
	Name:         "fulltilt-ring",
	GameCategory: "RING",
	SplitPattern: regexp.MustCompile(` ?\*\*\* ?\n?|\n`),
	HeaderPattern: regexp.MustCompile(
		`^Full Tilt Poker Game #(?P<ident>\d+): ` +
			`Table (?P<table_name>.+?)(?: \(\d+ max\))? - ` +
			`\$(?P<sb>[\d,.]+)/\$(?P<bb>[\d,.]+) - ` +
			`(?P<limit>No Limit|Pot Limit|Limit) (?P<game>.+?) - ` +
			`(?P<date>.+)$`),
	SeatPattern:      regexp.MustCompile(`^Seat (\d+): (.+) \(\$?([\d,]+)\)$`),
	ButtonPattern:    regexp.MustCompile(`^The button is in seat #(\d+)$`),
	HoleCardsPattern: regexp.MustCompile(`^Dealt to (.+) \[(..) (..)\]$`),
	StreetPattern:    regexp.MustCompile(`\[([^\]]+)\] \(Total Pot: \$?([\d,.]+), (\d+) Players`),
	DateLayout:       "15:04:05 ET - 2006/01/02",
	Timezone:         "America/New_York",
	MaxSeats:         6,
}

func init() {
	Register(fullTilt)
	Register(fullTiltRing)
}
