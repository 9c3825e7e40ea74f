package parser

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"voyager.com/handparser/logging"
	"voyager.com/handparser/poker"
)

var parserLogger = logging.GetZeroLogger("parser::parser", nil)

// Parse parses one complete hand history text using the named room format.
// It either returns a fully populated hand or an error; a partially parsed
// hand is never returned.
func Parse(roomName string, text string) (*Hand, error) {
	room, ok := Lookup(roomName)
	if !ok {
		return nil, errors.Errorf("unknown room %q (registered: %s)",
			roomName, strings.Join(RoomNames(), ", "))
	}
	return room.Parse(text)
}

// Parse runs the shared parsing skeleton with this room's patterns.
func (r *Room) Parse(text string) (*Hand, error) {
	b := newBuilder(r, text)
	if err := b.parseHeader(); err != nil {
		return nil, err
	}
	if err := b.parseSeats(); err != nil {
		return nil, err
	}
	if err := b.parseHoleCards(); err != nil {
		return nil, err
	}
	b.parsePreflop()
	if err := b.parseStreets(); err != nil {
		return nil, err
	}
	return b.finish(), nil
}

// builder accumulates fields while parsing. The record reaches the caller
// only through finish, so a partially built hand is never observable.
type builder struct {
	room     *Room
	splitted []string
	sections []int
	hand     Hand
}

// newBuilder segments the raw text: split on the room separator and record
// the indices of empty fragments. Those indices are the section boundaries
// everything downstream addresses (sections[0] sits before the hole cards
// section, the last one before the summary). Text with no boundaries
// degrades to a single section; the extractors report the failure.
func newBuilder(r *Room, text string) *builder {
	b := &builder{room: r, hand: Hand{Room: r.Name, GameCategory: r.GameCategory}}
	b.splitted = r.SplitPattern.Split(strings.TrimSpace(text), -1)
	for i, frag := range b.splitted {
		if frag == "" {
			b.sections = append(b.sections, i)
		}
	}
	return b
}

func (b *builder) group(match []string, name string) string {
	for i, n := range b.room.HeaderPattern.SubexpNames() {
		if n == name && i < len(match) {
			return match[i]
		}
	}
	return ""
}

func parseDecimal(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, ",", "", -1))
}

func (b *builder) parseHeader() error {
	r := b.room
	headerLine := b.splitted[0]
	match := r.HeaderPattern.FindStringSubmatch(headerLine)
	if match == nil {
		return HeaderError{Room: r.Name, Line: headerLine}
	}

	sb, err := parseDecimal(b.group(match, "sb"))
	if err != nil {
		return errors.Wrapf(HeaderError{Room: r.Name, Line: headerLine}, "small blind: %v", err)
	}
	bb, err := parseDecimal(b.group(match, "bb"))
	if err != nil {
		return errors.Wrapf(HeaderError{Room: r.Name, Line: headerLine}, "big blind: %v", err)
	}

	gameName := b.group(match, "game")
	game, ok := games[gameName]
	if !ok {
		return UnknownGameError{Game: gameName}
	}

	loc, err := r.location()
	if err != nil {
		return err
	}
	date, err := time.ParseInLocation(r.DateLayout, b.group(match, "date"), loc)
	if err != nil {
		return errors.Wrapf(HeaderError{Room: r.Name, Line: headerLine}, "date: %v", err)
	}

	b.hand.ID = b.group(match, "ident")
	b.hand.SB = sb
	b.hand.BB = bb
	b.hand.Game = game
	b.hand.Limit = limits[b.group(match, "limit")]
	b.hand.Date = date.UTC()
	b.hand.TableName = b.group(match, "table_name")
	b.hand.TournamentID = b.group(match, "tournament_ident")
	b.hand.TournamentName = b.group(match, "tournament_name")
	return nil
}

// parseSeats walks the seat lines right after the header until the first
// line that is not a seat declaration; that line ends the block. Unseen
// seats up to the room's cap become "Empty Seat N" placeholders, but
// MaxPlayers reports the highest declared seat, not the cap.
func (b *builder) parseSeats() error {
	r := b.room
	players := make([]Player, r.MaxSeats)
	for i := range players {
		players[i] = Player{Name: fmt.Sprintf("Empty Seat %d", i+1), Seat: i + 1}
	}

	maxSeat := 0
	for _, line := range b.splitted[1:] {
		match := r.SeatPattern.FindStringSubmatch(line)
		if match == nil {
			break
		}
		seatNo, _ := strconv.Atoi(match[1])
		if seatNo < 1 || seatNo > len(players) {
			return SeatError{Field: "seat", Line: line}
		}
		stack, err := strconv.ParseInt(strings.Replace(match[3], ",", "", -1), 10, 64)
		if err != nil {
			return SeatError{Field: "seat", Line: line}
		}
		players[seatNo-1] = Player{Name: match[2], Seat: seatNo, Stack: stack}
		if seatNo > maxSeat {
			maxSeat = seatNo
		}
	}
	if maxSeat == 0 {
		return SeatError{Field: "seat", Line: b.splitted[min(1, len(b.splitted)-1)]}
	}
	b.hand.MaxPlayers = maxSeat
	b.hand.Players = players

	// The button line sits one fragment before the first section boundary.
	if len(b.sections) == 0 || b.sections[0] == 0 {
		return SeatError{Field: "button", Line: ""}
	}
	buttonLine := b.splitted[b.sections[0]-1]
	match := r.ButtonPattern.FindStringSubmatch(buttonLine)
	if match == nil {
		return SeatError{Field: "button", Line: buttonLine}
	}
	buttonSeat, _ := strconv.Atoi(match[1])
	if buttonSeat < 1 || buttonSeat > len(players) {
		return SeatError{Field: "button", Line: buttonLine}
	}
	b.hand.ButtonSeat = buttonSeat
	b.hand.Button = players[buttonSeat-1].Name
	return nil
}

// parseHoleCards reads the "Dealt to" line two fragments past the first
// boundary. Whoever was dealt cards must be seated, so a name missing from
// the seat mapping is a data integrity failure.
func (b *builder) parseHoleCards() error {
	idx := b.sections[0] + 2
	if idx >= len(b.splitted) {
		return HoleCardsError{Line: ""}
	}
	line := b.splitted[idx]
	match := b.room.HoleCardsPattern.FindStringSubmatch(line)
	if match == nil {
		return HoleCardsError{Line: line}
	}
	hero := match[1]
	c1, err := poker.NewCard(match[2])
	if err != nil {
		return HoleCardsError{Line: line}
	}
	c2, err := poker.NewCard(match[3])
	if err != nil {
		return HoleCardsError{Line: line}
	}
	player, ok := b.hand.PlayerByName(hero)
	if !ok {
		return HoleCardsError{Line: line}
	}
	b.hand.Hero = hero
	b.hand.HeroSeat = player.Seat
	b.hand.HeroCards = [2]poker.Card{c1, c2}
	return nil
}

// parsePreflop slices the action lines between the hole cards line and the
// second section boundary. There is no board line preflop, so this is a
// fixed offset slice, not a marker search.
func (b *builder) parsePreflop() {
	start := b.sections[0] + 3
	stop := len(b.splitted)
	if len(b.sections) > 1 {
		stop = b.sections[1]
	}
	if start > stop {
		start = stop
	}
	b.hand.PreflopActions = append([]string{}, b.splitted[start:stop]...)
}

// parseStreets runs flop, turn and river in order. Once a street is not
// reached the rest are recorded absent without searching, so streets are
// always absent in an unbroken suffix.
func (b *builder) parseStreets() error {
	streets := []struct {
		name   string
		marker string
		dest   **Street
	}{
		{"flop", "FLOP", &b.hand.Flop},
		{"turn", "TURN", &b.hand.Turn},
		{"river", "RIVER", &b.hand.River},
	}
	for _, s := range streets {
		street, err := b.parseStreet(s.name, s.marker)
		if err != nil {
			return err
		}
		if street == nil {
			break
		}
		*s.dest = street
	}
	return nil
}

func (b *builder) parseStreet(name string, marker string) (*Street, error) {
	idx := -1
	for i, frag := range b.splitted {
		if frag == marker {
			idx = i
			break
		}
	}
	if idx == -1 || idx+1 >= len(b.splitted) {
		// Most hands never get here; an absent street is not an error.
		return nil, nil
	}

	boardLine := b.splitted[idx+1]
	match := b.room.StreetPattern.FindStringSubmatch(boardLine)
	if match == nil {
		return nil, BoardLineError{Street: name, Line: boardLine}
	}
	var cards []poker.Card
	for _, cs := range strings.Fields(match[1]) {
		card, err := poker.NewCard(cs)
		if err != nil {
			return nil, BoardLineError{Street: name, Line: boardLine}
		}
		cards = append(cards, card)
	}
	pot, err := parseDecimal(match[2])
	if err != nil {
		return nil, BoardLineError{Street: name, Line: boardLine}
	}
	numPlayers, _ := strconv.Atoi(match[3])
	if numPlayers > b.hand.MaxPlayers {
		parserLogger.Warn().
			Str(logging.HandIDKey, b.hand.ID).
			Str(logging.StreetKey, name).
			Msgf("%d players on the street with %d seats declared", numPlayers, b.hand.MaxPlayers)
	}

	// Collect the action lines up to the next boundary. An empty slice is a
	// street that was checked through, not a street that never happened.
	actions := []string{}
	for i := idx + 2; i < len(b.splitted); i++ {
		if b.splitted[i] == "" {
			break
		}
		actions = append(actions, b.splitted[i])
	}
	return &Street{Cards: cards, Pot: pot, NumPlayers: numPlayers, Actions: actions}, nil
}

func (b *builder) finish() *Hand {
	hand := b.hand
	parserLogger.Debug().
		Str(logging.RoomKey, hand.Room).
		Str(logging.HandIDKey, hand.ID).
		Int(logging.SeatNumKey, hand.HeroSeat).
		Msg("parsed hand")
	return &hand
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
