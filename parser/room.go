package parser

import (
	"regexp"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Room describes one poker room's hand history format. Everything that
// varies between rooms lives here as data; the parsing skeleton in
// parser.go is shared. A new room is supported by registering a new Room.
type Room struct {
	Name         string
	GameCategory string // TOUR or RING

	SplitPattern     *regexp.Regexp
	HeaderPattern    *regexp.Regexp
	SeatPattern      *regexp.Regexp
	ButtonPattern    *regexp.Regexp
	HoleCardsPattern *regexp.Regexp
	StreetPattern    *regexp.Regexp

	DateLayout string
	Timezone   string // IANA zone the room prints timestamps in

	// MaxSeats is the placeholder cap for empty seats. The parsed hand's
	// MaxPlayers still reports the highest declared seat.
	MaxSeats int

	locOnce sync.Once
	loc     *time.Location
	locErr  error
}

func (r *Room) location() (*time.Location, error) {
	r.locOnce.Do(func() {
		r.loc, r.locErr = time.LoadLocation(r.Timezone)
	})
	if r.locErr != nil {
		return nil, errors.Wrapf(r.locErr, "room %s: invalid timezone %q", r.Name, r.Timezone)
	}
	return r.loc, nil
}

var (
	roomsMu sync.RWMutex
	rooms   = map[string]*Room{}
)

func Register(r *Room) {
	roomsMu.Lock()
	defer roomsMu.Unlock()
	rooms[r.Name] = r
}

func Lookup(name string) (*Room, bool) {
	roomsMu.RLock()
	defer roomsMu.RUnlock()
	r, ok := rooms[name]
	return r, ok
}

// RoomNames returns the registered room names, for CLI/REST error messages.
func RoomNames() []string {
	roomsMu.RLock()
	defer roomsMu.RUnlock()
	names := make([]string, 0, len(rooms))
	for name := range rooms {
		names = append(names, name)
	}
	return names
}
