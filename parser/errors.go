package parser

import "fmt"

type HeaderError struct {
	Room string
	Line string
}

func (e HeaderError) Error() string {
	return fmt.Sprintf("%s: header line did not match: %q", e.Room, e.Line)
}

// SeatError covers the seat and button lines; both are required to attribute
// any later action.
type SeatError struct {
	Field string
	Line  string
}

func (e SeatError) Error() string {
	return fmt.Sprintf("malformed %s line: %q", e.Field, e.Line)
}

type UnknownGameError struct {
	Game string
}

func (e UnknownGameError) Error() string {
	return fmt.Sprintf("unsupported game variant: %q", e.Game)
}

type HoleCardsError struct {
	Line string
}

func (e HoleCardsError) Error() string {
	return fmt.Sprintf("malformed hole cards line: %q", e.Line)
}

// BoardLineError means a street marker was present but the line after it did
// not carry a board. Losing the marker is normal; losing the board is format
// drift and aborts the parse.
type BoardLineError struct {
	Street string
	Line   string
}

func (e BoardLineError) Error() string {
	return fmt.Sprintf("malformed %s board line: %q", e.Street, e.Line)
}
