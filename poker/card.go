package poker

import (
	"fmt"
	"strings"
)

// Suit values are small constants ordered clubs < diamonds < hearts < spades,
// so equal suits are identical and usable as map keys.
type Suit int8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

type Rank int8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var (
	strRanks   = "23456789TJQKA"
	suitChars  = "cdhs"
	suitGlyphs = [...]string{"♣", "♦", "♥", "♠"}
)

var (
	charRankToRank = map[byte]Rank{}
	strSuitToSuit  = map[string]Suit{}
)

func init() {
	for i := range strRanks {
		charRankToRank[strRanks[i]] = Rank(i)
	}
	for i := range suitChars {
		s := Suit(i)
		strSuitToSuit[string(suitChars[i])] = s
		strSuitToSuit[strings.ToUpper(string(suitChars[i]))] = s
		strSuitToSuit[suitGlyphs[i]] = s
	}
}

// ParseSuit accepts a single ASCII letter (either case) or a suit glyph.
func ParseSuit(s string) (Suit, error) {
	suit, ok := strSuitToSuit[s]
	if !ok {
		return 0, fmt.Errorf("invalid suit %q", s)
	}
	return suit, nil
}

func (s Suit) String() string {
	return suitGlyphs[s]
}

func (s Suit) Char() byte {
	return suitChars[s]
}

// Suits returns the four suits in ascending order.
func Suits() []Suit {
	return []Suit{Clubs, Diamonds, Hearts, Spades}
}

func ParseRank(s string) (Rank, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("invalid rank %q", s)
	}
	rank, ok := charRankToRank[strings.ToUpper(s)[0]]
	if !ok {
		return 0, fmt.Errorf("invalid rank %q", s)
	}
	return rank, nil
}

func (r Rank) String() string {
	return string(strRanks[r])
}

// Card is a rank and a suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard parses a two character card like "Kh" or "9d".
func NewCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	rank, err := ParseRank(s[:1])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	suit, err := ParseSuit(s[1:])
	if err != nil {
		return Card{}, fmt.Errorf("invalid card %q", s)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

func (c Card) String() string {
	return c.Rank.String() + string(c.Suit.Char())
}

// Pretty renders the card with the suit glyph, e.g. "K♥".
func (c Card) Pretty() string {
	return c.Rank.String() + c.Suit.String()
}

func (c Card) MarshalJSON() ([]byte, error) {
	return []byte("\"" + c.String() + "\""), nil
}

func (c *Card) UnmarshalJSON(b []byte) error {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("invalid card %s", string(b))
	}
	card, err := NewCard(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*c = card
	return nil
}

func CardsToString(cards []Card) string {
	var b strings.Builder
	b.Grow(32)
	fmt.Fprintf(&b, "[")
	for _, c := range cards {
		fmt.Fprintf(&b, " %s ", c.Pretty())
	}
	fmt.Fprintf(&b, "]")
	return b.String()
}
