package card

import (
	"fmt"
	"strings"
)

// Card is a single playing card.
//
// Encoding:
// - high 4 bits: suit (0:Spade, 1:Heart, 2:Club, 3:Diamond)
// - low 4 bits: rank (1:A, 2..9, 10:T, 11:J, 12:Q, 13:K)
type Card byte

// String renders the card the way the detector names its templates,
// rank first and an uppercase suit letter last, e.g. "AS", "10H".
func (c Card) String() string {
	if c == CardInvalid {
		return "Invalid"
	}
	return c.rankString() + c.Suit().String()
}

// Unicode renders the card with a unicode suit symbol, e.g. "A♠".
func (c Card) Unicode() string {
	if c == CardInvalid {
		return "Invalid"
	}
	return c.rankString() + string(c.Suit().Rune())
}

func (c Card) rankString() string {
	switch r := c.Rank(); r {
	case 1:
		return "A"
	case 10:
		return "10"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return fmt.Sprintf("%d", r)
	}
}

// Rank returns the card rank 1-13 (A=1, K=13).
func (c Card) Rank() byte {
	if c == CardInvalid {
		return 0
	}
	return byte(c & 0x0F)
}

// Suit returns the card suit (0:Spades, 1:Hearts, 2:Clubs, 3:Diamonds).
func (c Card) Suit() Suit {
	return Suit(c >> 4)
}

func (c Card) IsAce() bool {
	return c.Rank() == 1
}

// Valid reports whether c is one of the 52 playing cards.
func (c Card) Valid() bool {
	switch {
	case c >= CardSpadeA && c <= CardSpadeK,
		c >= CardHeartA && c <= CardHeartK,
		c >= CardClubA && c <= CardClubK,
		c >= CardDiamondA && c <= CardDiamondK:
		return true
	}
	return false
}

// ParseTemplate converts a detector template name such as "AS", "10h",
// "Td" or "9C" into a Card. The suit is the last character; the rank is
// everything before it.
func ParseTemplate(name string) (Card, error) {
	name = strings.TrimSpace(name)
	if len(name) < 2 {
		return 0, fmt.Errorf("invalid card name: %q", name)
	}

	var suitBase Card
	switch name[len(name)-1] {
	case 's', 'S':
		suitBase = 0x00
	case 'h', 'H':
		suitBase = 0x10
	case 'c', 'C':
		suitBase = 0x20
	case 'd', 'D':
		suitBase = 0x30
	default:
		return 0, fmt.Errorf("invalid suit in card name %q", name)
	}

	var rankVal Card
	switch strings.ToUpper(name[:len(name)-1]) {
	case "A":
		rankVal = 0x01
	case "2":
		rankVal = 0x02
	case "3":
		rankVal = 0x03
	case "4":
		rankVal = 0x04
	case "5":
		rankVal = 0x05
	case "6":
		rankVal = 0x06
	case "7":
		rankVal = 0x07
	case "8":
		rankVal = 0x08
	case "9":
		rankVal = 0x09
	case "T", "10":
		rankVal = 0x0A
	case "J":
		rankVal = 0x0B
	case "Q":
		rankVal = 0x0C
	case "K":
		rankVal = 0x0D
	default:
		return 0, fmt.Errorf("invalid rank in card name %q", name)
	}

	return suitBase + rankVal, nil
}
