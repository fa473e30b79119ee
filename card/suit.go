package card

type Suit byte

const (
	Spade Suit = iota
	Heart
	Club
	Diamond
)

// String returns the detector's single-letter suit code.
func (s Suit) String() string {
	switch s {
	case Spade:
		return "S"
	case Heart:
		return "H"
	case Club:
		return "C"
	case Diamond:
		return "D"
	}
	return "?"
}

func (s Suit) Rune() rune {
	switch s {
	case Spade:
		return '♠'
	case Heart:
		return '♥'
	case Club:
		return '♣'
	case Diamond:
		return '♦'
	}
	return '?'
}
