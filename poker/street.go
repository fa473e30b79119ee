package poker

import "fmt"

// Street is a betting round, ordered and terminal at the river.
type Street byte

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

var streetNames = map[Street]string{
	Preflop: "Preflop",
	Flop:    "Flop",
	Turn:    "Turn",
	River:   "River",
}

func (s Street) String() string {
	if name, ok := streetNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Street(%d)", byte(s))
}

func StreetOrder() []Street {
	return []Street{Preflop, Flop, Turn, River}
}

// StreetFromIndex maps the oracle's street index (0..3) to a Street.
func StreetFromIndex(i int) (Street, bool) {
	if i < 0 || i > 3 {
		return 0, false
	}
	return Street(i), true
}

// StreetFromBoardCount derives the street from the community-card count.
// Only 0, 3, 4 and 5 cards are meaningful board states.
func StreetFromBoardCount(n int) (Street, bool) {
	switch n {
	case 0:
		return Preflop, true
	case 3:
		return Flop, true
	case 4:
		return Turn, true
	case 5:
		return River, true
	}
	return 0, false
}
