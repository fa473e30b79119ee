package recon

import "omaha-recon/poker"

// seatRings are the canonical seating rings per player count, listed in
// seat order starting from the round opener. Positions absent at smaller
// tables are simply omitted.
var seatRings = map[int][]poker.Position{
	2: {poker.SmallBlind, poker.BigBlind},
	3: {poker.Button, poker.SmallBlind, poker.BigBlind},
	4: {poker.Cutoff, poker.Button, poker.SmallBlind, poker.BigBlind},
	5: {poker.EarlyPosition, poker.Cutoff, poker.Button, poker.SmallBlind, poker.BigBlind},
	6: {poker.EarlyPosition, poker.MiddlePosition, poker.Cutoff, poker.Button, poker.SmallBlind, poker.BigBlind},
}

// SeatRing returns the canonical ring for a table size, or
// WrongPlayerCountError outside 2..6.
func SeatRing(playerCount int) ([]poker.Position, error) {
	ring, ok := seatRings[playerCount]
	if !ok {
		return nil, &WrongPlayerCountError{Count: playerCount}
	}
	return ring, nil
}

// seatPositions maps oracle seat indices to positions given the opener:
// seat[i] = ring[(i-opener) mod n]. Computed once per hand.
func seatPositions(ring []poker.Position, opener int) map[int]poker.Position {
	n := len(ring)
	seats := make(map[int]poker.Position, n)
	for i := 0; i < n; i++ {
		seats[i] = ring[((i-opener)%n+n)%n]
	}
	return seats
}
