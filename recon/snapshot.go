package recon

import (
	"fmt"

	"omaha-recon/detect"
	"omaha-recon/eval"
	"omaha-recon/poker"
)

// Snapshot is everything one detection cycle produced: the raw card and
// badge detections, the recovered seat map, and, when reconciliation
// succeeded, the validated per-street move history. Snapshots are built
// once per cycle and handed off read-only; nothing persists between samples
// of the same table.
type Snapshot struct {
	CycleID string `json:"cycle_id"`

	PlayerCards []detect.Detection         `json:"player_cards"`
	TableCards  []detect.Detection         `json:"table_cards"`
	Positions   map[int]detect.Detection   `json:"positions"`
	Actions     map[int][]detect.Detection `json:"actions"`

	Seats map[int]poker.Position        `json:"seats,omitempty"`
	Moves map[poker.Street][]MoveRecord `json:"moves,omitempty"`

	HeroHand *eval.Result `json:"hero_hand,omitempty"`
}

// Street derives the betting round from the community-card count. Counts
// other than 0/3/4/5 mean the board detection itself is broken.
func (s *Snapshot) Street() (poker.Street, bool) {
	return poker.StreetFromBoardCount(len(s.TableCards))
}

// StreetDisplay is the street name, or a loud marker for a broken board.
func (s *Snapshot) StreetDisplay() string {
	if street, ok := s.Street(); ok {
		return street.String()
	}
	return fmt.Sprintf("ERROR (%d cards)", len(s.TableCards))
}

func (s *Snapshot) HasCards() bool {
	return len(s.PlayerCards) > 0 || len(s.TableCards) > 0
}

// HasMoves reports whether reconciliation produced any validated history.
func (s *Snapshot) HasMoves() bool {
	for _, moves := range s.Moves {
		if len(moves) > 0 {
			return true
		}
	}
	return false
}

// StreetsWithMoves returns, in hand order, the streets that recorded at
// least one validated move.
func (s *Snapshot) StreetsWithMoves() []poker.Street {
	streets := make([]poker.Street, 0, len(s.Moves))
	for _, street := range poker.StreetOrder() {
		if len(s.Moves[street]) > 0 {
			streets = append(streets, street)
		}
	}
	return streets
}

// ActiveSeats returns the seats whose badge area detected something.
func (s *Snapshot) ActiveSeats() map[int]detect.Detection {
	active := make(map[int]detect.Detection, len(s.Positions))
	for seat, d := range s.Positions {
		if d.Name != detect.Sentinel {
			active[seat] = d
		}
	}
	return active
}
