package recon

import (
	"log/slog"
	"sort"

	"omaha-recon/detect"
	"omaha-recon/poker"
)

// BuildQueues turns per-seat action-icon detections into per-position move
// queues, in detection order. Every recovered position gets a queue, empty
// or not; tokens the normalizer rejects are logged and skipped without
// disturbing the rest of that seat's list. Queues are never reordered.
func BuildQueues(actions map[int][]detect.Detection, seats map[int]poker.Position, log *slog.Logger) map[poker.Position][]poker.MoveType {
	if log == nil {
		log = slog.Default()
	}

	queues := make(map[poker.Position][]poker.MoveType, len(seats))
	for _, pos := range seats {
		if _, ok := queues[pos]; !ok {
			queues[pos] = []poker.MoveType{}
		}
	}

	// Seat order, not map order: two seats can share an inferred position,
	// and their moves must land in a stable sequence.
	seatOrder := make([]int, 0, len(actions))
	for seat := range actions {
		seatOrder = append(seatOrder, seat)
	}
	sort.Ints(seatOrder)

	for _, seat := range seatOrder {
		pos, ok := seats[seat]
		if !ok {
			continue
		}
		for _, d := range actions[seat] {
			move, err := poker.NormalizeMove(d.Name)
			if err != nil {
				log.Warn("skipping invalid move", "position", pos.String(), "name", d.Name, "err", err)
				continue
			}
			queues[pos] = append(queues[pos], move)
		}
	}
	return queues
}
