package recon

import (
	"log/slog"

	"omaha-recon/detect"
	"omaha-recon/poker"
)

const requiredSeats = detect.SeatCount

// RecoverPositions turns the cycle's six raw seat-badge detections into a
// seat→position map. Badges pin their seat directly; seats whose badge was
// replaced by action text are inferred from the table template; sentinel
// seats stay unassigned. Fewer than six entries is fatal for the cycle.
func RecoverPositions(detections map[int]detect.Detection, log *slog.Logger) (map[int]poker.Position, error) {
	if len(detections) < requiredSeats {
		return nil, &InsufficientDataError{Seats: len(detections)}
	}
	return RecoverFromLabels(ClassifySeatLabels(detections, log)), nil
}

// ClassifySeatLabels classifies each seat's raw detection, dropping (and
// logging) entries the catalog does not recognize. A dropped entry never
// aborts the batch.
func ClassifySeatLabels(detections map[int]detect.Detection, log *slog.Logger) map[int]detect.Label {
	if log == nil {
		log = slog.Default()
	}
	labels := make(map[int]detect.Label, len(detections))
	for seat, d := range detections {
		label, err := detect.Classify(d.Name)
		if err != nil {
			log.Warn("skipping unknown seat detection", "seat", seat, "name", d.Name, "err", err)
			continue
		}
		labels[seat] = label
	}
	return labels
}

// RecoverFromLabels builds the seat map from classified labels. Pure:
// identical inputs always produce identical outputs.
func RecoverFromLabels(labels map[int]detect.Label) map[int]poker.Position {
	seats := make(map[int]poker.Position, len(labels))

	// Direct positions first, so every inference below sees the full set.
	direct := make(map[int]poker.Position, len(labels))
	for seat, label := range labels {
		if pos, ok := label.Position(); ok {
			direct[seat] = pos
		}
	}
	for seat, pos := range direct {
		seats[seat] = pos
	}

	// Each action seat is inferred independently against the same original
	// missing set. Two action seats can therefore receive the same inferred
	// position; downstream replay is what catches the contradiction.
	for seat, label := range labels {
		if !label.IsAction() {
			continue
		}
		if pos, ok := inferMissingPosition(direct); ok {
			seats[seat] = pos
		}
	}
	return seats
}

// inferMissingPosition picks the position most likely hidden behind action
// text, given the directly detected ones.
func inferMissingPosition(direct map[int]poker.Position) (poker.Position, bool) {
	// Nothing detected means nothing to anchor an inference on.
	if len(direct) == 0 {
		return 0, false
	}

	detected := make(map[poker.Position]bool, len(direct))
	for _, pos := range direct {
		detected[pos] = true
	}

	// First template (scanned largest size first) whose position set covers
	// everything detected. The 6-max template is the universal set, so it
	// matches whenever all detected badges are canonical.
	template, _ := poker.TableTemplate(6)
	for _, size := range poker.TableSizes() {
		t, ok := poker.TableTemplate(size)
		if !ok {
			continue
		}
		if coversAll(t, detected) {
			template = t
			break
		}
	}

	missing := make([]poker.Position, 0, len(template))
	for _, pos := range template {
		if !detected[pos] {
			missing = append(missing, pos)
		}
	}

	if len(missing) == 1 {
		return missing[0], true
	}
	for _, pos := range poker.PriorityOrder() {
		for _, m := range missing {
			if m == pos {
				return pos, true
			}
		}
	}
	return 0, false
}

func coversAll(template []poker.Position, detected map[poker.Position]bool) bool {
	in := make(map[poker.Position]bool, len(template))
	for _, pos := range template {
		in[pos] = true
	}
	for pos := range detected {
		if !in[pos] {
			return false
		}
	}
	return true
}
