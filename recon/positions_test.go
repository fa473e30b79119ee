package recon

import (
	"errors"
	"reflect"
	"testing"

	"omaha-recon/detect"
	"omaha-recon/poker"
)

func seatDetections(names map[int]string) map[int]detect.Detection {
	out := make(map[int]detect.Detection, len(names))
	for seat, name := range names {
		out[seat] = detect.Detection{Name: name, Score: 0.9}
	}
	return out
}

func TestRecoverPositionsInfersHiddenBadge(t *testing.T) {
	detections := seatDetections(map[int]string{
		1: "EP",
		2: "MP",
		3: "c_bets",
		4: "BTN",
		5: "SB",
		6: "BB",
	})

	seats, err := RecoverPositions(detections, nil)
	if err != nil {
		t.Fatalf("RecoverPositions err: %v", err)
	}
	want := map[int]poker.Position{
		1: poker.EarlyPosition,
		2: poker.MiddlePosition,
		3: poker.Cutoff,
		4: poker.Button,
		5: poker.SmallBlind,
		6: poker.BigBlind,
	}
	if !reflect.DeepEqual(seats, want) {
		t.Fatalf("seats = %v, want %v", seats, want)
	}
}

func TestRecoverPositionsSuffixedBadgesPinTheirSeat(t *testing.T) {
	detections := seatDetections(map[int]string{
		1: "EP_fold",
		2: "MP_fold",
		3: "folds",
		4: "BTN_fold_red",
		5: "SB",
		6: "BB_low",
	})

	seats, err := RecoverPositions(detections, nil)
	if err != nil {
		t.Fatalf("RecoverPositions err: %v", err)
	}
	if seats[4] != poker.Button {
		t.Fatalf("seat 4 = %v, want BTN", seats[4])
	}
	if seats[3] != poker.Cutoff {
		t.Fatalf("seat 3 = %v, want inferred CO", seats[3])
	}
}

func TestRecoverPositionsRequiresAllSixSeats(t *testing.T) {
	detections := seatDetections(map[int]string{
		1: "BTN",
		2: "SB",
		3: "BB",
	})
	_, err := RecoverPositions(detections, nil)
	if err == nil {
		t.Fatal("expected error for partial seat data")
	}
	var insufficient *InsufficientDataError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientDataError, got %T", err)
	}
	if insufficient.Seats != 3 {
		t.Fatalf("Seats = %d, want 3", insufficient.Seats)
	}
}

func TestRecoverPositionsSentinelSeatsStayUnassigned(t *testing.T) {
	detections := seatDetections(map[int]string{
		1: "NO",
		2: "NO",
		3: "BTN",
		4: "SB",
		5: "BB",
		6: "NO",
	})
	seats, err := RecoverPositions(detections, nil)
	if err != nil {
		t.Fatalf("RecoverPositions err: %v", err)
	}
	want := map[int]poker.Position{
		3: poker.Button,
		4: poker.SmallBlind,
		5: poker.BigBlind,
	}
	if !reflect.DeepEqual(seats, want) {
		t.Fatalf("seats = %v, want %v", seats, want)
	}
}

func TestRecoverFromLabelsNoDirectPositionsNoInference(t *testing.T) {
	labels := map[int]detect.Label{}
	for seat, name := range map[int]string{1: "folds", 2: "checks", 3: "bets"} {
		label, err := detect.Classify(name)
		if err != nil {
			t.Fatalf("Classify(%q) err: %v", name, err)
		}
		labels[seat] = label
	}
	seats := RecoverFromLabels(labels)
	if len(seats) != 0 {
		t.Fatalf("seats = %v, want empty", seats)
	}
}

func TestRecoverFromLabelsDuplicateInferencePreserved(t *testing.T) {
	// Two hidden badges are inferred independently against the same
	// detected set, so both action seats land on the same position. The
	// replay stage is responsible for rejecting the contradiction.
	labels := classify(t, map[int]string{
		1: "EP",
		2: "MP",
		3: "folds",
		4: "checks",
		5: "SB",
		6: "BB",
	})
	seats := RecoverFromLabels(labels)
	if seats[3] != seats[4] {
		t.Fatalf("seat 3 = %v, seat 4 = %v, want identical inference", seats[3], seats[4])
	}
	if seats[3] != poker.Button {
		t.Fatalf("inferred %v, want BTN by priority", seats[3])
	}
}

func TestRecoverFromLabelsBlindsOnly(t *testing.T) {
	// The 6-max template is scanned first and covers any canonical set, so
	// the gap list is large and priority picks the button.
	labels := classify(t, map[int]string{
		1: "SB",
		2: "BB",
		3: "folds",
	})
	seats := RecoverFromLabels(labels)
	if seats[3] != poker.Button {
		t.Fatalf("seat 3 = %v, want BTN by priority", seats[3])
	}
}

func TestRecoverFromLabelsDeterministic(t *testing.T) {
	labels := classify(t, map[int]string{
		1: "EP",
		2: "folds",
		3: "checks",
		4: "BTN",
		5: "SB",
		6: "BB",
	})
	first := RecoverFromLabels(labels)
	for i := 0; i < 50; i++ {
		if got := RecoverFromLabels(labels); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differs: %v vs %v", i, got, first)
		}
	}
}

func classify(t *testing.T, names map[int]string) map[int]detect.Label {
	t.Helper()
	labels := make(map[int]detect.Label, len(names))
	for seat, name := range names {
		label, err := detect.Classify(name)
		if err != nil {
			t.Fatalf("Classify(%q) err: %v", name, err)
		}
		labels[seat] = label
	}
	return labels
}
