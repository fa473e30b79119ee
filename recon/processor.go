package recon

import (
	"log/slog"

	"github.com/google/uuid"

	"omaha-recon/card"
	"omaha-recon/detect"
	"omaha-recon/eval"
	"omaha-recon/omaha"
)

// Input is what the detection supplier delivers every cycle: six
// seat-indexed badge detections (sentinel for empty seats), per-seat ordered
// action-icon lists, and the card detections.
type Input struct {
	PlayerCards []detect.Detection         `json:"player_cards"`
	TableCards  []detect.Detection         `json:"table_cards"`
	Positions   map[int]detect.Detection   `json:"positions"`
	Actions     map[int][]detect.Detection `json:"actions"`
}

// Processor reconciles one detection cycle at a time. It keeps no state
// across cycles; a fresh oracle is built per cycle and discarded with it.
type Processor struct {
	log *slog.Logger
}

func NewProcessor(log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{log: log}
}

// Process runs the full pipeline: classify seat labels, recover positions,
// normalize action icons into queues, and replay them against a fresh
// betting oracle. The returned snapshot always carries the raw detections;
// on a cycle-fatal reconciliation error it carries no move history and the
// error is returned alongside it. Partial history is never surfaced.
func (p *Processor) Process(in Input) (*Snapshot, error) {
	cycleID := uuid.NewString()
	log := p.log.With("cycle_id", cycleID)

	snap := &Snapshot{
		CycleID:     cycleID,
		PlayerCards: in.PlayerCards,
		TableCards:  in.TableCards,
		Positions:   in.Positions,
		Actions:     in.Actions,
	}
	p.annotateHeroHand(snap)

	seats, err := RecoverPositions(in.Positions, log)
	if err != nil {
		log.Error("position recovery failed", "err", err)
		return snap, err
	}
	snap.Seats = seats

	queues := BuildQueues(in.Actions, seats, log)

	playerCount := len(queues)
	if _, err := SeatRing(playerCount); err != nil {
		log.Error("unsupported table size", "players", playerCount, "err", err)
		return snap, err
	}

	game, err := omaha.NewGame(playerCount)
	if err != nil {
		log.Error("oracle init failed", "err", err)
		return snap, err
	}

	replayer, err := NewReplayer(playerCount, game, log)
	if err != nil {
		return snap, err
	}
	history, err := replayer.Run(queues)
	if err != nil {
		log.Error("replay failed, discarding cycle history", "err", err)
		return snap, err
	}

	snap.Moves = history
	return snap, nil
}

// annotateHeroHand attaches the hero's best Omaha hand when exactly four
// hole cards and a full flop or later were detected.
func (p *Processor) annotateHeroHand(snap *Snapshot) {
	if len(snap.PlayerCards) != 4 || len(snap.TableCards) < 3 {
		return
	}
	hole, err := parseCards(snap.PlayerCards)
	if err != nil {
		p.log.Warn("skipping hero hand eval", "err", err)
		return
	}
	board, err := parseCards(snap.TableCards)
	if err != nil {
		p.log.Warn("skipping hero hand eval", "err", err)
		return
	}
	result, err := eval.BestOmahaHand(hole, board)
	if err != nil {
		p.log.Warn("hero hand eval failed", "err", err)
		return
	}
	snap.HeroHand = result
}

func parseCards(detections []detect.Detection) ([]card.Card, error) {
	names := make([]string, len(detections))
	for i, d := range detections {
		names[i] = d.Name
	}
	return card.ParseTemplates(names)
}
