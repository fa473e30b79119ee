package recon

import (
	"log/slog"
	"sort"

	"omaha-recon/poker"
)

// Oracle is the betting-rules collaborator for one in-progress hand. It owns
// all pot/stack/legality arithmetic and auto-advances streets as a side
// effect of successful actions; the replayer only orchestrates calls and
// records results. Each Replayer owns exactly one Oracle instance for one
// table and one detection cycle; oracles are never shared.
type Oracle interface {
	PlayerCount() int
	StreetIndex() int
	ActorIndex() int
	OpenerIndex() int

	CanFold() bool
	CanCheckOrCall() bool
	CheckingOrCallingAmount() int64
	CanCompleteBetOrRaiseTo() bool
	MinCompletionAmount() int64

	Fold() error
	CheckOrCall() error
	CompleteBetOrRaiseTo(amount int64) error
}

// MoveRecord is one validated entry of the hand history.
type MoveRecord struct {
	Position poker.Position `json:"position"`
	Move     poker.MoveType `json:"move"`
}

// Replayer drives the oracle seat by seat with the detected move queues,
// producing a validated per-street history or failing the cycle. Queues are
// consumed through cursors; the input slices are never mutated.
type Replayer struct {
	oracle Oracle
	seats  map[int]poker.Position
	log    *slog.Logger

	queues  map[poker.Position][]poker.MoveType
	cursors map[poker.Position]int
	history map[poker.Street][]MoveRecord
}

// NewReplayer validates the player count before touching the oracle, then
// fixes the seat→position mapping for the hand from the oracle's opener.
func NewReplayer(playerCount int, oracle Oracle, log *slog.Logger) (*Replayer, error) {
	ring, err := SeatRing(playerCount)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &Replayer{
		oracle:  oracle,
		seats:   seatPositions(ring, oracle.OpenerIndex()),
		log:     log,
		history: newHistory(),
	}, nil
}

func newHistory() map[poker.Street][]MoveRecord {
	h := make(map[poker.Street][]MoveRecord, 4)
	for _, s := range poker.StreetOrder() {
		h[s] = []MoveRecord{}
	}
	return h
}

// Run replays every queued move in game order. It ends naturally when all
// queues are exhausted: the replayer never forces a street to complete and
// never invents actions. On error the cycle's history is discarded.
func (r *Replayer) Run(queues map[poker.Position][]poker.MoveType) (map[poker.Street][]MoveRecord, error) {
	r.queues = queues
	r.cursors = make(map[poker.Position]int, len(queues))

	for r.movesPending() {
		idx := r.oracle.ActorIndex()
		if idx < 0 {
			// Hand is over but icons are still queued: the detected data
			// disagrees with how the hand actually went.
			return nil, &InvalidPositionSequenceError{
				Street:  r.currentStreet(),
				Pending: r.pendingPositions(),
			}
		}
		actor := r.seats[idx]

		if !r.hasQueued(actor) {
			return nil, &InvalidPositionSequenceError{
				Street:   r.currentStreet(),
				Actor:    actor,
				HasActor: true,
				Pending:  r.pendingPositions(),
			}
		}

		move := r.queues[actor][r.cursors[actor]]
		if err := r.ProcessAction(actor, move); err != nil {
			return nil, err
		}
		r.cursors[actor]++
	}
	return r.history, nil
}

// ProcessAction validates that position is the oracle's actor, applies one
// move, and records it against the street it was taken on. The oracle may
// advance the street as a side effect; the captured street is recorded, not
// the resulting one.
func (r *Replayer) ProcessAction(position poker.Position, move poker.MoveType) error {
	idx := r.oracle.ActorIndex()
	if idx < 0 || r.seats[idx] != position {
		return &InvalidPositionSequenceError{
			Street:   r.currentStreet(),
			Actor:    position,
			HasActor: true,
			Pending:  r.pendingPositions(),
		}
	}

	street := r.currentStreet()
	if err := r.apply(position, move, street); err != nil {
		return err
	}

	r.log.Info("action processed", "position", position.String(), "move", move.String(), "street", street.String())
	r.history[street] = append(r.history[street], MoveRecord{Position: position, Move: move})
	return nil
}

// apply translates one detected move into exactly one oracle operation,
// guarded by the oracle's reported legality. Any other combination means a
// misclassified icon and fails the cycle.
func (r *Replayer) apply(position poker.Position, move poker.MoveType, street poker.Street) error {
	invalid := &InvalidActionError{Position: position, Move: move, Street: street}

	switch move {
	case poker.MoveFold:
		if !r.oracle.CanFold() {
			return invalid
		}
		if err := r.oracle.Fold(); err != nil {
			return invalid
		}
	case poker.MoveCheck:
		if !r.oracle.CanCheckOrCall() || r.oracle.CheckingOrCallingAmount() != 0 {
			return invalid
		}
		if err := r.oracle.CheckOrCall(); err != nil {
			return invalid
		}
	case poker.MoveCall:
		if !r.oracle.CanCheckOrCall() || r.oracle.CheckingOrCallingAmount() == 0 {
			return invalid
		}
		if err := r.oracle.CheckOrCall(); err != nil {
			return invalid
		}
	case poker.MoveBet, poker.MoveRaise:
		if !r.oracle.CanCompleteBetOrRaiseTo() {
			return invalid
		}
		// Always the oracle-reported minimum: the engine validates action
		// categories, it does not model real stake sizing.
		if err := r.oracle.CompleteBetOrRaiseTo(r.oracle.MinCompletionAmount()); err != nil {
			return invalid
		}
	default:
		return invalid
	}
	return nil
}

// History returns the validated per-street move history.
func (r *Replayer) History() map[poker.Street][]MoveRecord {
	return r.history
}

func (r *Replayer) currentStreet() poker.Street {
	if street, ok := poker.StreetFromIndex(r.oracle.StreetIndex()); ok {
		return street
	}
	return poker.River
}

func (r *Replayer) hasQueued(pos poker.Position) bool {
	return r.cursors[pos] < len(r.queues[pos])
}

func (r *Replayer) movesPending() bool {
	for pos := range r.queues {
		if r.hasQueued(pos) {
			return true
		}
	}
	return false
}

func (r *Replayer) pendingPositions() []poker.Position {
	pending := make([]poker.Position, 0, len(r.queues))
	for pos := range r.queues {
		if r.hasQueued(pos) {
			pending = append(pending, pos)
		}
	}
	sort.Slice(pending, func(i, j int) bool { return pending[i] < pending[j] })
	return pending
}
