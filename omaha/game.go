// Package omaha implements the betting-rules side of a pot-limit Omaha hand:
// turn order, action legality, blind posting and street advancement for a
// single table. It owns no detection state; the reconciliation engine drives
// it through the oracle surface (actor/opener indices, legality queries and
// the three mutating operations) and records the results.
//
// Stakes are fixed at the reference table the detector watches: uniform
// 100bb stacks at 5/10 chips. Side-pot and settlement arithmetic is not
// modeled; the pot is tracked only as a running total.
package omaha

import "fmt"

const (
	// InvalidIndex is reported for the actor/opener once the hand is over.
	InvalidIndex = -1

	smallBlind   int64 = 5
	bigBlind     int64 = 10
	defaultStack int64 = 1000

	riverIndex = 3
)

// Game is one in-progress hand. Seats are indexed 0..n-1 with the small
// blind at 0 and the big blind at 1; heads-up, seat 0 is also the button.
type Game struct {
	n      int
	street int

	stacks []int64
	bets   []int64
	folded []bool
	allIn  []bool

	pot        int64
	curBet     int64
	minRaise   int64
	needAction int

	actor  int
	opener int

	active     int
	allInCount int
	ended      bool
}

// NewGame starts a hand for playerCount seats, posting both blinds and
// leaving the opener to act.
func NewGame(playerCount int) (*Game, error) {
	if playerCount < 2 {
		return nil, fmt.Errorf("need at least 2 players to start a hand, got %d", playerCount)
	}
	if playerCount > 6 {
		return nil, fmt.Errorf("at most 6 players are supported, got %d", playerCount)
	}

	g := &Game{
		n:      playerCount,
		stacks: make([]int64, playerCount),
		bets:   make([]int64, playerCount),
		folded: make([]bool, playerCount),
		allIn:  make([]bool, playerCount),
		active: playerCount,
	}
	for i := range g.stacks {
		g.stacks[i] = defaultStack
	}

	g.put(0, smallBlind)
	g.put(1, bigBlind)
	g.curBet = bigBlind
	g.minRaise = bigBlind
	// Everyone still owes a response preflop, the big blind's option included.
	g.needAction = playerCount - g.allInCount

	if playerCount == 2 {
		g.opener = 0
	} else {
		g.opener = 2
	}
	g.actor = g.opener
	return g, nil
}

// PlayerCount returns the number of seats dealt into the hand.
func (g *Game) PlayerCount() int { return g.n }

// StreetIndex returns 0..3 for preflop..river, or InvalidIndex once the
// hand has ended.
func (g *Game) StreetIndex() int {
	if g.ended {
		return InvalidIndex
	}
	return g.street
}

// ActorIndex returns the seat expected to act, or InvalidIndex once the
// hand has ended.
func (g *Game) ActorIndex() int {
	if g.ended {
		return InvalidIndex
	}
	return g.actor
}

// OpenerIndex returns the seat that acts first in the current betting round.
func (g *Game) OpenerIndex() int {
	if g.ended {
		return InvalidIndex
	}
	return g.opener
}

// Ended reports whether the hand is over (one player left, or river betting
// closed).
func (g *Game) Ended() bool { return g.ended }

// Pot returns the chips collected from completed betting rounds.
func (g *Game) Pot() int64 { return g.pot }

// CanFold reports whether folding is legal for the actor. Folding with
// nothing to call is refused; a free check is always available instead.
func (g *Game) CanFold() bool {
	return !g.ended && g.bets[g.actor] < g.curBet
}

// CanCheckOrCall reports whether the actor may check or call.
func (g *Game) CanCheckOrCall() bool {
	return !g.ended
}

// CheckingOrCallingAmount returns the chips the actor must put in to
// continue; zero means a check.
func (g *Game) CheckingOrCallingAmount() int64 {
	if g.ended {
		return 0
	}
	owe := g.curBet - g.bets[g.actor]
	if owe < 0 {
		owe = 0
	}
	if owe > g.stacks[g.actor] {
		owe = g.stacks[g.actor]
	}
	return owe
}

// CanCompleteBetOrRaiseTo reports whether the actor may bet or raise.
func (g *Game) CanCompleteBetOrRaiseTo() bool {
	if g.ended {
		return false
	}
	if g.stacks[g.actor]+g.bets[g.actor] <= g.curBet {
		return false
	}
	// No one left to respond: betting is locked.
	return g.active-g.allInCount > 1
}

// MinCompletionAmount returns the smallest legal total bet the actor may
// complete or raise to, clamped to an all-in when short.
func (g *Game) MinCompletionAmount() int64 {
	target := g.curBet + g.minRaise
	if g.curBet == 0 {
		target = bigBlind
	}
	if avail := g.stacks[g.actor] + g.bets[g.actor]; target > avail {
		target = avail
	}
	return target
}

// Fold mucks the actor's hand and removes it from the rest of the hand.
func (g *Game) Fold() error {
	if g.ended {
		return ErrHandEnded
	}
	if !g.CanFold() {
		return ErrIllegalOperation
	}

	g.folded[g.actor] = true
	g.active--
	g.needAction--

	if g.active == 1 {
		g.finish()
		return nil
	}
	g.afterAction()
	return nil
}

// CheckOrCall puts in the outstanding amount; zero outstanding is a check.
func (g *Game) CheckOrCall() error {
	if g.ended {
		return ErrHandEnded
	}
	g.put(g.actor, g.CheckingOrCallingAmount())
	g.needAction--
	g.afterAction()
	return nil
}

// CompleteBetOrRaiseTo raises the actor's total bet for this round to
// amount, reopening the action for everyone still in.
func (g *Game) CompleteBetOrRaiseTo(amount int64) error {
	if g.ended {
		return ErrHandEnded
	}
	if !g.CanCompleteBetOrRaiseTo() {
		return ErrIllegalOperation
	}
	avail := g.stacks[g.actor] + g.bets[g.actor]
	if amount <= g.curBet || amount > avail {
		return ErrIllegalOperation
	}
	// A short all-in may come in under the minimum raise; it does not
	// re-set the raise floor.
	if delta := amount - g.curBet; delta >= g.minRaise {
		g.minRaise = delta
	} else if amount != avail {
		return ErrIllegalOperation
	}
	g.curBet = amount
	g.put(g.actor, amount-g.bets[g.actor])

	// Everyone still eligible owes a response. The raiser has just acted,
	// but a raise that put them all-in already left the eligible set.
	g.needAction = g.active - g.allInCount
	if !g.allIn[g.actor] {
		g.needAction--
	}
	g.afterAction()
	return nil
}

func (g *Game) put(seat int, amount int64) {
	if amount <= 0 {
		return
	}
	if amount >= g.stacks[seat] {
		amount = g.stacks[seat]
		g.allIn[seat] = true
		g.allInCount++
	}
	g.stacks[seat] -= amount
	g.bets[seat] += amount
}

func (g *Game) afterAction() {
	if g.needAction <= 0 {
		g.endBettingRound()
		return
	}
	next := g.nextEligible(g.actor + 1)
	if next == InvalidIndex {
		g.endBettingRound()
		return
	}
	g.actor = next
}

// nextEligible walks the ring from seat, returning the first player who can
// still act this round.
func (g *Game) nextEligible(seat int) int {
	for i := 0; i < g.n; i++ {
		idx := (seat + i) % g.n
		if !g.folded[idx] && !g.allIn[idx] {
			return idx
		}
	}
	return InvalidIndex
}

func (g *Game) endBettingRound() {
	g.collectBets()

	if g.street == riverIndex || g.active-g.allInCount <= 1 {
		g.finish()
		return
	}

	g.street++
	g.minRaise = bigBlind
	g.needAction = g.active - g.allInCount

	// Postflop the small blind side opens; heads-up the big blind does.
	// Heads-up is decided by the dealt player count, not by who remains.
	start := 0
	if g.n == 2 {
		start = 1
	}
	g.opener = g.nextEligible(start)
	g.actor = g.opener
}

func (g *Game) collectBets() {
	for i := range g.bets {
		g.pot += g.bets[i]
		g.bets[i] = 0
	}
	g.curBet = 0
}

func (g *Game) finish() {
	g.collectBets()
	g.ended = true
	g.actor = InvalidIndex
	g.opener = InvalidIndex
}
