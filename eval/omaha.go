// Package eval scores Omaha hands: exactly two of the four hole cards
// combined with exactly three board cards, best five-card hand wins.
package eval

import (
	"fmt"

	poker "github.com/paulhankin/poker"

	"omaha-recon/card"
)

// Result is the best five-card hand found for a hole/board pair. Larger
// scores beat smaller ones.
type Result struct {
	Score int16        `json:"score"`
	Hole  [2]card.Card `json:"hole"`
	Board [3]card.Card `json:"board"`
	Desc  string       `json:"desc"`
}

func (r *Result) String() string {
	return fmt.Sprintf("%s (%s + %s)",
		r.Desc,
		card.FormatUnicode(r.Hole[:]),
		card.FormatUnicode(r.Board[:]))
}

// BestOmahaHand evaluates every legal 2-of-4 hole and 3-of-board
// combination and returns the strongest.
func BestOmahaHand(hole, board []card.Card) (*Result, error) {
	if len(hole) != 4 {
		return nil, fmt.Errorf("omaha hand needs exactly 4 hole cards, got %d", len(hole))
	}
	if len(board) < 3 || len(board) > 5 {
		return nil, fmt.Errorf("board must have 3 to 5 cards, got %d", len(board))
	}

	libHole, err := toLib(hole)
	if err != nil {
		return nil, err
	}
	libBoard, err := toLib(board)
	if err != nil {
		return nil, err
	}

	var best *Result
	for h1 := 0; h1 < 3; h1++ {
		for h2 := h1 + 1; h2 < 4; h2++ {
			for b1 := 0; b1 < len(board)-2; b1++ {
				for b2 := b1 + 1; b2 < len(board)-1; b2++ {
					for b3 := b2 + 1; b3 < len(board); b3++ {
						five := [5]poker.Card{libHole[h1], libHole[h2], libBoard[b1], libBoard[b2], libBoard[b3]}
						score := poker.Eval5(&five)
						if best == nil || score > best.Score {
							best = &Result{
								Score: score,
								Hole:  [2]card.Card{hole[h1], hole[h2]},
								Board: [3]card.Card{board[b1], board[b2], board[b3]},
							}
							if desc, err := poker.Describe(five[:]); err == nil {
								best.Desc = desc
							}
						}
					}
				}
			}
		}
	}
	return best, nil
}

func toLib(cards []card.Card) ([]poker.Card, error) {
	out := make([]poker.Card, len(cards))
	for i, c := range cards {
		if !c.Valid() {
			return nil, fmt.Errorf("not a playing card: %#02x", byte(c))
		}
		var suit poker.Suit
		switch c.Suit() {
		case card.Club:
			suit = poker.Club
		case card.Diamond:
			suit = poker.Diamond
		case card.Heart:
			suit = poker.Heart
		case card.Spade:
			suit = poker.Spade
		}
		// Both encodings put the ace at 1, so ranks map straight across.
		lc, err := poker.MakeCard(suit, poker.Rank(c.Rank()))
		if err != nil {
			return nil, fmt.Errorf("card %s: %w", c, err)
		}
		out[i] = lc
	}
	return out, nil
}
