package poker

import (
	"fmt"
	"strings"
)

// MoveType covers every move the detector can report: betting actions plus
// non-betting control moves carried through unchanged.
type MoveType byte

const (
	MoveFold MoveType = iota
	MoveCall
	MoveRaise
	MoveCheck
	MoveBet
	MoveAllIn
	MoveMuck
	MoveShow
	MoveTimeBank
	MoveAutoFold
	MoveAutoCheck
	MoveAutoCall
	MoveSitOut
	MoveSitIn
	MoveLeaveTable
	MoveJoinTable
	MoveComplete
	MoveBringIn
)

var moveNames = map[MoveType]string{
	MoveFold:       "fold",
	MoveCall:       "call",
	MoveRaise:      "raise",
	MoveCheck:      "check",
	MoveBet:        "bet",
	MoveAllIn:      "all_in",
	MoveMuck:       "muck",
	MoveShow:       "show",
	MoveTimeBank:   "time_bank",
	MoveAutoFold:   "auto_fold",
	MoveAutoCheck:  "auto_check",
	MoveAutoCall:   "auto_call",
	MoveSitOut:     "sit_out",
	MoveSitIn:      "sit_in",
	MoveLeaveTable: "leave_table",
	MoveJoinTable:  "join_table",
	MoveComplete:   "complete",
	MoveBringIn:    "bring_in",
}

var moveByName = func() map[string]MoveType {
	m := make(map[string]MoveType, len(moveNames))
	for k, v := range moveNames {
		m[v] = k
	}
	return m
}()

func (m MoveType) String() string {
	if name, ok := moveNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MoveType(%d)", byte(m))
}

// moveAliases maps action-icon template names and shorthand to moves.
// Sizing suffixes in templates (call_35, or_2) collapse to the category.
var moveAliases = map[string]MoveType{
	"fold":     MoveFold,
	"f":        MoveFold,
	"call":     MoveCall,
	"call_35":  MoveCall,
	"c":        MoveCall,
	"limps":    MoveCall,
	"limp":     MoveCall,
	"raise":    MoveRaise,
	"or_35":    MoveRaise,
	"or_2":     MoveRaise,
	"r":        MoveRaise,
	"bet":      MoveBet,
	"b":        MoveBet,
	"cb":       MoveBet,
	"check":    MoveCheck,
	"k":        MoveCheck,
	"x":        MoveCheck,
	"all_in":   MoveAllIn,
	"allin":    MoveAllIn,
	"all-in":   MoveAllIn,
	"muck":     MoveMuck,
	"show":     MoveShow,
	"complete": MoveComplete,
	"comp":     MoveComplete,
}

// NormalizationError reports a single action token that could not be mapped
// to a MoveType. The remaining tokens in the same detection list are
// unaffected.
type NormalizationError struct {
	Token string
}

func (e *NormalizationError) Error() string {
	return fmt.Sprintf("cannot normalize action %q to a move type", e.Token)
}

// NormalizeMove maps a raw action-icon detection to its canonical move.
func NormalizeMove(raw string) (MoveType, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	if m, ok := moveAliases[token]; ok {
		return m, nil
	}
	if m, ok := moveByName[token]; ok {
		return m, nil
	}
	return 0, &NormalizationError{Token: raw}
}
