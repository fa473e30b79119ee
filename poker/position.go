package poker

import (
	"fmt"
	"strings"
)

// Position is a seat role at a 6-max table.
type Position byte

const (
	EarlyPosition Position = iota
	MiddlePosition
	Cutoff
	Button
	SmallBlind
	BigBlind
)

var positionCodes = map[Position]string{
	EarlyPosition:  "EP",
	MiddlePosition: "MP",
	Cutoff:         "CO",
	Button:         "BTN",
	SmallBlind:     "SB",
	BigBlind:       "BB",
}

func (p Position) String() string {
	if code, ok := positionCodes[p]; ok {
		return code
	}
	return fmt.Sprintf("Position(%d)", byte(p))
}

func (p Position) IsBlind() bool {
	return p == SmallBlind || p == BigBlind
}

func (p Position) IsEarly() bool {
	return p == EarlyPosition || p == MiddlePosition
}

func (p Position) IsLate() bool {
	return p == Cutoff || p == Button
}

// ActionOrder lists positions in voluntary-action order (blinds are posted
// automatically and act last).
func ActionOrder() []Position {
	return []Position{EarlyPosition, MiddlePosition, Cutoff, Button, SmallBlind, BigBlind}
}

// PostflopActionOrder lists positions in postflop action order (blinds first).
func PostflopActionOrder() []Position {
	return []Position{SmallBlind, BigBlind, EarlyPosition, MiddlePosition, Cutoff, Button}
}

// AllPositions lists all six positions in clockwise table order.
func AllPositions() []Position {
	return []Position{SmallBlind, BigBlind, EarlyPosition, MiddlePosition, Cutoff, Button}
}

// PriorityOrder ranks positions for inference tie-breaking, most important
// first.
func PriorityOrder() []Position {
	return []Position{Button, SmallBlind, BigBlind, Cutoff, EarlyPosition, MiddlePosition}
}

// tableTemplates lists the canonical position set per table size. Keyed scan
// order matters to callers; use TableSizes for that.
var tableTemplates = map[int][]Position{
	6: {EarlyPosition, MiddlePosition, Cutoff, Button, SmallBlind, BigBlind},
	5: {EarlyPosition, Cutoff, Button, SmallBlind, BigBlind},
	4: {Cutoff, Button, SmallBlind, BigBlind},
	3: {Button, SmallBlind, BigBlind},
	2: {SmallBlind, BigBlind},
}

// TableSizes returns the template scan order used for table-size detection.
// Largest first: the 6-max template is the universal set, so it matches
// whenever every detected position is canonical. Preserved as observed in
// production; do not reorder.
func TableSizes() []int {
	return []int{6, 5, 4, 3, 2}
}

// TableTemplate returns the canonical position set for a table size.
func TableTemplate(size int) ([]Position, bool) {
	t, ok := tableTemplates[size]
	return t, ok
}

var positionAliases = map[string]Position{
	"EP":              EarlyPosition,
	"UTG":             EarlyPosition,
	"EARLY":           EarlyPosition,
	"EARLY_POSITION":  EarlyPosition,
	"MP":              MiddlePosition,
	"MIDDLE":          MiddlePosition,
	"MIDDLE_POSITION": MiddlePosition,
	"CO":              Cutoff,
	"CUT":             Cutoff,
	"CUTOFF":          Cutoff,
	"BTN":             Button,
	"BU":              Button,
	"BUTTON":          Button,
	"DEALER":          Button,
	"SB":              SmallBlind,
	"SMALL":           SmallBlind,
	"SMALL_BLIND":     SmallBlind,
	"BB":              BigBlind,
	"BIG":             BigBlind,
	"BIG_BLIND":       BigBlind,
}

// ParsePosition normalizes common position string variations.
func ParsePosition(s string) (Position, error) {
	if p, ok := positionAliases[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("cannot normalize position %q", s)
}
