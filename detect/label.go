package detect

import (
	"fmt"
	"strings"

	"omaha-recon/poker"
)

// LabelKind discriminates the closed Label variants.
type LabelKind byte

const (
	// KindNone is the "no marker" sentinel at an empty seat.
	KindNone LabelKind = iota
	// KindPosition is a position badge, possibly with a cosmetic suffix.
	KindPosition
	// KindAction is action text that visually replaced the position badge.
	KindAction
)

// ActionText is one of the action tokens the badge area can show instead of
// a position.
type ActionText byte

const (
	ActionFolds ActionText = iota
	ActionCalls
	ActionCalls1
	ActionOpenRaises
	ActionBets
	ActionChecks
	ActionCBets
)

var actionTexts = map[ActionText]string{
	ActionFolds:      "folds",
	ActionCalls:      "calls",
	ActionCalls1:     "calls_1",
	ActionOpenRaises: "open_raises",
	ActionBets:       "bets",
	ActionChecks:     "checks",
	ActionCBets:      "c_bets",
}

func (a ActionText) String() string {
	if s, ok := actionTexts[a]; ok {
		return s
	}
	return fmt.Sprintf("ActionText(%d)", byte(a))
}

// Label is a classified per-seat detection: a position badge, action text,
// or the empty-seat sentinel. Labels are immutable values created fresh per
// detection.
type Label struct {
	value  string
	kind   LabelKind
	pos    poker.Position
	action ActionText
}

func (l Label) String() string {
	if l.kind == KindNone {
		return Sentinel
	}
	return l.value
}

func (l Label) Kind() LabelKind { return l.kind }

// IsPosition reports whether the label names a position, including its
// suffixed variants (a folded badge still pins the seat's position).
func (l Label) IsPosition() bool { return l.kind == KindPosition }

// IsAction reports whether the label is action text that replaced a badge.
func (l Label) IsAction() bool { return l.kind == KindAction }

// Position returns the base position with any cosmetic suffix stripped.
func (l Label) Position() (poker.Position, bool) {
	return l.pos, l.kind == KindPosition
}

// Action returns the action token for action labels.
func (l Label) Action() (ActionText, bool) {
	return l.action, l.kind == KindAction
}

// positionVariants is the closed badge catalog: canonical codes plus the
// suffixed renderings the template set actually contains.
var positionVariants = map[string]poker.Position{
	"BTN": poker.Button,
	"SB":  poker.SmallBlind,
	"BB":  poker.BigBlind,
	"EP":  poker.EarlyPosition,
	"MP":  poker.MiddlePosition,
	"CO":  poker.Cutoff,

	"BTN_fold":     poker.Button,
	"BTN_fold_red": poker.Button,
	"SB_fold":      poker.SmallBlind,
	"BB_fold":      poker.BigBlind,
	"BB_low":       poker.BigBlind,
	"EP_fold":      poker.EarlyPosition,
	"EP_low":       poker.EarlyPosition,
	"EP_now":       poker.EarlyPosition,
	"MP_fold":      poker.MiddlePosition,
	"CO_fold":      poker.Cutoff,
}

var actionByValue = func() map[string]ActionText {
	m := make(map[string]ActionText, len(actionTexts))
	for k, v := range actionTexts {
		m[v] = k
	}
	return m
}()

// actionAliases maps detector shorthand to catalog action tokens.
var actionAliases = map[string]string{
	"FOLD":  "folds",
	"CALL":  "calls",
	"RAISE": "open_raises",
	"BET":   "bets",
	"CHECK": "checks",
	"CBET":  "c_bets",
	"C-BET": "c_bets",
}

// ClassificationError reports a raw label that matched nothing in the
// catalog. Policy is local: the caller drops the entry and keeps going.
type ClassificationError struct {
	Raw string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("cannot classify detection %q", e.Raw)
}

// Classify parses a raw detection string into a Label. Exact catalog matches
// win; otherwise the uppercase alias table is consulted. Anything else is a
// ClassificationError for that single entry.
func Classify(raw string) (Label, error) {
	name := strings.TrimSpace(raw)

	if name == Sentinel {
		return Label{value: Sentinel, kind: KindNone}, nil
	}
	if pos, ok := positionVariants[name]; ok {
		return Label{value: name, kind: KindPosition, pos: pos}, nil
	}
	if act, ok := actionByValue[name]; ok {
		return Label{value: name, kind: KindAction, action: act}, nil
	}
	if canonical, ok := actionAliases[strings.ToUpper(name)]; ok {
		return Label{value: canonical, kind: KindAction, action: actionByValue[canonical]}, nil
	}
	return Label{}, &ClassificationError{Raw: raw}
}

// suffixes are stripped in this fixed order; stripping iterates so compound
// renderings like BTN_fold_red resolve to their base code.
var suffixes = []string{"_fold", "_low", "_now", "_red"}

// BasePositionCode strips cosmetic suffixes from a badge value, returning
// the canonical position code it renders.
func BasePositionCode(value string) string {
	for {
		stripped := value
		for _, suf := range suffixes {
			if strings.HasSuffix(value, suf) {
				stripped = value[:len(value)-len(suf)]
				break
			}
		}
		if stripped == value {
			return value
		}
		value = stripped
	}
}
