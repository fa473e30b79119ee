package card

import "strings"

// FormatSimple concatenates template names, e.g. "4S6DJH".
func FormatSimple(cards []Card) string {
	var b strings.Builder
	for _, c := range cards {
		if !c.Valid() {
			continue
		}
		b.WriteString(c.String())
	}
	return b.String()
}

// FormatUnicode joins unicode card renderings with spaces, e.g. "4♠ 6♦ J♥".
func FormatUnicode(cards []Card) string {
	parts := make([]string, 0, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			continue
		}
		parts = append(parts, c.Unicode())
	}
	return strings.Join(parts, " ")
}

// ParseTemplates parses a list of template names, failing on the first bad one.
func ParseTemplates(names []string) ([]Card, error) {
	out := make([]Card, 0, len(names))
	for _, n := range names {
		c, err := ParseTemplate(n)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
