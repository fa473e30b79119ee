package card

import "testing"

func TestParseTemplate(t *testing.T) {
	cases := []struct {
		name string
		want Card
	}{
		{"AS", CardSpadeA},
		{"as", CardSpadeA},
		{"10H", CardHeartT},
		{"Th", CardHeartT},
		{"td", CardDiamondT},
		{"KD", CardDiamondK},
		{"2c", CardClub2},
		{" QS ", CardSpadeQ},
	}
	for _, c := range cases {
		got, err := ParseTemplate(c.name)
		if err != nil {
			t.Fatalf("ParseTemplate(%q) err: %v", c.name, err)
		}
		if got != c.want {
			t.Fatalf("ParseTemplate(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParseTemplateRejectsGarbage(t *testing.T) {
	for _, name := range []string{"", "A", "AX", "11S", "fold", "NO"} {
		if _, err := ParseTemplate(name); err == nil {
			t.Fatalf("ParseTemplate(%q) expected error", name)
		}
	}
}

func TestStringMatchesTemplateNames(t *testing.T) {
	cases := []struct {
		card Card
		want string
	}{
		{CardSpadeA, "AS"},
		{CardHeartT, "10H"},
		{CardDiamondK, "KD"},
		{CardClub2, "2C"},
	}
	for _, c := range cases {
		if got := c.card.String(); got != c.want {
			t.Fatalf("%v.String() = %q, want %q", byte(c.card), got, c.want)
		}
		back, err := ParseTemplate(c.want)
		if err != nil || back != c.card {
			t.Fatalf("ParseTemplate(%q) = %v, %v, want %v", c.want, back, err, c.card)
		}
	}
}

func TestUnicode(t *testing.T) {
	if got := CardSpadeA.Unicode(); got != "A♠" {
		t.Fatalf("CardSpadeA.Unicode() = %q", got)
	}
	if got := CardHeartT.Unicode(); got != "10♥" {
		t.Fatalf("CardHeartT.Unicode() = %q", got)
	}
}

func TestRankAndSuit(t *testing.T) {
	if CardSpadeA.Rank() != 1 || !CardSpadeA.IsAce() {
		t.Fatalf("CardSpadeA rank = %d", CardSpadeA.Rank())
	}
	if CardDiamondK.Rank() != 13 {
		t.Fatalf("CardDiamondK rank = %d", CardDiamondK.Rank())
	}
	if CardDiamondK.Suit() != Diamond {
		t.Fatalf("CardDiamondK suit = %v", CardDiamondK.Suit())
	}
	if CardInvalid.Rank() != 0 {
		t.Fatalf("CardInvalid rank = %d", CardInvalid.Rank())
	}
}

func TestValid(t *testing.T) {
	deck := 0
	for _, span := range [][2]Card{
		{CardSpadeA, CardSpadeK},
		{CardHeartA, CardHeartK},
		{CardClubA, CardClubK},
		{CardDiamondA, CardDiamondK},
	} {
		for c := span[0]; c <= span[1]; c++ {
			if !c.Valid() {
				t.Fatalf("card %#02x reported invalid", byte(c))
			}
			deck++
		}
	}
	if deck != 52 {
		t.Fatalf("enum spans cover %d cards, want 52", deck)
	}

	for _, c := range []Card{CardInvalid, 0x0E, 0x10, 0x1F, 0x40, 0xFF} {
		if c.Valid() {
			t.Fatalf("non-card %#02x reported valid", byte(c))
		}
	}
}

func TestFormat(t *testing.T) {
	cards := []Card{CardSpade4, CardDiamond6, CardHeartJ}
	if got := FormatSimple(cards); got != "4S6DJH" {
		t.Fatalf("FormatSimple = %q", got)
	}
	if got := FormatUnicode(cards); got != "4♠ 6♦ J♥" {
		t.Fatalf("FormatUnicode = %q", got)
	}
	if got := FormatSimple([]Card{CardInvalid, CardSpade4}); got != "4S" {
		t.Fatalf("FormatSimple with invalid = %q", got)
	}
}

func TestParseTemplates(t *testing.T) {
	cards, err := ParseTemplates([]string{"AS", "KD", "QH", "JD"})
	if err != nil {
		t.Fatalf("ParseTemplates err: %v", err)
	}
	if len(cards) != 4 || cards[0] != CardSpadeA || cards[3] != CardDiamondJ {
		t.Fatalf("ParseTemplates = %v", cards)
	}
	if _, err := ParseTemplates([]string{"AS", "bogus"}); err == nil {
		t.Fatal("ParseTemplates expected error on bad name")
	}
}
