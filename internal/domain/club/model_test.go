package club

import "testing"

func TestNormalizeKey_AccentCaseWhitespace(t *testing.T) {
	t.Parallel()

	variants := []string{"São Paulo", "sao   paulo", "SÃO PAULO", "  são\tpaulo "}
	want := "sao paulo"
	for _, v := range variants {
		if got := NormalizeKey(v); got != want {
			t.Fatalf("NormalizeKey(%q) = %q, want %q", v, got, want)
		}
	}
}

func TestNormalizeKey_Empty(t *testing.T) {
	t.Parallel()

	if got := NormalizeKey("   "); got != "" {
		t.Fatalf("expected empty key, got %q", got)
	}
}

func TestDisplayName_PrefersShort(t *testing.T) {
	t.Parallel()

	c := Club{NameOfficial: "Cruzeiro Esporte Clube", NameShort: "Cruzeiro"}
	if got := c.DisplayName(); got != "Cruzeiro" {
		t.Fatalf("expected short name, got %q", got)
	}

	c.NameShort = " "
	if got := c.DisplayName(); got != "Cruzeiro Esporte Clube" {
		t.Fatalf("expected official name fallback, got %q", got)
	}
}
