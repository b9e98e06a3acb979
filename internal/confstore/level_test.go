package confstore

import "testing"

func TestLevelOrderingIsTotal(t *testing.T) {
	ordered := []ConfigLevel{
		LevelSystemWide,
		LevelProgramData,
		LevelXdg,
		LevelGlobal,
		LevelLocal,
		LevelApp,
		LevelOverride,
	}

	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("%s (%d) should rank below %s (%d)",
				ordered[i-1], ordered[i-1], ordered[i], ordered[i])
		}
	}
}

func TestLevelStringParseRoundTrip(t *testing.T) {
	for l, name := range levelNames {
		if l.String() != name {
			t.Errorf("%d.String() = %q, want %q", l, l.String(), name)
		}
		parsed, err := ParseLevel(name)
		if err != nil {
			t.Errorf("ParseLevel(%q): %v", name, err)
			continue
		}
		if parsed != l {
			t.Errorf("ParseLevel(%q) = %d, want %d", name, parsed, l)
		}
	}
}

func TestParseLevelUnknown(t *testing.T) {
	if _, err := ParseLevel("galactic"); err == nil {
		t.Errorf("ParseLevel accepted an unknown level name")
	}
}

func TestLevelStringUnknown(t *testing.T) {
	if got := ConfigLevel(99).String(); got != "level(99)" {
		t.Errorf("String() = %q, want %q", got, "level(99)")
	}
}
