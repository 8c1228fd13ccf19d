package catalog

import (
	"testing"

	"cogscreen_backend/internal/model"
	"cogscreen_backend/internal/scale"
)

func TestLoadValidates(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c.Version != Version {
		t.Errorf("version = %q, want %q", c.Version, Version)
	}

	counts := map[scale.Instrument]int{}
	for _, g := range c.Groups {
		for _, it := range g.Items {
			if it.Scale != nil {
				counts[it.Scale.Instrument]++
			}
		}
	}
	if counts[scale.BADL] != 20 {
		t.Errorf("BADL items = %d, want 20", counts[scale.BADL])
	}
	if counts[scale.Stage] != 1 {
		t.Errorf("staging items = %d, want 1", counts[scale.Stage])
	}
	if counts[scale.Depression] != 15 {
		t.Errorf("depression items = %d, want 15", counts[scale.Depression])
	}
}

func TestItemShape(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	for _, g := range c.Groups {
		for _, it := range g.Items {
			if it.Scale == nil {
				continue
			}
			switch it.Scale.Instrument {
			case scale.BADL:
				if len(it.Options) != 5 {
					t.Errorf("%s: BADL item has %d options", it.Code, len(it.Options))
				}
			case scale.Stage:
				if len(it.Options) != 7 {
					t.Errorf("%s: staging item has %d options", it.Code, len(it.Options))
				}
			case scale.Depression:
				if it.Scale.Direction == "" {
					t.Errorf("%s: depression item missing direction", it.Code)
				}
			}
			if it.TextAR == "" || it.TextEN == "" {
				t.Errorf("%s: missing localized text", it.Code)
			}
			for i, o := range it.Options {
				if o.EN == "" || o.AR == "" {
					t.Errorf("%s option %d: option lists not parallel", it.Code, i)
				}
			}
		}
	}
}

func TestStableIDs(t *testing.T) {
	a, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	b, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	for gi := range a.Groups {
		for qi := range a.Groups[gi].Items {
			if a.Groups[gi].Items[qi].ID != b.Groups[gi].Items[qi].ID {
				t.Fatalf("item IDs differ between loads for %s", a.Groups[gi].Items[qi].Code)
			}
		}
	}
}

func TestQuestionLookup(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	it, ok := c.Question(1)
	if !ok || it.ID != 1 {
		t.Fatalf("Question(1) = (%v,%v)", it, ok)
	}
	if _, ok := c.Question(99999); ok {
		t.Fatal("Question(99999) should not resolve")
	}
}

func TestModelsSeedRows(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	groups := c.Models()
	if len(groups) != len(c.Groups) {
		t.Fatalf("Models() returned %d groups, want %d", len(groups), len(c.Groups))
	}
	total := 0
	for _, g := range groups {
		if g.CatalogVersion != Version {
			t.Errorf("group %s version = %q", g.Code, g.CatalogVersion)
		}
		total += len(g.Questions)
	}
	want := 0
	for _, g := range c.Groups {
		want += len(g.Items)
	}
	if total != want {
		t.Fatalf("Models() has %d questions, want %d", total, want)
	}
}

func TestTextByLanguage(t *testing.T) {
	c, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	it, _ := c.Question(1)
	if it.Text(model.LanguageEnglish) != it.TextEN {
		t.Error("English text mismatch")
	}
	if it.Text(model.LanguageArabic) != it.TextAR {
		t.Error("Arabic text mismatch")
	}
}
