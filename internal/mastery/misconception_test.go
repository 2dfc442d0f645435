package mastery

import (
	"fmt"
	"testing"
)

func TestMergeMisconceptions_IncrementsExisting(t *testing.T) {
	existing := []Misconception{
		{Label: "adds denominators", ConceptID: "fractions-add", Count: 2},
	}

	merged := MergeMisconceptions(existing, "fractions-add", []string{"adds denominators"})

	if len(merged) != 1 {
		t.Fatalf("len = %d, want 1 (no duplicate)", len(merged))
	}
	if merged[0].Count != 3 {
		t.Errorf("count = %d, want 3", merged[0].Count)
	}
}

func TestMergeMisconceptions_AppendsUnseen(t *testing.T) {
	merged := MergeMisconceptions(nil, "fractions-add", []string{"adds denominators", "ignores whole part"})

	if len(merged) != 2 {
		t.Fatalf("len = %d, want 2", len(merged))
	}
	for _, mc := range merged {
		if mc.Count != 1 {
			t.Errorf("%q count = %d, want 1", mc.Label, mc.Count)
		}
	}
}

func TestMergeMisconceptions_IgnoresEmptyLabels(t *testing.T) {
	merged := MergeMisconceptions(nil, "c1", []string{"", "real one", ""})
	if len(merged) != 1 {
		t.Fatalf("len = %d, want 1", len(merged))
	}
}

func TestMergeMisconceptions_BoundedDropsLeastFrequent(t *testing.T) {
	var existing []Misconception
	for i := 0; i < MaxMisconceptions; i++ {
		existing = append(existing, Misconception{
			Label: fmt.Sprintf("pattern-%d", i),
			Count: i + 2, // all more frequent than the newcomer
		})
	}
	merged := MergeMisconceptions(existing, "c1", []string{"newcomer"})

	if len(merged) != MaxMisconceptions {
		t.Fatalf("len = %d, want bounded at %d", len(merged), MaxMisconceptions)
	}
	for _, mc := range merged {
		if mc.Label == "newcomer" {
			t.Error("least-frequent newcomer should have been dropped on overflow")
		}
	}
}

func TestMergeMisconceptions_DoesNotMutateInput(t *testing.T) {
	existing := []Misconception{{Label: "x", Count: 1}}
	_ = MergeMisconceptions(existing, "c1", []string{"x", "y"})

	if existing[0].Count != 1 {
		t.Errorf("input slice mutated: count = %d, want 1", existing[0].Count)
	}
	if len(existing) != 1 {
		t.Errorf("input slice grew: len = %d, want 1", len(existing))
	}
}
