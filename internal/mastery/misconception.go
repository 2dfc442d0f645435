package mastery

// MaxMisconceptions bounds the retained misconception list. On overflow
// the least-frequent entry is dropped.
const MaxMisconceptions = 12

// Misconception is a labeled conceptual error pattern with an
// occurrence count.
type Misconception struct {
	Label     string `json:"label"`
	ConceptID string `json:"concept_id"`
	Count     int    `json:"count"`
}

// MergeMisconceptions folds newly detected labels into an existing list.
// Matching labels (same label text, any concept) have their count
// incremented; unseen labels are appended. The result is bounded to
// MaxMisconceptions by dropping least-frequent entries.
func MergeMisconceptions(existing []Misconception, conceptID string, labels []string) []Misconception {
	merged := make([]Misconception, len(existing))
	copy(merged, existing)

	for _, label := range labels {
		if label == "" {
			continue
		}
		found := false
		for i := range merged {
			if merged[i].Label == label {
				merged[i].Count++
				found = true
				break
			}
		}
		if !found {
			merged = append(merged, Misconception{
				Label:     label,
				ConceptID: conceptID,
				Count:     1,
			})
		}
	}

	for len(merged) > MaxMisconceptions {
		merged = dropLeastFrequent(merged)
	}
	return merged
}

// dropLeastFrequent removes the lowest-count entry, preferring the
// oldest on ties so recent observations survive.
func dropLeastFrequent(list []Misconception) []Misconception {
	lowest := 0
	for i := range list {
		if list[i].Count < list[lowest].Count {
			lowest = i
		}
	}
	return append(list[:lowest], list[lowest+1:]...)
}
