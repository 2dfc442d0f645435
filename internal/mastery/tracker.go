package mastery

// Per-concept proficiency tracking.
//
// Scores use an exponential moving average rather than a rolling window:
// memory stays bounded per concept, a single lucky or careless answer
// can't swing the score, and sustained struggle or improvement still
// moves it quickly enough to drive pacing decisions within a session.

// Trend describes the direction of a concept's recent score movement.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendSteady    Trend = "steady"
	TrendDeclining Trend = "declining"
)

const (
	// SeedScore is the starting score for a concept never seen before.
	SeedScore = 0.5

	// emaOldWeight and emaObservedWeight define the update rule
	// new = emaOldWeight*old + emaObservedWeight*observed.
	emaOldWeight      = 0.6
	emaObservedWeight = 0.4

	// trendWindow is how many recent scores feed trend detection.
	trendWindow = 4

	// trendEpsilon is the minimum slope treated as movement.
	trendEpsilon = 0.02
)

// Entry is the mastery record for a single concept. Entries are created
// the first time a question references a concept and never deleted
// within a session.
type Entry struct {
	ConceptID string    `json:"concept_id"`
	Score     float64   `json:"score"`
	Trend     Trend     `json:"trend"`
	Recent    []float64 `json:"recent,omitempty"`
	Updates   int       `json:"updates"`
}

// Map holds mastery entries keyed by concept ID.
type Map map[string]*Entry

// Get returns the entry for conceptID, creating a seeded one if absent.
func (m Map) Get(conceptID string) *Entry {
	if e, ok := m[conceptID]; ok {
		return e
	}
	e := &Entry{
		ConceptID: conceptID,
		Score:     SeedScore,
		Trend:     TrendSteady,
	}
	m[conceptID] = e
	return e
}

// Update applies one graded observation (0.0–1.0) to a concept and
// returns the updated entry. Scores are clamped to [0,1].
func (m Map) Update(conceptID string, observed float64) *Entry {
	observed = clamp01(observed)

	e := m.Get(conceptID)
	e.Score = clamp01(emaOldWeight*e.Score + emaObservedWeight*observed)
	e.Updates++

	e.Recent = append(e.Recent, e.Score)
	if len(e.Recent) > trendWindow {
		e.Recent = e.Recent[len(e.Recent)-trendWindow:]
	}
	e.Trend = computeTrend(e.Recent)

	return e
}

// Average returns the mean score across all tracked concepts,
// or SeedScore when nothing has been tracked yet.
func (m Map) Average() float64 {
	if len(m) == 0 {
		return SeedScore
	}
	sum := 0.0
	for _, e := range m {
		sum += e.Score
	}
	return sum / float64(len(m))
}

// OverallTrend summarizes per-concept trends: improving when more
// concepts improve than decline, declining for the inverse, steady
// otherwise.
func (m Map) OverallTrend() Trend {
	improving, declining := 0, 0
	for _, e := range m {
		switch e.Trend {
		case TrendImproving:
			improving++
		case TrendDeclining:
			declining++
		}
	}
	switch {
	case improving > declining:
		return TrendImproving
	case declining > improving:
		return TrendDeclining
	default:
		return TrendSteady
	}
}

// computeTrend compares the slope of the recent score window against a
// small epsilon. Fewer than two points is always steady.
func computeTrend(recent []float64) Trend {
	if len(recent) < 2 {
		return TrendSteady
	}
	slope := (recent[len(recent)-1] - recent[0]) / float64(len(recent)-1)
	switch {
	case slope > trendEpsilon:
		return TrendImproving
	case slope < -trendEpsilon:
		return TrendDeclining
	default:
		return TrendSteady
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
