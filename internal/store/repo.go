package store

import (
	"context"
	"errors"
	"time"

	"github.com/rpandey/mentora/internal/mastery"
	"github.com/rpandey/mentora/internal/session"
)

// ErrNotFound indicates the requested session does not exist.
var ErrNotFound = errors.New("session not found")

// ErrVersionConflict indicates a conditional write lost the race: the
// session's version changed between read and write. The caller must
// re-read and retry, or treat the request as stale.
var ErrVersionConflict = errors.New("session version conflict")

// SessionRepo provides versioned access to session state. All writes
// are compare-and-swap on the version column; two successful writes can
// never be based on the same prior version.
type SessionRepo interface {
	// Create stores a new session at version 1.
	Create(ctx context.Context, state *session.State) error

	// Get returns the session state and its current version.
	Get(ctx context.Context, id string) (*session.State, int64, error)

	// Update writes state conditioned on expectedVersion being current.
	// Returns the new version, or ErrVersionConflict / ErrNotFound.
	Update(ctx context.Context, id string, state *session.State, expectedVersion int64) (int64, error)

	// List returns recent sessions, newest first.
	List(ctx context.Context, limit int) ([]SessionListing, error)
}

// SessionListing is a summary row for the sessions command.
type SessionListing struct {
	ID        string
	Mode      string
	TurnCount int
	Complete  bool
	Version   int64
	UpdatedAt time.Time
}

// TurnEventData captures one orchestrated turn for the event log.
type TurnEventData struct {
	SessionID      string
	Turn           int
	Intent         string
	Directive      string
	ConceptID      string
	Graded         bool
	Correctness    float64
	MasteryDelta   float64
	Misconceptions []string
	Outcome        string
}

// SafetyEventData captures a blocked message.
type SafetyEventData struct {
	SessionID string
	Stage     string // "student_input" or "tutor_output"
	Reason    string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// SessionEventData captures a session lifecycle action.
type SessionEventData struct {
	SessionID      string
	Action         string // "start", "pause", "resume", "end"
	Mode           string
	Turns          int
	StepsCompleted int
	DurationSecs   int
}

// QueryOpts configures event queries.
type QueryOpts struct {
	// Limit caps results (0 = unlimited).
	Limit int
}

// LLMEventRow is one recorded LLM call, as read back for inspection.
type LLMEventRow struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// PurposeUsage aggregates LLM calls by purpose.
type PurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// ModelUsage aggregates LLM calls by model, for cost estimation.
type ModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to the per-turn event log, plus
// read access to the LLM request trail.
type EventRepo interface {
	AppendTurnEvent(ctx context.Context, data TurnEventData) error
	AppendSafetyEvent(ctx context.Context, data SafetyEventData) error
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QueryLLMEvents returns recent LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRow, error)

	// GetLLMEvent returns one event by ID, or nil when absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRow, error)

	// LLMUsageByPurpose aggregates token usage per purpose.
	LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]ModelUsage, error)
}

// SnapshotData is a student's aggregate mastery state across sessions.
type SnapshotData struct {
	Version        int                     `json:"version"`
	Mastery        mastery.Map             `json:"mastery"`
	Misconceptions []mastery.Misconception `json:"misconceptions,omitempty"`
}

// Snapshot pairs snapshot data with its event-log position.
type Snapshot struct {
	StudentID string
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages cross-session mastery snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot for a student.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the student's most recent snapshot, or nil.
	Latest(ctx context.Context, studentID string) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots per student.
	Prune(ctx context.Context, studentID string, keep int) error
}
