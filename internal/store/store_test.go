package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rpandey/mentora/internal/session"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func newTestSession(id string, mode session.Mode) *session.State {
	return session.New(id, session.StudentProfile{Name: "Priya", GradeLevel: 7}, mode)
}

func TestSessionCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	state := newTestSession("sess-1", session.ModeTeachMe)
	state.Topic = "fractions"

	if err := repo.Create(ctx, state); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, version, err := repo.Get(ctx, state.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if version != 1 {
		t.Errorf("version = %d, want 1", version)
	}
	if got.Topic != "fractions" {
		t.Errorf("topic = %q, want 'fractions'", got.Topic)
	}
	if got.Mode != session.ModeTeachMe {
		t.Errorf("mode = %q, want %q", got.Mode, session.ModeTeachMe)
	}
}

func TestSessionGetNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	_, _, err := repo.Get(context.Background(), "no-such-session")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionUpdateIncrementsVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	state := newTestSession("sess-2", session.ModeClarifyDoubts)
	if err := repo.Create(ctx, state); err != nil {
		t.Fatalf("create: %v", err)
	}

	state.TurnCount = 1
	newVersion, err := repo.Update(ctx, state.ID, state, 1)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if newVersion != 2 {
		t.Errorf("new version = %d, want 2", newVersion)
	}

	got, version, err := repo.Get(ctx, state.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if version != 2 {
		t.Errorf("stored version = %d, want 2", version)
	}
	if got.TurnCount != 1 {
		t.Errorf("turn count = %d, want 1", got.TurnCount)
	}
}

func TestSessionUpdateStaleVersion(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	state := newTestSession("sess-3", session.ModeTeachMe)
	if err := repo.Create(ctx, state); err != nil {
		t.Fatalf("create: %v", err)
	}

	// First writer wins.
	if _, err := repo.Update(ctx, state.ID, state, 1); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// Second writer still holds version 1, loses.
	_, err := repo.Update(ctx, state.ID, state, 1)
	if !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("err = %v, want ErrVersionConflict", err)
	}
}

func TestSessionUpdateMissingSession(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	state := newTestSession("sess-4", session.ModeTeachMe)
	_, err := repo.Update(context.Background(), "missing", state, 1)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSessionList(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	for i, id := range []string{"list-1", "list-2", "list-3"} {
		state := newTestSession(id, session.ModeExam)
		if err := repo.Create(ctx, state); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	listings, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listings) != 2 {
		t.Errorf("len = %d, want 2", len(listings))
	}
	for _, l := range listings {
		if l.Mode != string(session.ModeExam) {
			t.Errorf("mode = %q, want %q", l.Mode, session.ModeExam)
		}
	}
}

func TestTurnEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendTurnEvent(ctx, TurnEventData{
		SessionID:      "s1",
		Turn:           1,
		Intent:         "answer",
		Directive:      "steady",
		ConceptID:      "fractions.addition",
		Graded:         true,
		Correctness:    0.8,
		MasteryDelta:   0.12,
		Misconceptions: []string{"adds denominators"},
		Outcome:        "answered",
	})
	if err != nil {
		t.Fatalf("append turn event: %v", err)
	}

	count, err := s.Client().TurnEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("turn events = %d, want 1", count)
	}
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSafetyEvent(ctx, SafetyEventData{
		SessionID: "s1", Stage: "student_input", Reason: "off-limits topic",
	}); err != nil {
		t.Fatalf("append safety event: %v", err)
	}
	if err := repo.AppendTurnEvent(ctx, TurnEventData{
		SessionID: "s1", Turn: 1, Outcome: "blocked",
	}); err != nil {
		t.Fatalf("append turn event: %v", err)
	}

	safety, err := s.Client().SafetyEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query safety event: %v", err)
	}
	turn, err := s.Client().TurnEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query turn event: %v", err)
	}
	if turn.Sequence <= safety.Sequence {
		t.Errorf("turn sequence %d should follow safety sequence %d",
			turn.Sequence, safety.Sequence)
	}
}

func TestUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor-turn", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "safety-check", InputTokens: 40, OutputTokens: 5, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "tutor-turn", InputTokens: 200, OutputTokens: 80, Success: true},
	}
	for i, req := range requests {
		if err := repo.AppendLLMRequest(ctx, req); err != nil {
			t.Fatalf("append request %d: %v", i, err)
		}
	}

	usage, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(usage) != 2 {
		t.Fatalf("models = %d, want 2", len(usage))
	}

	// Sorted by model name: gemini first.
	flash := usage[0]
	if flash.Model != "gemini-2.5-flash" || flash.Calls != 2 {
		t.Errorf("flash usage = %+v, want 2 calls", flash)
	}
	if flash.InputTokens != 140 || flash.OutputTokens != 55 {
		t.Errorf("flash tokens = %d/%d, want 140/55", flash.InputTokens, flash.OutputTokens)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	if byPurpose[1].Purpose != "tutor-turn" || byPurpose[1].Calls != 2 {
		t.Errorf("tutor-turn usage = %+v, want 2 calls", byPurpose[1])
	}
}

func TestQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "tutor-turn",
			InputTokens: i, Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}
	// Newest first.
	if events[0].InputTokens != 2 {
		t.Errorf("first event input tokens = %d, want 2", events[0].InputTokens)
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ID != events[0].ID {
		t.Errorf("got = %+v, want event %d", got, events[0].ID)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for a missing event")
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "priya")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		StudentID: "priya",
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx, "priya")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Version != 1 {
		t.Errorf("data.version = %d, want 1", snap.Data.Version)
	}
}

func TestSnapshotLatestIsPerStudent(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	if err := repo.Save(ctx, &Snapshot{
		StudentID: "priya", Sequence: 1, Timestamp: base,
		Data: SnapshotData{Version: 1},
	}); err != nil {
		t.Fatalf("save priya: %v", err)
	}
	if err := repo.Save(ctx, &Snapshot{
		StudentID: "arjun", Sequence: 2, Timestamp: base,
		Data: SnapshotData{Version: 2},
	}); err != nil {
		t.Fatalf("save arjun: %v", err)
	}

	snap, err := repo.Latest(ctx, "priya")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 1 {
		t.Errorf("sequence = %d, want 1", snap.Sequence)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			StudentID: "priya",
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, "priya", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx, "priya")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}
