package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// deadlineRecorder captures the deadline on the context it is called
// with, and optionally blocks until that context is done.
type deadlineRecorder struct {
	deadline    time.Time
	hasDeadline bool
	block       bool
}

func (d *deadlineRecorder) Generate(ctx context.Context, req Request) (*Response, error) {
	d.deadline, d.hasDeadline = ctx.Deadline()
	if d.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return &Response{Content: json.RawMessage(`{"ok":true}`)}, nil
}

func (d *deadlineRecorder) ModelID() string { return "recorder" }

func TestTimeout_AppliesDeadline(t *testing.T) {
	rec := &deadlineRecorder{}
	p := WithTimeout(rec, 5*time.Second)

	before := time.Now()
	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rec.hasDeadline {
		t.Fatal("expected the wrapped call to carry a deadline")
	}
	remaining := rec.deadline.Sub(before)
	if remaining <= 0 || remaining > 5*time.Second {
		t.Fatalf("deadline %v out of the configured 5s bound", remaining)
	}
}

func TestTimeout_UnresponsiveProviderFails(t *testing.T) {
	rec := &deadlineRecorder{block: true}
	p := WithTimeout(rec, 10*time.Millisecond)

	start := time.Now()
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context.DeadlineExceeded", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("call took %v, should have been cut off at 10ms", elapsed)
	}
}

func TestTimeout_KeepsEarlierCallerDeadline(t *testing.T) {
	rec := &deadlineRecorder{}
	p := WithTimeout(rec, time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.hasDeadline {
		t.Fatal("expected a deadline")
	}
	if time.Until(rec.deadline) > time.Second {
		t.Fatal("the caller's tighter deadline should win over the configured timeout")
	}
}

func TestTimeout_ZeroDisables(t *testing.T) {
	rec := &deadlineRecorder{}
	p := WithTimeout(rec, 0)

	if p != Provider(rec) {
		t.Fatal("zero timeout should return the provider unwrapped")
	}
}

func TestTimeout_AppliedThroughMiddlewareChain(t *testing.T) {
	// Mirror the factory's wiring: retry → timeout → inner. The inner
	// provider must still see a bounded context.
	rec := &deadlineRecorder{}
	p := WithRetry(WithTimeout(rec, 5*time.Second), retryConfig())

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.hasDeadline {
		t.Fatal("expected the deadline to survive the retry wrapper")
	}
}
