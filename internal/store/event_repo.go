package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/rpandey/mentora/ent"
	"github.com/rpandey/mentora/ent/llmrequestevent"
)

// eventRepo implements EventRepo. Every append draws a sequence number
// from the shared counter, so events of different types still form one
// total order.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendTurnEvent(ctx context.Context, data TurnEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.TurnEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetTurn(data.Turn).
		SetIntent(data.Intent).
		SetDirective(data.Directive).
		SetConceptID(data.ConceptID).
		SetGraded(data.Graded).
		SetCorrectness(data.Correctness).
		SetMasteryDelta(data.MasteryDelta).
		SetMisconceptions(data.Misconceptions).
		SetOutcome(data.Outcome).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append turn event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSafetyEvent(ctx context.Context, data SafetyEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.SafetyEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetStage(data.Stage).
		SetReason(data.Reason).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append safety event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.LLMRequestEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetModel(data.Model).
		SetPurpose(data.Purpose).
		SetInputTokens(data.InputTokens).
		SetOutputTokens(data.OutputTokens).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		SetRequestBody(data.RequestBody).
		SetResponseBody(data.ResponseBody).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seq).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetMode(data.Mode).
		SetTurns(data.Turns).
		SetStepsCompleted(data.StepsCompleted).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append session event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRow, error) {
	q := r.client.LLMRequestEvent.Query().
		Order(ent.Desc(llmrequestevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}

	out := make([]LLMEventRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, llmEventRow(row))
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRow, error) {
	row, err := r.client.LLMRequestEvent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	ev := llmEventRow(row)
	return &ev, nil
}

func llmEventRow(row *ent.LLMRequestEvent) LLMEventRow {
	return LLMEventRow{
		ID:           row.ID,
		Timestamp:    row.Timestamp,
		Provider:     row.Provider,
		Model:        row.Model,
		Purpose:      row.Purpose,
		InputTokens:  row.InputTokens,
		OutputTokens: row.OutputTokens,
		LatencyMs:    row.LatencyMs,
		Success:      row.Success,
		ErrorMessage: row.ErrorMessage,
		RequestBody:  row.RequestBody,
		ResponseBody: row.ResponseBody,
	}
}

func (r *eventRepo) LLMUsageByPurpose(ctx context.Context) ([]PurposeUsage, error) {
	var rows []struct {
		Purpose string  `json:"purpose"`
		Count   int     `json:"count"`
		Input   int     `json:"sum_input_tokens"`
		Output  int     `json:"sum_output_tokens"`
		Latency float64 `json:"avg_latency_ms"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldPurpose).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens"),
			ent.As(ent.Mean(llmrequestevent.FieldLatencyMs), "avg_latency_ms"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by purpose: %w", err)
	}

	out := make([]PurposeUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, PurposeUsage{
			Purpose:      row.Purpose,
			Calls:        row.Count,
			InputTokens:  row.Input,
			OutputTokens: row.Output,
			AvgLatencyMs: int64(row.Latency),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Purpose < out[j].Purpose })
	return out, nil
}

func (r *eventRepo) LLMUsageByModel(ctx context.Context) ([]ModelUsage, error) {
	var rows []struct {
		Model  string `json:"model"`
		Count  int    `json:"count"`
		Input  int    `json:"sum_input_tokens"`
		Output int    `json:"sum_output_tokens"`
	}

	err := r.client.LLMRequestEvent.Query().
		GroupBy(llmrequestevent.FieldModel).
		Aggregate(
			ent.Count(),
			ent.As(ent.Sum(llmrequestevent.FieldInputTokens), "sum_input_tokens"),
			ent.As(ent.Sum(llmrequestevent.FieldOutputTokens), "sum_output_tokens"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("aggregate llm usage by model: %w", err)
	}

	out := make([]ModelUsage, 0, len(rows))
	for _, row := range rows {
		out = append(out, ModelUsage{
			Model:        row.Model,
			Calls:        row.Count,
			InputTokens:  row.Input,
			OutputTokens: row.Output,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Model < out[j].Model })
	return out, nil
}
