package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rpandey/mentora/internal/llm"
)

// Config holds generator tuning.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for tutor turn generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// GenerationError is the typed failure returned when the LLM could not
// produce a valid tutor turn after the corrective retry. The
// orchestrator decides on the deterministic fallback.
type GenerationError struct {
	Attempts int
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("tutor turn generation failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Generator produces tutor turns: a single structured LLM round-trip
// per student turn that both grades and teaches.
type Generator struct {
	provider llm.Provider
	cfg      Config
}

// NewGenerator creates a tutor turn generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, cfg: cfg}
}

// Generate runs the turn round-trip. Structural validation failures get
// one retry carrying a corrective instruction; a second failure
// surfaces as *GenerationError.
func (g *Generator) Generate(ctx context.Context, in Input) (*Output, error) {
	ctx = llm.WithPurpose(ctx, "tutor-turn")

	req := llm.Request{
		System:      buildSystemPrompt(in),
		Messages:    buildMessages(in.State),
		Schema:      TurnSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	out, err := g.attempt(ctx, req)
	if err == nil {
		return out, nil
	}
	if !retryableValidation(err) {
		return nil, &GenerationError{Attempts: 1, Err: err}
	}

	// One corrective retry: restate the contract with the failure.
	corrective := req
	corrective.Messages = append(append([]llm.Message{}, req.Messages...), llm.Message{
		Role:    llm.RoleUser,
		Content: fmt.Sprintf("Your previous response was not a valid tutor turn (%v). Respond again with ONLY a JSON object matching the tutor-turn schema. No prose outside the JSON.", err),
	})

	out, err = g.attempt(ctx, corrective)
	if err != nil {
		return nil, &GenerationError{Attempts: 2, Err: err}
	}
	return out, nil
}

// attempt performs one round-trip with structural and semantic checks.
func (g *Generator) attempt(ctx context.Context, req llm.Request) (*Output, error) {
	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out Output
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	if err := checkOutput(&out); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	return &out, nil
}

// checkOutput enforces the semantic constraints the JSON schema cannot
// express.
func checkOutput(out *Output) error {
	if out.Message == "" {
		return errors.New("empty tutor message")
	}
	if !out.Intent.Valid() {
		return fmt.Errorf("unknown intent %q", out.Intent)
	}
	if out.Correctness < 0 || out.Correctness > 1 {
		return fmt.Errorf("correctness %v out of [0,1]", out.Correctness)
	}
	if out.NewQuestion != nil {
		if out.NewQuestion.Prompt == "" || out.NewQuestion.ConceptID == "" {
			return errors.New("posed question missing prompt or concept")
		}
	}
	return nil
}

// retryableValidation reports whether the failure is a malformed
// response worth a corrective retry, as opposed to a provider outage
// the retry middleware has already exhausted.
func retryableValidation(err error) bool {
	var inv *llm.ErrInvalidResponse
	return errors.As(err, &inv)
}
