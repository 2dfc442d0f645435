package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpandey/mentora/ent"
	"github.com/rpandey/mentora/ent/sessionrow"
	"github.com/rpandey/mentora/internal/session"
)

// sessionRepo implements SessionRepo on the ent SessionRow entity.
//
// The optimistic check rides on the database: Update carries a
// WHERE version = expected predicate, so the version check and the
// write are one atomic statement. No lock spans sessions.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, state *session.State) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal session state: %w", err)
	}

	_, err = r.client.SessionRow.Create().
		SetSessionID(state.ID).
		SetMode(string(state.Mode)).
		SetState(raw).
		SetVersion(1).
		SetComplete(state.Complete).
		SetTurnCount(state.TurnCount).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create session row: %w", err)
	}
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*session.State, int64, error) {
	row, err := r.client.SessionRow.Query().
		Where(sessionrow.SessionID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, fmt.Errorf("query session row: %w", err)
	}

	var state session.State
	if err := json.Unmarshal(row.State, &state); err != nil {
		return nil, 0, fmt.Errorf("unmarshal session state: %w", err)
	}
	return &state, row.Version, nil
}

func (r *sessionRepo) Update(ctx context.Context, id string, state *session.State, expectedVersion int64) (int64, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return 0, fmt.Errorf("marshal session state: %w", err)
	}

	n, err := r.client.SessionRow.Update().
		Where(
			sessionrow.SessionID(id),
			sessionrow.Version(expectedVersion),
		).
		SetState(raw).
		SetVersion(expectedVersion + 1).
		SetComplete(state.Complete).
		SetTurnCount(state.TurnCount).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("update session row: %w", err)
	}
	if n == 0 {
		exists, err := r.client.SessionRow.Query().
			Where(sessionrow.SessionID(id)).
			Exist(ctx)
		if err != nil {
			return 0, fmt.Errorf("check session existence: %w", err)
		}
		if !exists {
			return 0, ErrNotFound
		}
		return 0, ErrVersionConflict
	}
	return expectedVersion + 1, nil
}

func (r *sessionRepo) List(ctx context.Context, limit int) ([]SessionListing, error) {
	q := r.client.SessionRow.Query().
		Order(ent.Desc(sessionrow.FieldUpdatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list session rows: %w", err)
	}

	out := make([]SessionListing, 0, len(rows))
	for _, row := range rows {
		out = append(out, SessionListing{
			ID:        row.SessionID,
			Mode:      row.Mode,
			TurnCount: row.TurnCount,
			Complete:  row.Complete,
			Version:   row.Version,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return out, nil
}
