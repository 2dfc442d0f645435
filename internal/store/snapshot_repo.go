package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rpandey/mentora/ent"
	"github.com/rpandey/mentora/ent/snapshot"
)

type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	raw, err := json.Marshal(snap.Data)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	seq := snap.Sequence
	if seq == 0 {
		seq, err = r.seq.Next(ctx)
		if err != nil {
			return err
		}
	}

	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.client.Snapshot.Create().
		SetStudentID(snap.StudentID).
		SetSequence(seq).
		SetTimestamp(ts).
		SetData(raw).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, studentID string) (*Snapshot, error) {
	row, err := r.client.Snapshot.Query().
		Where(snapshot.StudentID(studentID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	var data SnapshotData
	if err := json.Unmarshal(row.Data, &data); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}

	return &Snapshot{
		StudentID: row.StudentID,
		Sequence:  row.Sequence,
		Timestamp: row.Timestamp,
		Data:      data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, studentID string, keep int) error {
	if keep < 0 {
		keep = 0
	}

	ids, err := r.client.Snapshot.Query().
		Where(snapshot.StudentID(studentID)).
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("query stale snapshots: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
