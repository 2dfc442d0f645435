package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot captures a student's aggregate mastery state across
// sessions, so a returning student starts from prior concept scores
// instead of the cold seed.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("student_id").
			NotEmpty(),
		field.Int64("sequence").
			Comment("Event sequence number at the time of snapshot"),
		field.Time("timestamp").
			Default(time.Now),
		field.JSON("data", json.RawMessage{}).
			Comment("Aggregate mastery state as JSON"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("student_id", "timestamp"),
		index.Fields("sequence"),
	}
}
