package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionRow is the persisted form of one tutoring session: the full
// state document plus the version counter that backs optimistic
// concurrency. Every mutation increments version; every write is
// conditioned on the version being unchanged since read.
type SessionRow struct {
	ent.Schema
}

func (SessionRow) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Session UUID"),
		field.String("mode").
			NotEmpty().
			Comment("teach_me, clarify_doubts, or exam"),
		field.JSON("state", json.RawMessage{}).
			Comment("Full session state document"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency token, incremented on every write"),
		field.Bool("complete").
			Default(false),
		field.Int("turn_count").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now),
	}
}

func (SessionRow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("updated_at"),
	}
}
