package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle actions (start, pause, resume,
// end) with end-of-session aggregates on the end action.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("action").
			NotEmpty().
			Comment("start, pause, resume, or end"),
		field.String("mode").
			Default(""),
		field.Int("turns").
			Default(0).
			Comment("Total turns (on end only)"),
		field.Int("steps_completed").
			Default(0).
			Comment("Completed plan steps (on end only)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Wall-clock duration (on end only)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
