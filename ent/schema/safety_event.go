package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SafetyEvent records a blocked message. The message content itself is
// not stored, only the stage and classifier reason.
type SafetyEvent struct {
	ent.Schema
}

func (SafetyEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SafetyEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.String("stage").
			NotEmpty().
			Comment("student_input or tutor_output"),
		field.String("reason").
			Default(""),
	}
}

func (SafetyEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
