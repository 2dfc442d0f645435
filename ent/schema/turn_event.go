package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one orchestrated turn: the intent classification,
// pacing directive, grading signal, and mastery movement. Consumed
// downstream for progress reporting.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty(),
		field.Int("turn").
			Comment("Turn count after this turn applied"),
		field.String("intent").
			Default(""),
		field.String("directive").
			Default("").
			Comment("Pacing directive used for the tutor message"),
		field.String("concept_id").
			Default(""),
		field.Bool("graded").
			Default(false),
		field.Float("correctness").
			Default(0),
		field.Float("mastery_delta").
			Default(0).
			Comment("Score change for concept_id this turn"),
		field.JSON("misconceptions", []string{}).
			Optional(),
		field.String("outcome").
			NotEmpty().
			Comment("answered, blocked, fallback, completed, or extended"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
	}
}
