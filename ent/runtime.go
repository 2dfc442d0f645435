// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rpandey/mentora/ent/llmrequestevent"
	"github.com/rpandey/mentora/ent/safetyevent"
	"github.com/rpandey/mentora/ent/schema"
	"github.com/rpandey/mentora/ent/sessionevent"
	"github.com/rpandey/mentora/ent/sessionrow"
	"github.com/rpandey/mentora/ent/snapshot"
	"github.com/rpandey/mentora/ent/turnevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	safetyeventMixin := schema.SafetyEvent{}.Mixin()
	safetyeventMixinFields0 := safetyeventMixin[0].Fields()
	_ = safetyeventMixinFields0
	safetyeventFields := schema.SafetyEvent{}.Fields()
	_ = safetyeventFields
	// safetyeventDescTimestamp is the schema descriptor for timestamp field.
	safetyeventDescTimestamp := safetyeventMixinFields0[1].Descriptor()
	// safetyevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	safetyevent.DefaultTimestamp = safetyeventDescTimestamp.Default.(func() time.Time)
	// safetyeventDescSessionID is the schema descriptor for session_id field.
	safetyeventDescSessionID := safetyeventFields[0].Descriptor()
	// safetyevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	safetyevent.SessionIDValidator = safetyeventDescSessionID.Validators[0].(func(string) error)
	// safetyeventDescStage is the schema descriptor for stage field.
	safetyeventDescStage := safetyeventFields[1].Descriptor()
	// safetyevent.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	safetyevent.StageValidator = safetyeventDescStage.Validators[0].(func(string) error)
	// safetyeventDescReason is the schema descriptor for reason field.
	safetyeventDescReason := safetyeventFields[2].Descriptor()
	// safetyevent.DefaultReason holds the default value on creation for the reason field.
	safetyevent.DefaultReason = safetyeventDescReason.Default.(string)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[1].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[2].Descriptor()
	// sessionevent.DefaultMode holds the default value on creation for the mode field.
	sessionevent.DefaultMode = sessioneventDescMode.Default.(string)
	// sessioneventDescTurns is the schema descriptor for turns field.
	sessioneventDescTurns := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultTurns holds the default value on creation for the turns field.
	sessionevent.DefaultTurns = sessioneventDescTurns.Default.(int)
	// sessioneventDescStepsCompleted is the schema descriptor for steps_completed field.
	sessioneventDescStepsCompleted := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultStepsCompleted holds the default value on creation for the steps_completed field.
	sessionevent.DefaultStepsCompleted = sessioneventDescStepsCompleted.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	sessionrowFields := schema.SessionRow{}.Fields()
	_ = sessionrowFields
	// sessionrowDescSessionID is the schema descriptor for session_id field.
	sessionrowDescSessionID := sessionrowFields[0].Descriptor()
	// sessionrow.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionrow.SessionIDValidator = sessionrowDescSessionID.Validators[0].(func(string) error)
	// sessionrowDescMode is the schema descriptor for mode field.
	sessionrowDescMode := sessionrowFields[1].Descriptor()
	// sessionrow.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	sessionrow.ModeValidator = sessionrowDescMode.Validators[0].(func(string) error)
	// sessionrowDescVersion is the schema descriptor for version field.
	sessionrowDescVersion := sessionrowFields[3].Descriptor()
	// sessionrow.DefaultVersion holds the default value on creation for the version field.
	sessionrow.DefaultVersion = sessionrowDescVersion.Default.(int64)
	// sessionrowDescComplete is the schema descriptor for complete field.
	sessionrowDescComplete := sessionrowFields[4].Descriptor()
	// sessionrow.DefaultComplete holds the default value on creation for the complete field.
	sessionrow.DefaultComplete = sessionrowDescComplete.Default.(bool)
	// sessionrowDescTurnCount is the schema descriptor for turn_count field.
	sessionrowDescTurnCount := sessionrowFields[5].Descriptor()
	// sessionrow.DefaultTurnCount holds the default value on creation for the turn_count field.
	sessionrow.DefaultTurnCount = sessionrowDescTurnCount.Default.(int)
	// sessionrowDescCreatedAt is the schema descriptor for created_at field.
	sessionrowDescCreatedAt := sessionrowFields[6].Descriptor()
	// sessionrow.DefaultCreatedAt holds the default value on creation for the created_at field.
	sessionrow.DefaultCreatedAt = sessionrowDescCreatedAt.Default.(func() time.Time)
	// sessionrowDescUpdatedAt is the schema descriptor for updated_at field.
	sessionrowDescUpdatedAt := sessionrowFields[7].Descriptor()
	// sessionrow.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	sessionrow.DefaultUpdatedAt = sessionrowDescUpdatedAt.Default.(func() time.Time)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescStudentID is the schema descriptor for student_id field.
	snapshotDescStudentID := snapshotFields[0].Descriptor()
	// snapshot.StudentIDValidator is a validator for the "student_id" field. It is called by the builders before save.
	snapshot.StudentIDValidator = snapshotDescStudentID.Validators[0].(func(string) error)
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[2].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	turneventMixin := schema.TurnEvent{}.Mixin()
	turneventMixinFields0 := turneventMixin[0].Fields()
	_ = turneventMixinFields0
	turneventFields := schema.TurnEvent{}.Fields()
	_ = turneventFields
	// turneventDescTimestamp is the schema descriptor for timestamp field.
	turneventDescTimestamp := turneventMixinFields0[1].Descriptor()
	// turnevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	turnevent.DefaultTimestamp = turneventDescTimestamp.Default.(func() time.Time)
	// turneventDescSessionID is the schema descriptor for session_id field.
	turneventDescSessionID := turneventFields[0].Descriptor()
	// turnevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	turnevent.SessionIDValidator = turneventDescSessionID.Validators[0].(func(string) error)
	// turneventDescIntent is the schema descriptor for intent field.
	turneventDescIntent := turneventFields[2].Descriptor()
	// turnevent.DefaultIntent holds the default value on creation for the intent field.
	turnevent.DefaultIntent = turneventDescIntent.Default.(string)
	// turneventDescDirective is the schema descriptor for directive field.
	turneventDescDirective := turneventFields[3].Descriptor()
	// turnevent.DefaultDirective holds the default value on creation for the directive field.
	turnevent.DefaultDirective = turneventDescDirective.Default.(string)
	// turneventDescConceptID is the schema descriptor for concept_id field.
	turneventDescConceptID := turneventFields[4].Descriptor()
	// turnevent.DefaultConceptID holds the default value on creation for the concept_id field.
	turnevent.DefaultConceptID = turneventDescConceptID.Default.(string)
	// turneventDescGraded is the schema descriptor for graded field.
	turneventDescGraded := turneventFields[5].Descriptor()
	// turnevent.DefaultGraded holds the default value on creation for the graded field.
	turnevent.DefaultGraded = turneventDescGraded.Default.(bool)
	// turneventDescCorrectness is the schema descriptor for correctness field.
	turneventDescCorrectness := turneventFields[6].Descriptor()
	// turnevent.DefaultCorrectness holds the default value on creation for the correctness field.
	turnevent.DefaultCorrectness = turneventDescCorrectness.Default.(float64)
	// turneventDescMasteryDelta is the schema descriptor for mastery_delta field.
	turneventDescMasteryDelta := turneventFields[7].Descriptor()
	// turnevent.DefaultMasteryDelta holds the default value on creation for the mastery_delta field.
	turnevent.DefaultMasteryDelta = turneventDescMasteryDelta.Default.(float64)
	// turneventDescOutcome is the schema descriptor for outcome field.
	turneventDescOutcome := turneventFields[9].Descriptor()
	// turnevent.OutcomeValidator is a validator for the "outcome" field. It is called by the builders before save.
	turnevent.OutcomeValidator = turneventDescOutcome.Validators[0].(func(string) error)
}
