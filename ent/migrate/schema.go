// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString, Default: "unknown"},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool, Default: true},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
		},
	}
	// SafetyEventsColumns holds the columns for the "safety_events" table.
	SafetyEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString, Default: ""},
	}
	// SafetyEventsTable holds the schema information for the "safety_events" table.
	SafetyEventsTable = &schema.Table{
		Name:       "safety_events",
		Columns:    SafetyEventsColumns,
		PrimaryKey: []*schema.Column{SafetyEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "safetyevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SafetyEventsColumns[1]},
			},
			{
				Name:    "safetyevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SafetyEventsColumns[2]},
			},
			{
				Name:    "safetyevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SafetyEventsColumns[3]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString, Default: ""},
		{Name: "turns", Type: field.TypeInt, Default: 0},
		{Name: "steps_completed", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
		},
	}
	// SessionRowsColumns holds the columns for the "session_rows" table.
	SessionRowsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "mode", Type: field.TypeString},
		{Name: "state", Type: field.TypeJSON},
		{Name: "version", Type: field.TypeInt64, Default: 1},
		{Name: "complete", Type: field.TypeBool, Default: false},
		{Name: "turn_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionRowsTable holds the schema information for the "session_rows" table.
	SessionRowsTable = &schema.Table{
		Name:       "session_rows",
		Columns:    SessionRowsColumns,
		PrimaryKey: []*schema.Column{SessionRowsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionrow_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionRowsColumns[1]},
			},
			{
				Name:    "sessionrow_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionRowsColumns[8]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_id", Type: field.TypeString},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_student_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1], SnapshotsColumns[3]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
		},
	}
	// TurnEventsColumns holds the columns for the "turn_events" table.
	TurnEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
		{Name: "turn", Type: field.TypeInt},
		{Name: "intent", Type: field.TypeString, Default: ""},
		{Name: "directive", Type: field.TypeString, Default: ""},
		{Name: "concept_id", Type: field.TypeString, Default: ""},
		{Name: "graded", Type: field.TypeBool, Default: false},
		{Name: "correctness", Type: field.TypeFloat64, Default: 0},
		{Name: "mastery_delta", Type: field.TypeFloat64, Default: 0},
		{Name: "misconceptions", Type: field.TypeJSON, Nullable: true},
		{Name: "outcome", Type: field.TypeString},
	}
	// TurnEventsTable holds the schema information for the "turn_events" table.
	TurnEventsTable = &schema.Table{
		Name:       "turn_events",
		Columns:    TurnEventsColumns,
		PrimaryKey: []*schema.Column{TurnEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "turnevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[1]},
			},
			{
				Name:    "turnevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[2]},
			},
			{
				Name:    "turnevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{TurnEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		LlmRequestEventsTable,
		SafetyEventsTable,
		SessionEventsTable,
		SessionRowsTable,
		SnapshotsTable,
		TurnEventsTable,
	}
)

func init() {
}
