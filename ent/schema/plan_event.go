package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanEvent records every call to the plan generator for history and
// debugging.
type PlanEvent struct {
	ent.Schema
}

func (PlanEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PlanEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("request_id").
			Comment("X-Request-ID sent with the call"),
		field.String("session_id").
			Default("").
			Comment("Session that issued the call, empty for one-shot commands"),
		field.String("op").
			Comment("Operation: generate, adapt, resources"),
		field.Bool("success").
			Comment("Whether the call returned a valid result"),
		field.Int("status").
			Default(0).
			Comment("HTTP status, 0 when no response was received"),
		field.Int64("latency_ms").
			Default(0).
			Comment("Wall-clock time for the call"),
		field.String("error_message").
			Default("").
			Comment("Error message if failed"),
		field.Int("readiness").
			Default(-1).
			Comment("Overall readiness of the returned plan, -1 when none"),
		field.Text("request_body").
			Default("").
			Comment("JSON request body"),
		field.Text("response_body").
			Default("").
			Comment("JSON response body on success"),
	}
}

func (PlanEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("op", "success"),
	}
}
