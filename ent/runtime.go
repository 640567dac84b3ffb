// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathfinder/ent/planevent"
	"github.com/abhisek/pathfinder/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescSessionID is the schema descriptor for session_id field.
	planeventDescSessionID := planeventFields[1].Descriptor()
	// planevent.DefaultSessionID holds the default value on creation for the session_id field.
	planevent.DefaultSessionID = planeventDescSessionID.Default.(string)
	// planeventDescStatus is the schema descriptor for status field.
	planeventDescStatus := planeventFields[4].Descriptor()
	// planevent.DefaultStatus holds the default value on creation for the status field.
	planevent.DefaultStatus = planeventDescStatus.Default.(int)
	// planeventDescLatencyMs is the schema descriptor for latency_ms field.
	planeventDescLatencyMs := planeventFields[5].Descriptor()
	// planevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	planevent.DefaultLatencyMs = planeventDescLatencyMs.Default.(int64)
	// planeventDescErrorMessage is the schema descriptor for error_message field.
	planeventDescErrorMessage := planeventFields[6].Descriptor()
	// planevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	planevent.DefaultErrorMessage = planeventDescErrorMessage.Default.(string)
	// planeventDescReadiness is the schema descriptor for readiness field.
	planeventDescReadiness := planeventFields[7].Descriptor()
	// planevent.DefaultReadiness holds the default value on creation for the readiness field.
	planevent.DefaultReadiness = planeventDescReadiness.Default.(int)
	// planeventDescRequestBody is the schema descriptor for request_body field.
	planeventDescRequestBody := planeventFields[8].Descriptor()
	// planevent.DefaultRequestBody holds the default value on creation for the request_body field.
	planevent.DefaultRequestBody = planeventDescRequestBody.Default.(string)
	// planeventDescResponseBody is the schema descriptor for response_body field.
	planeventDescResponseBody := planeventFields[9].Descriptor()
	// planevent.DefaultResponseBody holds the default value on creation for the response_body field.
	planevent.DefaultResponseBody = planeventDescResponseBody.Default.(string)
}
