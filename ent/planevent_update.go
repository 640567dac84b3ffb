// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathfinder/ent/planevent"
	"github.com/abhisek/pathfinder/ent/predicate"
)

// PlanEventUpdate is the builder for updating PlanEvent entities.
type PlanEventUpdate struct {
	config
	hooks    []Hook
	mutation *PlanEventMutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdate) Where(ps ...predicate.PlanEvent) *PlanEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *PlanEventUpdate) SetRequestID(v string) *PlanEventUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableRequestID(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlanEventUpdate) SetSessionID(v string) *PlanEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableSessionID(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetOp sets the "op" field.
func (_u *PlanEventUpdate) SetOp(v string) *PlanEventUpdate {
	_u.mutation.SetOpField(v)
	return _u
}

// SetNillableOp sets the "op" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableOp(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetOp(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PlanEventUpdate) SetSuccess(v bool) *PlanEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableSuccess(v *bool) *PlanEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanEventUpdate) SetStatus(v int) *PlanEventUpdate {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableStatus(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *PlanEventUpdate) AddStatus(v int) *PlanEventUpdate {
	_u.mutation.AddStatus(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *PlanEventUpdate) SetLatencyMs(v int64) *PlanEventUpdate {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableLatencyMs(v *int64) *PlanEventUpdate {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *PlanEventUpdate) AddLatencyMs(v int64) *PlanEventUpdate {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanEventUpdate) SetErrorMessage(v string) *PlanEventUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableErrorMessage(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetReadiness sets the "readiness" field.
func (_u *PlanEventUpdate) SetReadiness(v int) *PlanEventUpdate {
	_u.mutation.ResetReadiness()
	_u.mutation.SetReadiness(v)
	return _u
}

// SetNillableReadiness sets the "readiness" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableReadiness(v *int) *PlanEventUpdate {
	if v != nil {
		_u.SetReadiness(*v)
	}
	return _u
}

// AddReadiness adds value to the "readiness" field.
func (_u *PlanEventUpdate) AddReadiness(v int) *PlanEventUpdate {
	_u.mutation.AddReadiness(v)
	return _u
}

// SetRequestBody sets the "request_body" field.
func (_u *PlanEventUpdate) SetRequestBody(v string) *PlanEventUpdate {
	_u.mutation.SetRequestBody(v)
	return _u
}

// SetNillableRequestBody sets the "request_body" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableRequestBody(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetRequestBody(*v)
	}
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *PlanEventUpdate) SetResponseBody(v string) *PlanEventUpdate {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *PlanEventUpdate) SetNillableResponseBody(v *string) *PlanEventUpdate {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdate) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlanEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlanEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(planevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(planevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetOp(); ok {
		_spec.SetField(planevent.FieldOp, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(planevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(planevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(planevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(planevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(planevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(planevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Readiness(); ok {
		_spec.SetField(planevent.FieldReadiness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadiness(); ok {
		_spec.AddField(planevent.FieldReadiness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestBody(); ok {
		_spec.SetField(planevent.FieldRequestBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(planevent.FieldResponseBody, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlanEventUpdateOne is the builder for updating a single PlanEvent entity.
type PlanEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlanEventMutation
}

// SetRequestID sets the "request_id" field.
func (_u *PlanEventUpdateOne) SetRequestID(v string) *PlanEventUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableRequestID(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlanEventUpdateOne) SetSessionID(v string) *PlanEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableSessionID(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetOp sets the "op" field.
func (_u *PlanEventUpdateOne) SetOp(v string) *PlanEventUpdateOne {
	_u.mutation.SetOpField(v)
	return _u
}

// SetNillableOp sets the "op" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableOp(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetOp(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *PlanEventUpdateOne) SetSuccess(v bool) *PlanEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableSuccess(v *bool) *PlanEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlanEventUpdateOne) SetStatus(v int) *PlanEventUpdateOne {
	_u.mutation.ResetStatus()
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableStatus(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// AddStatus adds value to the "status" field.
func (_u *PlanEventUpdateOne) AddStatus(v int) *PlanEventUpdateOne {
	_u.mutation.AddStatus(v)
	return _u
}

// SetLatencyMs sets the "latency_ms" field.
func (_u *PlanEventUpdateOne) SetLatencyMs(v int64) *PlanEventUpdateOne {
	_u.mutation.ResetLatencyMs()
	_u.mutation.SetLatencyMs(v)
	return _u
}

// SetNillableLatencyMs sets the "latency_ms" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableLatencyMs(v *int64) *PlanEventUpdateOne {
	if v != nil {
		_u.SetLatencyMs(*v)
	}
	return _u
}

// AddLatencyMs adds value to the "latency_ms" field.
func (_u *PlanEventUpdateOne) AddLatencyMs(v int64) *PlanEventUpdateOne {
	_u.mutation.AddLatencyMs(v)
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *PlanEventUpdateOne) SetErrorMessage(v string) *PlanEventUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableErrorMessage(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// SetReadiness sets the "readiness" field.
func (_u *PlanEventUpdateOne) SetReadiness(v int) *PlanEventUpdateOne {
	_u.mutation.ResetReadiness()
	_u.mutation.SetReadiness(v)
	return _u
}

// SetNillableReadiness sets the "readiness" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableReadiness(v *int) *PlanEventUpdateOne {
	if v != nil {
		_u.SetReadiness(*v)
	}
	return _u
}

// AddReadiness adds value to the "readiness" field.
func (_u *PlanEventUpdateOne) AddReadiness(v int) *PlanEventUpdateOne {
	_u.mutation.AddReadiness(v)
	return _u
}

// SetRequestBody sets the "request_body" field.
func (_u *PlanEventUpdateOne) SetRequestBody(v string) *PlanEventUpdateOne {
	_u.mutation.SetRequestBody(v)
	return _u
}

// SetNillableRequestBody sets the "request_body" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableRequestBody(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetRequestBody(*v)
	}
	return _u
}

// SetResponseBody sets the "response_body" field.
func (_u *PlanEventUpdateOne) SetResponseBody(v string) *PlanEventUpdateOne {
	_u.mutation.SetResponseBody(v)
	return _u
}

// SetNillableResponseBody sets the "response_body" field if the given value is not nil.
func (_u *PlanEventUpdateOne) SetNillableResponseBody(v *string) *PlanEventUpdateOne {
	if v != nil {
		_u.SetResponseBody(*v)
	}
	return _u
}

// Mutation returns the PlanEventMutation object of the builder.
func (_u *PlanEventUpdateOne) Mutation() *PlanEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PlanEventUpdate builder.
func (_u *PlanEventUpdateOne) Where(ps ...predicate.PlanEvent) *PlanEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlanEventUpdateOne) Select(field string, fields ...string) *PlanEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlanEvent entity.
func (_u *PlanEventUpdateOne) Save(ctx context.Context) (*PlanEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlanEventUpdateOne) SaveX(ctx context.Context) *PlanEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlanEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlanEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *PlanEventUpdateOne) sqlSave(ctx context.Context) (_node *PlanEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(planevent.Table, planevent.Columns, sqlgraph.NewFieldSpec(planevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlanEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, planevent.FieldID)
		for _, f := range fields {
			if !planevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != planevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RequestID(); ok {
		_spec.SetField(planevent.FieldRequestID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(planevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GetOp(); ok {
		_spec.SetField(planevent.FieldOp, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(planevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(planevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStatus(); ok {
		_spec.AddField(planevent.FieldStatus, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LatencyMs(); ok {
		_spec.SetField(planevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedLatencyMs(); ok {
		_spec.AddField(planevent.FieldLatencyMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(planevent.FieldErrorMessage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Readiness(); ok {
		_spec.SetField(planevent.FieldReadiness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReadiness(); ok {
		_spec.AddField(planevent.FieldReadiness, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequestBody(); ok {
		_spec.SetField(planevent.FieldRequestBody, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResponseBody(); ok {
		_spec.SetField(planevent.FieldResponseBody, field.TypeString, value)
	}
	_node = &PlanEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{planevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
