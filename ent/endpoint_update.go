// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/topoclimb/topoclimb-gateway/ent/endpoint"
	"github.com/topoclimb/topoclimb-gateway/ent/predicate"
)

// EndpointUpdate is the builder for updating Endpoint entities.
type EndpointUpdate struct {
	config
	hooks    []Hook
	mutation *EndpointMutation
}

// Where appends a list predicates to the EndpointUpdate builder.
func (_u *EndpointUpdate) Where(ps ...predicate.Endpoint) *EndpointUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *EndpointUpdate) SetName(v string) *EndpointUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableName(v *string) *EndpointUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *EndpointUpdate) SetBaseURL(v string) *EndpointUpdate {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableBaseURL(v *string) *EndpointUpdate {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *EndpointUpdate) SetEnabled(v bool) *EndpointUpdate {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableEnabled(v *bool) *EndpointUpdate {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *EndpointUpdate) SetIsDefault(v bool) *EndpointUpdate {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableIsDefault(v *bool) *EndpointUpdate {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetAuthToken sets the "auth_token" field.
func (_u *EndpointUpdate) SetAuthToken(v string) *EndpointUpdate {
	_u.mutation.SetAuthToken(v)
	return _u
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableAuthToken(v *string) *EndpointUpdate {
	if v != nil {
		_u.SetAuthToken(*v)
	}
	return _u
}

// ClearAuthToken clears the value of the "auth_token" field.
func (_u *EndpointUpdate) ClearAuthToken() *EndpointUpdate {
	_u.mutation.ClearAuthToken()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EndpointUpdate) SetUserID(v int64) *EndpointUpdate {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableUserID(v *int64) *EndpointUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *EndpointUpdate) AddUserID(v int64) *EndpointUpdate {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EndpointUpdate) ClearUserID() *EndpointUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetUsername sets the "username" field.
func (_u *EndpointUpdate) SetUsername(v string) *EndpointUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableUsername(v *string) *EndpointUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *EndpointUpdate) ClearUsername() *EndpointUpdate {
	_u.mutation.ClearUsername()
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *EndpointUpdate) SetUserEmail(v string) *EndpointUpdate {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableUserEmail(v *string) *EndpointUpdate {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// ClearUserEmail clears the value of the "user_email" field.
func (_u *EndpointUpdate) ClearUserEmail() *EndpointUpdate {
	_u.mutation.ClearUserEmail()
	return _u
}

// SetPosition sets the "position" field.
func (_u *EndpointUpdate) SetPosition(v int) *EndpointUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillablePosition(v *int) *EndpointUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EndpointUpdate) AddPosition(v int) *EndpointUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EndpointUpdate) SetUpdatedAt(v time.Time) *EndpointUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *EndpointUpdate) SetNillableUpdatedAt(v *time.Time) *EndpointUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the EndpointMutation object of the builder.
func (_u *EndpointUpdate) Mutation() *EndpointMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *EndpointUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EndpointUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *EndpointUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EndpointUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EndpointUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := endpoint.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Endpoint.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseURL(); ok {
		if err := endpoint.BaseURLValidator(v); err != nil {
			return &ValidationError{Name: "base_url", err: fmt.Errorf(`ent: validator failed for field "Endpoint.base_url": %w`, err)}
		}
	}
	return nil
}

func (_u *EndpointUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(endpoint.Table, endpoint.Columns, sqlgraph.NewFieldSpec(endpoint.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(endpoint.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(endpoint.FieldBaseURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(endpoint.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(endpoint.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AuthToken(); ok {
		_spec.SetField(endpoint.FieldAuthToken, field.TypeString, value)
	}
	if _u.mutation.AuthTokenCleared() {
		_spec.ClearField(endpoint.FieldAuthToken, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(endpoint.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(endpoint.FieldUserID, field.TypeInt64, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(endpoint.FieldUserID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(endpoint.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(endpoint.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(endpoint.FieldUserEmail, field.TypeString, value)
	}
	if _u.mutation.UserEmailCleared() {
		_spec.ClearField(endpoint.FieldUserEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(endpoint.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(endpoint.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(endpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{endpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// EndpointUpdateOne is the builder for updating a single Endpoint entity.
type EndpointUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *EndpointMutation
}

// SetName sets the "name" field.
func (_u *EndpointUpdateOne) SetName(v string) *EndpointUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableName(v *string) *EndpointUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetBaseURL sets the "base_url" field.
func (_u *EndpointUpdateOne) SetBaseURL(v string) *EndpointUpdateOne {
	_u.mutation.SetBaseURL(v)
	return _u
}

// SetNillableBaseURL sets the "base_url" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableBaseURL(v *string) *EndpointUpdateOne {
	if v != nil {
		_u.SetBaseURL(*v)
	}
	return _u
}

// SetEnabled sets the "enabled" field.
func (_u *EndpointUpdateOne) SetEnabled(v bool) *EndpointUpdateOne {
	_u.mutation.SetEnabled(v)
	return _u
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableEnabled(v *bool) *EndpointUpdateOne {
	if v != nil {
		_u.SetEnabled(*v)
	}
	return _u
}

// SetIsDefault sets the "is_default" field.
func (_u *EndpointUpdateOne) SetIsDefault(v bool) *EndpointUpdateOne {
	_u.mutation.SetIsDefault(v)
	return _u
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableIsDefault(v *bool) *EndpointUpdateOne {
	if v != nil {
		_u.SetIsDefault(*v)
	}
	return _u
}

// SetAuthToken sets the "auth_token" field.
func (_u *EndpointUpdateOne) SetAuthToken(v string) *EndpointUpdateOne {
	_u.mutation.SetAuthToken(v)
	return _u
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableAuthToken(v *string) *EndpointUpdateOne {
	if v != nil {
		_u.SetAuthToken(*v)
	}
	return _u
}

// ClearAuthToken clears the value of the "auth_token" field.
func (_u *EndpointUpdateOne) ClearAuthToken() *EndpointUpdateOne {
	_u.mutation.ClearAuthToken()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *EndpointUpdateOne) SetUserID(v int64) *EndpointUpdateOne {
	_u.mutation.ResetUserID()
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableUserID(v *int64) *EndpointUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// AddUserID adds value to the "user_id" field.
func (_u *EndpointUpdateOne) AddUserID(v int64) *EndpointUpdateOne {
	_u.mutation.AddUserID(v)
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *EndpointUpdateOne) ClearUserID() *EndpointUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetUsername sets the "username" field.
func (_u *EndpointUpdateOne) SetUsername(v string) *EndpointUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableUsername(v *string) *EndpointUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// ClearUsername clears the value of the "username" field.
func (_u *EndpointUpdateOne) ClearUsername() *EndpointUpdateOne {
	_u.mutation.ClearUsername()
	return _u
}

// SetUserEmail sets the "user_email" field.
func (_u *EndpointUpdateOne) SetUserEmail(v string) *EndpointUpdateOne {
	_u.mutation.SetUserEmail(v)
	return _u
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableUserEmail(v *string) *EndpointUpdateOne {
	if v != nil {
		_u.SetUserEmail(*v)
	}
	return _u
}

// ClearUserEmail clears the value of the "user_email" field.
func (_u *EndpointUpdateOne) ClearUserEmail() *EndpointUpdateOne {
	_u.mutation.ClearUserEmail()
	return _u
}

// SetPosition sets the "position" field.
func (_u *EndpointUpdateOne) SetPosition(v int) *EndpointUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillablePosition(v *int) *EndpointUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *EndpointUpdateOne) AddPosition(v int) *EndpointUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *EndpointUpdateOne) SetUpdatedAt(v time.Time) *EndpointUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *EndpointUpdateOne) SetNillableUpdatedAt(v *time.Time) *EndpointUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// Mutation returns the EndpointMutation object of the builder.
func (_u *EndpointUpdateOne) Mutation() *EndpointMutation {
	return _u.mutation
}

// Where appends a list predicates to the EndpointUpdate builder.
func (_u *EndpointUpdateOne) Where(ps ...predicate.Endpoint) *EndpointUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *EndpointUpdateOne) Select(field string, fields ...string) *EndpointUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Endpoint entity.
func (_u *EndpointUpdateOne) Save(ctx context.Context) (*Endpoint, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *EndpointUpdateOne) SaveX(ctx context.Context) *Endpoint {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *EndpointUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *EndpointUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *EndpointUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := endpoint.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Endpoint.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BaseURL(); ok {
		if err := endpoint.BaseURLValidator(v); err != nil {
			return &ValidationError{Name: "base_url", err: fmt.Errorf(`ent: validator failed for field "Endpoint.base_url": %w`, err)}
		}
	}
	return nil
}

func (_u *EndpointUpdateOne) sqlSave(ctx context.Context) (_node *Endpoint, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(endpoint.Table, endpoint.Columns, sqlgraph.NewFieldSpec(endpoint.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Endpoint.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, endpoint.FieldID)
		for _, f := range fields {
			if !endpoint.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != endpoint.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(endpoint.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BaseURL(); ok {
		_spec.SetField(endpoint.FieldBaseURL, field.TypeString, value)
	}
	if value, ok := _u.mutation.Enabled(); ok {
		_spec.SetField(endpoint.FieldEnabled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsDefault(); ok {
		_spec.SetField(endpoint.FieldIsDefault, field.TypeBool, value)
	}
	if value, ok := _u.mutation.AuthToken(); ok {
		_spec.SetField(endpoint.FieldAuthToken, field.TypeString, value)
	}
	if _u.mutation.AuthTokenCleared() {
		_spec.ClearField(endpoint.FieldAuthToken, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(endpoint.FieldUserID, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedUserID(); ok {
		_spec.AddField(endpoint.FieldUserID, field.TypeInt64, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(endpoint.FieldUserID, field.TypeInt64)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(endpoint.FieldUsername, field.TypeString, value)
	}
	if _u.mutation.UsernameCleared() {
		_spec.ClearField(endpoint.FieldUsername, field.TypeString)
	}
	if value, ok := _u.mutation.UserEmail(); ok {
		_spec.SetField(endpoint.FieldUserEmail, field.TypeString, value)
	}
	if _u.mutation.UserEmailCleared() {
		_spec.ClearField(endpoint.FieldUserEmail, field.TypeString)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(endpoint.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(endpoint.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(endpoint.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Endpoint{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{endpoint.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
