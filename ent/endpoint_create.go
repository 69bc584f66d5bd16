// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/topoclimb/topoclimb-gateway/ent/endpoint"
)

// EndpointCreate is the builder for creating a Endpoint entity.
type EndpointCreate struct {
	config
	mutation *EndpointMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *EndpointCreate) SetName(v string) *EndpointCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetBaseURL sets the "base_url" field.
func (_c *EndpointCreate) SetBaseURL(v string) *EndpointCreate {
	_c.mutation.SetBaseURL(v)
	return _c
}

// SetEnabled sets the "enabled" field.
func (_c *EndpointCreate) SetEnabled(v bool) *EndpointCreate {
	_c.mutation.SetEnabled(v)
	return _c
}

// SetNillableEnabled sets the "enabled" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableEnabled(v *bool) *EndpointCreate {
	if v != nil {
		_c.SetEnabled(*v)
	}
	return _c
}

// SetIsDefault sets the "is_default" field.
func (_c *EndpointCreate) SetIsDefault(v bool) *EndpointCreate {
	_c.mutation.SetIsDefault(v)
	return _c
}

// SetNillableIsDefault sets the "is_default" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableIsDefault(v *bool) *EndpointCreate {
	if v != nil {
		_c.SetIsDefault(*v)
	}
	return _c
}

// SetAuthToken sets the "auth_token" field.
func (_c *EndpointCreate) SetAuthToken(v string) *EndpointCreate {
	_c.mutation.SetAuthToken(v)
	return _c
}

// SetNillableAuthToken sets the "auth_token" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableAuthToken(v *string) *EndpointCreate {
	if v != nil {
		_c.SetAuthToken(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *EndpointCreate) SetUserID(v int64) *EndpointCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableUserID(v *int64) *EndpointCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetUsername sets the "username" field.
func (_c *EndpointCreate) SetUsername(v string) *EndpointCreate {
	_c.mutation.SetUsername(v)
	return _c
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableUsername(v *string) *EndpointCreate {
	if v != nil {
		_c.SetUsername(*v)
	}
	return _c
}

// SetUserEmail sets the "user_email" field.
func (_c *EndpointCreate) SetUserEmail(v string) *EndpointCreate {
	_c.mutation.SetUserEmail(v)
	return _c
}

// SetNillableUserEmail sets the "user_email" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableUserEmail(v *string) *EndpointCreate {
	if v != nil {
		_c.SetUserEmail(*v)
	}
	return _c
}

// SetPosition sets the "position" field.
func (_c *EndpointCreate) SetPosition(v int) *EndpointCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_c *EndpointCreate) SetNillablePosition(v *int) *EndpointCreate {
	if v != nil {
		_c.SetPosition(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EndpointCreate) SetCreatedAt(v time.Time) *EndpointCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableCreatedAt(v *time.Time) *EndpointCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *EndpointCreate) SetUpdatedAt(v time.Time) *EndpointCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableUpdatedAt(v *time.Time) *EndpointCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EndpointCreate) SetID(v uuid.UUID) *EndpointCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *EndpointCreate) SetNillableID(v *uuid.UUID) *EndpointCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the EndpointMutation object of the builder.
func (_c *EndpointCreate) Mutation() *EndpointMutation {
	return _c.mutation
}

// Save creates the Endpoint in the database.
func (_c *EndpointCreate) Save(ctx context.Context) (*Endpoint, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EndpointCreate) SaveX(ctx context.Context) *Endpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EndpointCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EndpointCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EndpointCreate) defaults() {
	if _, ok := _c.mutation.Enabled(); !ok {
		v := endpoint.DefaultEnabled
		_c.mutation.SetEnabled(v)
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		v := endpoint.DefaultIsDefault
		_c.mutation.SetIsDefault(v)
	}
	if _, ok := _c.mutation.Position(); !ok {
		v := endpoint.DefaultPosition
		_c.mutation.SetPosition(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := endpoint.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := endpoint.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := endpoint.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EndpointCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Endpoint.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := endpoint.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Endpoint.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BaseURL(); !ok {
		return &ValidationError{Name: "base_url", err: errors.New(`ent: missing required field "Endpoint.base_url"`)}
	}
	if v, ok := _c.mutation.BaseURL(); ok {
		if err := endpoint.BaseURLValidator(v); err != nil {
			return &ValidationError{Name: "base_url", err: fmt.Errorf(`ent: validator failed for field "Endpoint.base_url": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Enabled(); !ok {
		return &ValidationError{Name: "enabled", err: errors.New(`ent: missing required field "Endpoint.enabled"`)}
	}
	if _, ok := _c.mutation.IsDefault(); !ok {
		return &ValidationError{Name: "is_default", err: errors.New(`ent: missing required field "Endpoint.is_default"`)}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Endpoint.position"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Endpoint.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Endpoint.updated_at"`)}
	}
	return nil
}

func (_c *EndpointCreate) sqlSave(ctx context.Context) (*Endpoint, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EndpointCreate) createSpec() (*Endpoint, *sqlgraph.CreateSpec) {
	var (
		_node = &Endpoint{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(endpoint.Table, sqlgraph.NewFieldSpec(endpoint.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(endpoint.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.BaseURL(); ok {
		_spec.SetField(endpoint.FieldBaseURL, field.TypeString, value)
		_node.BaseURL = value
	}
	if value, ok := _c.mutation.Enabled(); ok {
		_spec.SetField(endpoint.FieldEnabled, field.TypeBool, value)
		_node.Enabled = value
	}
	if value, ok := _c.mutation.IsDefault(); ok {
		_spec.SetField(endpoint.FieldIsDefault, field.TypeBool, value)
		_node.IsDefault = value
	}
	if value, ok := _c.mutation.AuthToken(); ok {
		_spec.SetField(endpoint.FieldAuthToken, field.TypeString, value)
		_node.AuthToken = &value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(endpoint.FieldUserID, field.TypeInt64, value)
		_node.UserID = &value
	}
	if value, ok := _c.mutation.Username(); ok {
		_spec.SetField(endpoint.FieldUsername, field.TypeString, value)
		_node.Username = &value
	}
	if value, ok := _c.mutation.UserEmail(); ok {
		_spec.SetField(endpoint.FieldUserEmail, field.TypeString, value)
		_node.UserEmail = &value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(endpoint.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(endpoint.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(endpoint.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// EndpointCreateBulk is the builder for creating many Endpoint entities in bulk.
type EndpointCreateBulk struct {
	config
	err      error
	builders []*EndpointCreate
}

// Save creates the Endpoint entities in the database.
func (_c *EndpointCreateBulk) Save(ctx context.Context) ([]*Endpoint, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Endpoint, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EndpointMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *EndpointCreateBulk) SaveX(ctx context.Context) []*Endpoint {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EndpointCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EndpointCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
