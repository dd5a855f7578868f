// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"modgoviya.io/modgoviya/ent/user"
)

// UserCreate is the builder for creating a User entity.
type UserCreate struct {
	config
	mutation *UserMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *UserCreate) SetCreatedAt(v time.Time) *UserCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableCreatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UserCreate) SetUpdatedAt(v time.Time) *UserCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableUpdatedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetEmail sets the "email" field.
func (_c *UserCreate) SetEmail(v string) *UserCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *UserCreate) SetFullName(v string) *UserCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UserCreate) SetPasswordHash(v string) *UserCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *UserCreate) SetNillablePasswordHash(v *string) *UserCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetAuthProvider sets the "auth_provider" field.
func (_c *UserCreate) SetAuthProvider(v user.AuthProvider) *UserCreate {
	_c.mutation.SetAuthProvider(v)
	return _c
}

// SetNillableAuthProvider sets the "auth_provider" field if the given value is not nil.
func (_c *UserCreate) SetNillableAuthProvider(v *user.AuthProvider) *UserCreate {
	if v != nil {
		_c.SetAuthProvider(*v)
	}
	return _c
}

// SetGoogleID sets the "google_id" field.
func (_c *UserCreate) SetGoogleID(v string) *UserCreate {
	_c.mutation.SetGoogleID(v)
	return _c
}

// SetNillableGoogleID sets the "google_id" field if the given value is not nil.
func (_c *UserCreate) SetNillableGoogleID(v *string) *UserCreate {
	if v != nil {
		_c.SetGoogleID(*v)
	}
	return _c
}

// SetFacebookID sets the "facebook_id" field.
func (_c *UserCreate) SetFacebookID(v string) *UserCreate {
	_c.mutation.SetFacebookID(v)
	return _c
}

// SetNillableFacebookID sets the "facebook_id" field if the given value is not nil.
func (_c *UserCreate) SetNillableFacebookID(v *string) *UserCreate {
	if v != nil {
		_c.SetFacebookID(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *UserCreate) SetRole(v user.Role) *UserCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *UserCreate) SetNillableRole(v *user.Role) *UserCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetLoginAttempts sets the "login_attempts" field.
func (_c *UserCreate) SetLoginAttempts(v int) *UserCreate {
	_c.mutation.SetLoginAttempts(v)
	return _c
}

// SetNillableLoginAttempts sets the "login_attempts" field if the given value is not nil.
func (_c *UserCreate) SetNillableLoginAttempts(v *int) *UserCreate {
	if v != nil {
		_c.SetLoginAttempts(*v)
	}
	return _c
}

// SetLockUntil sets the "lock_until" field.
func (_c *UserCreate) SetLockUntil(v time.Time) *UserCreate {
	_c.mutation.SetLockUntil(v)
	return _c
}

// SetNillableLockUntil sets the "lock_until" field if the given value is not nil.
func (_c *UserCreate) SetNillableLockUntil(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLockUntil(*v)
	}
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *UserCreate) SetIsActive(v bool) *UserCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *UserCreate) SetNillableIsActive(v *bool) *UserCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetIsVerified sets the "is_verified" field.
func (_c *UserCreate) SetIsVerified(v bool) *UserCreate {
	_c.mutation.SetIsVerified(v)
	return _c
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_c *UserCreate) SetNillableIsVerified(v *bool) *UserCreate {
	if v != nil {
		_c.SetIsVerified(*v)
	}
	return _c
}

// SetOidcIssuer sets the "oidc_issuer" field.
func (_c *UserCreate) SetOidcIssuer(v string) *UserCreate {
	_c.mutation.SetOidcIssuer(v)
	return _c
}

// SetNillableOidcIssuer sets the "oidc_issuer" field if the given value is not nil.
func (_c *UserCreate) SetNillableOidcIssuer(v *string) *UserCreate {
	if v != nil {
		_c.SetOidcIssuer(*v)
	}
	return _c
}

// SetOidcSubject sets the "oidc_subject" field.
func (_c *UserCreate) SetOidcSubject(v string) *UserCreate {
	_c.mutation.SetOidcSubject(v)
	return _c
}

// SetNillableOidcSubject sets the "oidc_subject" field if the given value is not nil.
func (_c *UserCreate) SetNillableOidcSubject(v *string) *UserCreate {
	if v != nil {
		_c.SetOidcSubject(*v)
	}
	return _c
}

// SetOidcAudience sets the "oidc_audience" field.
func (_c *UserCreate) SetOidcAudience(v string) *UserCreate {
	_c.mutation.SetOidcAudience(v)
	return _c
}

// SetNillableOidcAudience sets the "oidc_audience" field if the given value is not nil.
func (_c *UserCreate) SetNillableOidcAudience(v *string) *UserCreate {
	if v != nil {
		_c.SetOidcAudience(*v)
	}
	return _c
}

// SetOidcIssuedAt sets the "oidc_issued_at" field.
func (_c *UserCreate) SetOidcIssuedAt(v time.Time) *UserCreate {
	_c.mutation.SetOidcIssuedAt(v)
	return _c
}

// SetNillableOidcIssuedAt sets the "oidc_issued_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableOidcIssuedAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetOidcIssuedAt(*v)
	}
	return _c
}

// SetOidcExpiration sets the "oidc_expiration" field.
func (_c *UserCreate) SetOidcExpiration(v time.Time) *UserCreate {
	_c.mutation.SetOidcExpiration(v)
	return _c
}

// SetNillableOidcExpiration sets the "oidc_expiration" field if the given value is not nil.
func (_c *UserCreate) SetNillableOidcExpiration(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetOidcExpiration(*v)
	}
	return _c
}

// SetOidcEmailVerified sets the "oidc_email_verified" field.
func (_c *UserCreate) SetOidcEmailVerified(v bool) *UserCreate {
	_c.mutation.SetOidcEmailVerified(v)
	return _c
}

// SetNillableOidcEmailVerified sets the "oidc_email_verified" field if the given value is not nil.
func (_c *UserCreate) SetNillableOidcEmailVerified(v *bool) *UserCreate {
	if v != nil {
		_c.SetOidcEmailVerified(*v)
	}
	return _c
}

// SetOidcHostedDomain sets the "oidc_hosted_domain" field.
func (_c *UserCreate) SetOidcHostedDomain(v string) *UserCreate {
	_c.mutation.SetOidcHostedDomain(v)
	return _c
}

// SetNillableOidcHostedDomain sets the "oidc_hosted_domain" field if the given value is not nil.
func (_c *UserCreate) SetNillableOidcHostedDomain(v *string) *UserCreate {
	if v != nil {
		_c.SetOidcHostedDomain(*v)
	}
	return _c
}

// SetPasswordResetToken sets the "password_reset_token" field.
func (_c *UserCreate) SetPasswordResetToken(v string) *UserCreate {
	_c.mutation.SetPasswordResetToken(v)
	return _c
}

// SetNillablePasswordResetToken sets the "password_reset_token" field if the given value is not nil.
func (_c *UserCreate) SetNillablePasswordResetToken(v *string) *UserCreate {
	if v != nil {
		_c.SetPasswordResetToken(*v)
	}
	return _c
}

// SetPasswordResetExpires sets the "password_reset_expires" field.
func (_c *UserCreate) SetPasswordResetExpires(v time.Time) *UserCreate {
	_c.mutation.SetPasswordResetExpires(v)
	return _c
}

// SetNillablePasswordResetExpires sets the "password_reset_expires" field if the given value is not nil.
func (_c *UserCreate) SetNillablePasswordResetExpires(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetPasswordResetExpires(*v)
	}
	return _c
}

// SetEmailVerificationToken sets the "email_verification_token" field.
func (_c *UserCreate) SetEmailVerificationToken(v string) *UserCreate {
	_c.mutation.SetEmailVerificationToken(v)
	return _c
}

// SetNillableEmailVerificationToken sets the "email_verification_token" field if the given value is not nil.
func (_c *UserCreate) SetNillableEmailVerificationToken(v *string) *UserCreate {
	if v != nil {
		_c.SetEmailVerificationToken(*v)
	}
	return _c
}

// SetEmailVerificationExpires sets the "email_verification_expires" field.
func (_c *UserCreate) SetEmailVerificationExpires(v time.Time) *UserCreate {
	_c.mutation.SetEmailVerificationExpires(v)
	return _c
}

// SetNillableEmailVerificationExpires sets the "email_verification_expires" field if the given value is not nil.
func (_c *UserCreate) SetNillableEmailVerificationExpires(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetEmailVerificationExpires(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *UserCreate) SetLastLoginAt(v time.Time) *UserCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *UserCreate) SetNillableLastLoginAt(v *time.Time) *UserCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UserCreate) SetID(v string) *UserCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the UserMutation object of the builder.
func (_c *UserCreate) Mutation() *UserMutation {
	return _c.mutation
}

// Save creates the User in the database.
func (_c *UserCreate) Save(ctx context.Context) (*User, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UserCreate) SaveX(ctx context.Context) *User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UserCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := user.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := user.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.AuthProvider(); !ok {
		v := user.DefaultAuthProvider
		_c.mutation.SetAuthProvider(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := user.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.LoginAttempts(); !ok {
		v := user.DefaultLoginAttempts
		_c.mutation.SetLoginAttempts(v)
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		v := user.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		v := user.DefaultIsVerified
		_c.mutation.SetIsVerified(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UserCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "User.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "User.updated_at"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "User.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "User.full_name"`)}
	}
	if v, ok := _c.mutation.FullName(); ok {
		if err := user.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "User.full_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthProvider(); !ok {
		return &ValidationError{Name: "auth_provider", err: errors.New(`ent: missing required field "User.auth_provider"`)}
	}
	if v, ok := _c.mutation.AuthProvider(); ok {
		if err := user.AuthProviderValidator(v); err != nil {
			return &ValidationError{Name: "auth_provider", err: fmt.Errorf(`ent: validator failed for field "User.auth_provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "User.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LoginAttempts(); !ok {
		return &ValidationError{Name: "login_attempts", err: errors.New(`ent: missing required field "User.login_attempts"`)}
	}
	if v, ok := _c.mutation.LoginAttempts(); ok {
		if err := user.LoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "login_attempts", err: fmt.Errorf(`ent: validator failed for field "User.login_attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "User.is_active"`)}
	}
	if _, ok := _c.mutation.IsVerified(); !ok {
		return &ValidationError{Name: "is_verified", err: errors.New(`ent: missing required field "User.is_verified"`)}
	}
	return nil
}

func (_c *UserCreate) sqlSave(ctx context.Context) (*User, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected User.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *UserCreate) createSpec() (*User, *sqlgraph.CreateSpec) {
	var (
		_node = &User{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(user.Table, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(user.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(user.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = value
	}
	if value, ok := _c.mutation.AuthProvider(); ok {
		_spec.SetField(user.FieldAuthProvider, field.TypeEnum, value)
		_node.AuthProvider = value
	}
	if value, ok := _c.mutation.GoogleID(); ok {
		_spec.SetField(user.FieldGoogleID, field.TypeString, value)
		_node.GoogleID = &value
	}
	if value, ok := _c.mutation.FacebookID(); ok {
		_spec.SetField(user.FieldFacebookID, field.TypeString, value)
		_node.FacebookID = &value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.LoginAttempts(); ok {
		_spec.SetField(user.FieldLoginAttempts, field.TypeInt, value)
		_node.LoginAttempts = value
	}
	if value, ok := _c.mutation.LockUntil(); ok {
		_spec.SetField(user.FieldLockUntil, field.TypeTime, value)
		_node.LockUntil = &value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(user.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.IsVerified(); ok {
		_spec.SetField(user.FieldIsVerified, field.TypeBool, value)
		_node.IsVerified = value
	}
	if value, ok := _c.mutation.OidcIssuer(); ok {
		_spec.SetField(user.FieldOidcIssuer, field.TypeString, value)
		_node.OidcIssuer = value
	}
	if value, ok := _c.mutation.OidcSubject(); ok {
		_spec.SetField(user.FieldOidcSubject, field.TypeString, value)
		_node.OidcSubject = value
	}
	if value, ok := _c.mutation.OidcAudience(); ok {
		_spec.SetField(user.FieldOidcAudience, field.TypeString, value)
		_node.OidcAudience = value
	}
	if value, ok := _c.mutation.OidcIssuedAt(); ok {
		_spec.SetField(user.FieldOidcIssuedAt, field.TypeTime, value)
		_node.OidcIssuedAt = &value
	}
	if value, ok := _c.mutation.OidcExpiration(); ok {
		_spec.SetField(user.FieldOidcExpiration, field.TypeTime, value)
		_node.OidcExpiration = &value
	}
	if value, ok := _c.mutation.OidcEmailVerified(); ok {
		_spec.SetField(user.FieldOidcEmailVerified, field.TypeBool, value)
		_node.OidcEmailVerified = value
	}
	if value, ok := _c.mutation.OidcHostedDomain(); ok {
		_spec.SetField(user.FieldOidcHostedDomain, field.TypeString, value)
		_node.OidcHostedDomain = value
	}
	if value, ok := _c.mutation.PasswordResetToken(); ok {
		_spec.SetField(user.FieldPasswordResetToken, field.TypeString, value)
		_node.PasswordResetToken = value
	}
	if value, ok := _c.mutation.PasswordResetExpires(); ok {
		_spec.SetField(user.FieldPasswordResetExpires, field.TypeTime, value)
		_node.PasswordResetExpires = &value
	}
	if value, ok := _c.mutation.EmailVerificationToken(); ok {
		_spec.SetField(user.FieldEmailVerificationToken, field.TypeString, value)
		_node.EmailVerificationToken = value
	}
	if value, ok := _c.mutation.EmailVerificationExpires(); ok {
		_spec.SetField(user.FieldEmailVerificationExpires, field.TypeTime, value)
		_node.EmailVerificationExpires = &value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	return _node, _spec
}

// UserCreateBulk is the builder for creating many User entities in bulk.
type UserCreateBulk struct {
	config
	err      error
	builders []*UserCreate
}

// Save creates the User entities in the database.
func (_c *UserCreateBulk) Save(ctx context.Context) ([]*User, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*User, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UserMutation)
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
func (_c *UserCreateBulk) SaveX(ctx context.Context) []*User {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UserCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UserCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
