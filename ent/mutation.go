// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"modgoviya.io/modgoviya/ent/predicate"
	"modgoviya.io/modgoviya/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeUser = "User"
)

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	created_at                 *time.Time
	updated_at                 *time.Time
	email                      *string
	full_name                  *string
	password_hash              *string
	auth_provider              *user.AuthProvider
	google_id                  *string
	facebook_id                *string
	role                       *user.Role
	login_attempts             *int
	addlogin_attempts          *int
	lock_until                 *time.Time
	is_active                  *bool
	is_verified                *bool
	oidc_issuer                *string
	oidc_subject               *string
	oidc_audience              *string
	oidc_issued_at             *time.Time
	oidc_expiration            *time.Time
	oidc_email_verified        *bool
	oidc_hosted_domain         *string
	password_reset_token       *string
	password_reset_expires     *time.Time
	email_verification_token   *string
	email_verification_expires *time.Time
	last_login_at              *time.Time
	clearedFields              map[string]struct{}
	done                       bool
	oldValue                   func(context.Context) (*User, error)
	predicates                 []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id string) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetFullName sets the "full_name" field.
func (m *UserMutation) SetFullName(s string) {
	m.full_name = &s
}

// FullName returns the value of the "full_name" field in the mutation.
func (m *UserMutation) FullName() (r string, exists bool) {
	v := m.full_name
	if v == nil {
		return
	}
	return *v, true
}

// OldFullName returns the old "full_name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFullName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFullName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFullName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFullName: %w", err)
	}
	return oldValue.FullName, nil
}

// ResetFullName resets all changes to the "full_name" field.
func (m *UserMutation) ResetFullName() {
	m.full_name = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (m *UserMutation) ClearPasswordHash() {
	m.password_hash = nil
	m.clearedFields[user.FieldPasswordHash] = struct{}{}
}

// PasswordHashCleared returns if the "password_hash" field was cleared in this mutation.
func (m *UserMutation) PasswordHashCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordHash]
	return ok
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
	delete(m.clearedFields, user.FieldPasswordHash)
}

// SetAuthProvider sets the "auth_provider" field.
func (m *UserMutation) SetAuthProvider(up user.AuthProvider) {
	m.auth_provider = &up
}

// AuthProvider returns the value of the "auth_provider" field in the mutation.
func (m *UserMutation) AuthProvider() (r user.AuthProvider, exists bool) {
	v := m.auth_provider
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthProvider returns the old "auth_provider" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldAuthProvider(ctx context.Context) (v user.AuthProvider, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthProvider: %w", err)
	}
	return oldValue.AuthProvider, nil
}

// ResetAuthProvider resets all changes to the "auth_provider" field.
func (m *UserMutation) ResetAuthProvider() {
	m.auth_provider = nil
}

// SetGoogleID sets the "google_id" field.
func (m *UserMutation) SetGoogleID(s string) {
	m.google_id = &s
}

// GoogleID returns the value of the "google_id" field in the mutation.
func (m *UserMutation) GoogleID() (r string, exists bool) {
	v := m.google_id
	if v == nil {
		return
	}
	return *v, true
}

// OldGoogleID returns the old "google_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldGoogleID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGoogleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGoogleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGoogleID: %w", err)
	}
	return oldValue.GoogleID, nil
}

// ClearGoogleID clears the value of the "google_id" field.
func (m *UserMutation) ClearGoogleID() {
	m.google_id = nil
	m.clearedFields[user.FieldGoogleID] = struct{}{}
}

// GoogleIDCleared returns if the "google_id" field was cleared in this mutation.
func (m *UserMutation) GoogleIDCleared() bool {
	_, ok := m.clearedFields[user.FieldGoogleID]
	return ok
}

// ResetGoogleID resets all changes to the "google_id" field.
func (m *UserMutation) ResetGoogleID() {
	m.google_id = nil
	delete(m.clearedFields, user.FieldGoogleID)
}

// SetFacebookID sets the "facebook_id" field.
func (m *UserMutation) SetFacebookID(s string) {
	m.facebook_id = &s
}

// FacebookID returns the value of the "facebook_id" field in the mutation.
func (m *UserMutation) FacebookID() (r string, exists bool) {
	v := m.facebook_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFacebookID returns the old "facebook_id" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldFacebookID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFacebookID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFacebookID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFacebookID: %w", err)
	}
	return oldValue.FacebookID, nil
}

// ClearFacebookID clears the value of the "facebook_id" field.
func (m *UserMutation) ClearFacebookID() {
	m.facebook_id = nil
	m.clearedFields[user.FieldFacebookID] = struct{}{}
}

// FacebookIDCleared returns if the "facebook_id" field was cleared in this mutation.
func (m *UserMutation) FacebookIDCleared() bool {
	_, ok := m.clearedFields[user.FieldFacebookID]
	return ok
}

// ResetFacebookID resets all changes to the "facebook_id" field.
func (m *UserMutation) ResetFacebookID() {
	m.facebook_id = nil
	delete(m.clearedFields, user.FieldFacebookID)
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetLoginAttempts sets the "login_attempts" field.
func (m *UserMutation) SetLoginAttempts(i int) {
	m.login_attempts = &i
	m.addlogin_attempts = nil
}

// LoginAttempts returns the value of the "login_attempts" field in the mutation.
func (m *UserMutation) LoginAttempts() (r int, exists bool) {
	v := m.login_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldLoginAttempts returns the old "login_attempts" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLoginAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLoginAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLoginAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLoginAttempts: %w", err)
	}
	return oldValue.LoginAttempts, nil
}

// AddLoginAttempts adds i to the "login_attempts" field.
func (m *UserMutation) AddLoginAttempts(i int) {
	if m.addlogin_attempts != nil {
		*m.addlogin_attempts += i
	} else {
		m.addlogin_attempts = &i
	}
}

// AddedLoginAttempts returns the value that was added to the "login_attempts" field in this mutation.
func (m *UserMutation) AddedLoginAttempts() (r int, exists bool) {
	v := m.addlogin_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetLoginAttempts resets all changes to the "login_attempts" field.
func (m *UserMutation) ResetLoginAttempts() {
	m.login_attempts = nil
	m.addlogin_attempts = nil
}

// SetLockUntil sets the "lock_until" field.
func (m *UserMutation) SetLockUntil(t time.Time) {
	m.lock_until = &t
}

// LockUntil returns the value of the "lock_until" field in the mutation.
func (m *UserMutation) LockUntil() (r time.Time, exists bool) {
	v := m.lock_until
	if v == nil {
		return
	}
	return *v, true
}

// OldLockUntil returns the old "lock_until" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLockUntil(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLockUntil is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLockUntil requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLockUntil: %w", err)
	}
	return oldValue.LockUntil, nil
}

// ClearLockUntil clears the value of the "lock_until" field.
func (m *UserMutation) ClearLockUntil() {
	m.lock_until = nil
	m.clearedFields[user.FieldLockUntil] = struct{}{}
}

// LockUntilCleared returns if the "lock_until" field was cleared in this mutation.
func (m *UserMutation) LockUntilCleared() bool {
	_, ok := m.clearedFields[user.FieldLockUntil]
	return ok
}

// ResetLockUntil resets all changes to the "lock_until" field.
func (m *UserMutation) ResetLockUntil() {
	m.lock_until = nil
	delete(m.clearedFields, user.FieldLockUntil)
}

// SetIsActive sets the "is_active" field.
func (m *UserMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *UserMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *UserMutation) ResetIsActive() {
	m.is_active = nil
}

// SetIsVerified sets the "is_verified" field.
func (m *UserMutation) SetIsVerified(b bool) {
	m.is_verified = &b
}

// IsVerified returns the value of the "is_verified" field in the mutation.
func (m *UserMutation) IsVerified() (r bool, exists bool) {
	v := m.is_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldIsVerified returns the old "is_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldIsVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsVerified: %w", err)
	}
	return oldValue.IsVerified, nil
}

// ResetIsVerified resets all changes to the "is_verified" field.
func (m *UserMutation) ResetIsVerified() {
	m.is_verified = nil
}

// SetOidcIssuer sets the "oidc_issuer" field.
func (m *UserMutation) SetOidcIssuer(s string) {
	m.oidc_issuer = &s
}

// OidcIssuer returns the value of the "oidc_issuer" field in the mutation.
func (m *UserMutation) OidcIssuer() (r string, exists bool) {
	v := m.oidc_issuer
	if v == nil {
		return
	}
	return *v, true
}

// OldOidcIssuer returns the old "oidc_issuer" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOidcIssuer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOidcIssuer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOidcIssuer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOidcIssuer: %w", err)
	}
	return oldValue.OidcIssuer, nil
}

// ClearOidcIssuer clears the value of the "oidc_issuer" field.
func (m *UserMutation) ClearOidcIssuer() {
	m.oidc_issuer = nil
	m.clearedFields[user.FieldOidcIssuer] = struct{}{}
}

// OidcIssuerCleared returns if the "oidc_issuer" field was cleared in this mutation.
func (m *UserMutation) OidcIssuerCleared() bool {
	_, ok := m.clearedFields[user.FieldOidcIssuer]
	return ok
}

// ResetOidcIssuer resets all changes to the "oidc_issuer" field.
func (m *UserMutation) ResetOidcIssuer() {
	m.oidc_issuer = nil
	delete(m.clearedFields, user.FieldOidcIssuer)
}

// SetOidcSubject sets the "oidc_subject" field.
func (m *UserMutation) SetOidcSubject(s string) {
	m.oidc_subject = &s
}

// OidcSubject returns the value of the "oidc_subject" field in the mutation.
func (m *UserMutation) OidcSubject() (r string, exists bool) {
	v := m.oidc_subject
	if v == nil {
		return
	}
	return *v, true
}

// OldOidcSubject returns the old "oidc_subject" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOidcSubject(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOidcSubject is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOidcSubject requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOidcSubject: %w", err)
	}
	return oldValue.OidcSubject, nil
}

// ClearOidcSubject clears the value of the "oidc_subject" field.
func (m *UserMutation) ClearOidcSubject() {
	m.oidc_subject = nil
	m.clearedFields[user.FieldOidcSubject] = struct{}{}
}

// OidcSubjectCleared returns if the "oidc_subject" field was cleared in this mutation.
func (m *UserMutation) OidcSubjectCleared() bool {
	_, ok := m.clearedFields[user.FieldOidcSubject]
	return ok
}

// ResetOidcSubject resets all changes to the "oidc_subject" field.
func (m *UserMutation) ResetOidcSubject() {
	m.oidc_subject = nil
	delete(m.clearedFields, user.FieldOidcSubject)
}

// SetOidcAudience sets the "oidc_audience" field.
func (m *UserMutation) SetOidcAudience(s string) {
	m.oidc_audience = &s
}

// OidcAudience returns the value of the "oidc_audience" field in the mutation.
func (m *UserMutation) OidcAudience() (r string, exists bool) {
	v := m.oidc_audience
	if v == nil {
		return
	}
	return *v, true
}

// OldOidcAudience returns the old "oidc_audience" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOidcAudience(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOidcAudience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOidcAudience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOidcAudience: %w", err)
	}
	return oldValue.OidcAudience, nil
}

// ClearOidcAudience clears the value of the "oidc_audience" field.
func (m *UserMutation) ClearOidcAudience() {
	m.oidc_audience = nil
	m.clearedFields[user.FieldOidcAudience] = struct{}{}
}

// OidcAudienceCleared returns if the "oidc_audience" field was cleared in this mutation.
func (m *UserMutation) OidcAudienceCleared() bool {
	_, ok := m.clearedFields[user.FieldOidcAudience]
	return ok
}

// ResetOidcAudience resets all changes to the "oidc_audience" field.
func (m *UserMutation) ResetOidcAudience() {
	m.oidc_audience = nil
	delete(m.clearedFields, user.FieldOidcAudience)
}

// SetOidcIssuedAt sets the "oidc_issued_at" field.
func (m *UserMutation) SetOidcIssuedAt(t time.Time) {
	m.oidc_issued_at = &t
}

// OidcIssuedAt returns the value of the "oidc_issued_at" field in the mutation.
func (m *UserMutation) OidcIssuedAt() (r time.Time, exists bool) {
	v := m.oidc_issued_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOidcIssuedAt returns the old "oidc_issued_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOidcIssuedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOidcIssuedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOidcIssuedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOidcIssuedAt: %w", err)
	}
	return oldValue.OidcIssuedAt, nil
}

// ClearOidcIssuedAt clears the value of the "oidc_issued_at" field.
func (m *UserMutation) ClearOidcIssuedAt() {
	m.oidc_issued_at = nil
	m.clearedFields[user.FieldOidcIssuedAt] = struct{}{}
}

// OidcIssuedAtCleared returns if the "oidc_issued_at" field was cleared in this mutation.
func (m *UserMutation) OidcIssuedAtCleared() bool {
	_, ok := m.clearedFields[user.FieldOidcIssuedAt]
	return ok
}

// ResetOidcIssuedAt resets all changes to the "oidc_issued_at" field.
func (m *UserMutation) ResetOidcIssuedAt() {
	m.oidc_issued_at = nil
	delete(m.clearedFields, user.FieldOidcIssuedAt)
}

// SetOidcExpiration sets the "oidc_expiration" field.
func (m *UserMutation) SetOidcExpiration(t time.Time) {
	m.oidc_expiration = &t
}

// OidcExpiration returns the value of the "oidc_expiration" field in the mutation.
func (m *UserMutation) OidcExpiration() (r time.Time, exists bool) {
	v := m.oidc_expiration
	if v == nil {
		return
	}
	return *v, true
}

// OldOidcExpiration returns the old "oidc_expiration" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOidcExpiration(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOidcExpiration is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOidcExpiration requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOidcExpiration: %w", err)
	}
	return oldValue.OidcExpiration, nil
}

// ClearOidcExpiration clears the value of the "oidc_expiration" field.
func (m *UserMutation) ClearOidcExpiration() {
	m.oidc_expiration = nil
	m.clearedFields[user.FieldOidcExpiration] = struct{}{}
}

// OidcExpirationCleared returns if the "oidc_expiration" field was cleared in this mutation.
func (m *UserMutation) OidcExpirationCleared() bool {
	_, ok := m.clearedFields[user.FieldOidcExpiration]
	return ok
}

// ResetOidcExpiration resets all changes to the "oidc_expiration" field.
func (m *UserMutation) ResetOidcExpiration() {
	m.oidc_expiration = nil
	delete(m.clearedFields, user.FieldOidcExpiration)
}

// SetOidcEmailVerified sets the "oidc_email_verified" field.
func (m *UserMutation) SetOidcEmailVerified(b bool) {
	m.oidc_email_verified = &b
}

// OidcEmailVerified returns the value of the "oidc_email_verified" field in the mutation.
func (m *UserMutation) OidcEmailVerified() (r bool, exists bool) {
	v := m.oidc_email_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldOidcEmailVerified returns the old "oidc_email_verified" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOidcEmailVerified(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOidcEmailVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOidcEmailVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOidcEmailVerified: %w", err)
	}
	return oldValue.OidcEmailVerified, nil
}

// ClearOidcEmailVerified clears the value of the "oidc_email_verified" field.
func (m *UserMutation) ClearOidcEmailVerified() {
	m.oidc_email_verified = nil
	m.clearedFields[user.FieldOidcEmailVerified] = struct{}{}
}

// OidcEmailVerifiedCleared returns if the "oidc_email_verified" field was cleared in this mutation.
func (m *UserMutation) OidcEmailVerifiedCleared() bool {
	_, ok := m.clearedFields[user.FieldOidcEmailVerified]
	return ok
}

// ResetOidcEmailVerified resets all changes to the "oidc_email_verified" field.
func (m *UserMutation) ResetOidcEmailVerified() {
	m.oidc_email_verified = nil
	delete(m.clearedFields, user.FieldOidcEmailVerified)
}

// SetOidcHostedDomain sets the "oidc_hosted_domain" field.
func (m *UserMutation) SetOidcHostedDomain(s string) {
	m.oidc_hosted_domain = &s
}

// OidcHostedDomain returns the value of the "oidc_hosted_domain" field in the mutation.
func (m *UserMutation) OidcHostedDomain() (r string, exists bool) {
	v := m.oidc_hosted_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldOidcHostedDomain returns the old "oidc_hosted_domain" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldOidcHostedDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOidcHostedDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOidcHostedDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOidcHostedDomain: %w", err)
	}
	return oldValue.OidcHostedDomain, nil
}

// ClearOidcHostedDomain clears the value of the "oidc_hosted_domain" field.
func (m *UserMutation) ClearOidcHostedDomain() {
	m.oidc_hosted_domain = nil
	m.clearedFields[user.FieldOidcHostedDomain] = struct{}{}
}

// OidcHostedDomainCleared returns if the "oidc_hosted_domain" field was cleared in this mutation.
func (m *UserMutation) OidcHostedDomainCleared() bool {
	_, ok := m.clearedFields[user.FieldOidcHostedDomain]
	return ok
}

// ResetOidcHostedDomain resets all changes to the "oidc_hosted_domain" field.
func (m *UserMutation) ResetOidcHostedDomain() {
	m.oidc_hosted_domain = nil
	delete(m.clearedFields, user.FieldOidcHostedDomain)
}

// SetPasswordResetToken sets the "password_reset_token" field.
func (m *UserMutation) SetPasswordResetToken(s string) {
	m.password_reset_token = &s
}

// PasswordResetToken returns the value of the "password_reset_token" field in the mutation.
func (m *UserMutation) PasswordResetToken() (r string, exists bool) {
	v := m.password_reset_token
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordResetToken returns the old "password_reset_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordResetToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordResetToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordResetToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordResetToken: %w", err)
	}
	return oldValue.PasswordResetToken, nil
}

// ClearPasswordResetToken clears the value of the "password_reset_token" field.
func (m *UserMutation) ClearPasswordResetToken() {
	m.password_reset_token = nil
	m.clearedFields[user.FieldPasswordResetToken] = struct{}{}
}

// PasswordResetTokenCleared returns if the "password_reset_token" field was cleared in this mutation.
func (m *UserMutation) PasswordResetTokenCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordResetToken]
	return ok
}

// ResetPasswordResetToken resets all changes to the "password_reset_token" field.
func (m *UserMutation) ResetPasswordResetToken() {
	m.password_reset_token = nil
	delete(m.clearedFields, user.FieldPasswordResetToken)
}

// SetPasswordResetExpires sets the "password_reset_expires" field.
func (m *UserMutation) SetPasswordResetExpires(t time.Time) {
	m.password_reset_expires = &t
}

// PasswordResetExpires returns the value of the "password_reset_expires" field in the mutation.
func (m *UserMutation) PasswordResetExpires() (r time.Time, exists bool) {
	v := m.password_reset_expires
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordResetExpires returns the old "password_reset_expires" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordResetExpires(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordResetExpires is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordResetExpires requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordResetExpires: %w", err)
	}
	return oldValue.PasswordResetExpires, nil
}

// ClearPasswordResetExpires clears the value of the "password_reset_expires" field.
func (m *UserMutation) ClearPasswordResetExpires() {
	m.password_reset_expires = nil
	m.clearedFields[user.FieldPasswordResetExpires] = struct{}{}
}

// PasswordResetExpiresCleared returns if the "password_reset_expires" field was cleared in this mutation.
func (m *UserMutation) PasswordResetExpiresCleared() bool {
	_, ok := m.clearedFields[user.FieldPasswordResetExpires]
	return ok
}

// ResetPasswordResetExpires resets all changes to the "password_reset_expires" field.
func (m *UserMutation) ResetPasswordResetExpires() {
	m.password_reset_expires = nil
	delete(m.clearedFields, user.FieldPasswordResetExpires)
}

// SetEmailVerificationToken sets the "email_verification_token" field.
func (m *UserMutation) SetEmailVerificationToken(s string) {
	m.email_verification_token = &s
}

// EmailVerificationToken returns the value of the "email_verification_token" field in the mutation.
func (m *UserMutation) EmailVerificationToken() (r string, exists bool) {
	v := m.email_verification_token
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerificationToken returns the old "email_verification_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerificationToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerificationToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerificationToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerificationToken: %w", err)
	}
	return oldValue.EmailVerificationToken, nil
}

// ClearEmailVerificationToken clears the value of the "email_verification_token" field.
func (m *UserMutation) ClearEmailVerificationToken() {
	m.email_verification_token = nil
	m.clearedFields[user.FieldEmailVerificationToken] = struct{}{}
}

// EmailVerificationTokenCleared returns if the "email_verification_token" field was cleared in this mutation.
func (m *UserMutation) EmailVerificationTokenCleared() bool {
	_, ok := m.clearedFields[user.FieldEmailVerificationToken]
	return ok
}

// ResetEmailVerificationToken resets all changes to the "email_verification_token" field.
func (m *UserMutation) ResetEmailVerificationToken() {
	m.email_verification_token = nil
	delete(m.clearedFields, user.FieldEmailVerificationToken)
}

// SetEmailVerificationExpires sets the "email_verification_expires" field.
func (m *UserMutation) SetEmailVerificationExpires(t time.Time) {
	m.email_verification_expires = &t
}

// EmailVerificationExpires returns the value of the "email_verification_expires" field in the mutation.
func (m *UserMutation) EmailVerificationExpires() (r time.Time, exists bool) {
	v := m.email_verification_expires
	if v == nil {
		return
	}
	return *v, true
}

// OldEmailVerificationExpires returns the old "email_verification_expires" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmailVerificationExpires(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmailVerificationExpires is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmailVerificationExpires requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmailVerificationExpires: %w", err)
	}
	return oldValue.EmailVerificationExpires, nil
}

// ClearEmailVerificationExpires clears the value of the "email_verification_expires" field.
func (m *UserMutation) ClearEmailVerificationExpires() {
	m.email_verification_expires = nil
	m.clearedFields[user.FieldEmailVerificationExpires] = struct{}{}
}

// EmailVerificationExpiresCleared returns if the "email_verification_expires" field was cleared in this mutation.
func (m *UserMutation) EmailVerificationExpiresCleared() bool {
	_, ok := m.clearedFields[user.FieldEmailVerificationExpires]
	return ok
}

// ResetEmailVerificationExpires resets all changes to the "email_verification_expires" field.
func (m *UserMutation) ResetEmailVerificationExpires() {
	m.email_verification_expires = nil
	delete(m.clearedFields, user.FieldEmailVerificationExpires)
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 25)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.full_name != nil {
		fields = append(fields, user.FieldFullName)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.auth_provider != nil {
		fields = append(fields, user.FieldAuthProvider)
	}
	if m.google_id != nil {
		fields = append(fields, user.FieldGoogleID)
	}
	if m.facebook_id != nil {
		fields = append(fields, user.FieldFacebookID)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.login_attempts != nil {
		fields = append(fields, user.FieldLoginAttempts)
	}
	if m.lock_until != nil {
		fields = append(fields, user.FieldLockUntil)
	}
	if m.is_active != nil {
		fields = append(fields, user.FieldIsActive)
	}
	if m.is_verified != nil {
		fields = append(fields, user.FieldIsVerified)
	}
	if m.oidc_issuer != nil {
		fields = append(fields, user.FieldOidcIssuer)
	}
	if m.oidc_subject != nil {
		fields = append(fields, user.FieldOidcSubject)
	}
	if m.oidc_audience != nil {
		fields = append(fields, user.FieldOidcAudience)
	}
	if m.oidc_issued_at != nil {
		fields = append(fields, user.FieldOidcIssuedAt)
	}
	if m.oidc_expiration != nil {
		fields = append(fields, user.FieldOidcExpiration)
	}
	if m.oidc_email_verified != nil {
		fields = append(fields, user.FieldOidcEmailVerified)
	}
	if m.oidc_hosted_domain != nil {
		fields = append(fields, user.FieldOidcHostedDomain)
	}
	if m.password_reset_token != nil {
		fields = append(fields, user.FieldPasswordResetToken)
	}
	if m.password_reset_expires != nil {
		fields = append(fields, user.FieldPasswordResetExpires)
	}
	if m.email_verification_token != nil {
		fields = append(fields, user.FieldEmailVerificationToken)
	}
	if m.email_verification_expires != nil {
		fields = append(fields, user.FieldEmailVerificationExpires)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldEmail:
		return m.Email()
	case user.FieldFullName:
		return m.FullName()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldAuthProvider:
		return m.AuthProvider()
	case user.FieldGoogleID:
		return m.GoogleID()
	case user.FieldFacebookID:
		return m.FacebookID()
	case user.FieldRole:
		return m.Role()
	case user.FieldLoginAttempts:
		return m.LoginAttempts()
	case user.FieldLockUntil:
		return m.LockUntil()
	case user.FieldIsActive:
		return m.IsActive()
	case user.FieldIsVerified:
		return m.IsVerified()
	case user.FieldOidcIssuer:
		return m.OidcIssuer()
	case user.FieldOidcSubject:
		return m.OidcSubject()
	case user.FieldOidcAudience:
		return m.OidcAudience()
	case user.FieldOidcIssuedAt:
		return m.OidcIssuedAt()
	case user.FieldOidcExpiration:
		return m.OidcExpiration()
	case user.FieldOidcEmailVerified:
		return m.OidcEmailVerified()
	case user.FieldOidcHostedDomain:
		return m.OidcHostedDomain()
	case user.FieldPasswordResetToken:
		return m.PasswordResetToken()
	case user.FieldPasswordResetExpires:
		return m.PasswordResetExpires()
	case user.FieldEmailVerificationToken:
		return m.EmailVerificationToken()
	case user.FieldEmailVerificationExpires:
		return m.EmailVerificationExpires()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldFullName:
		return m.OldFullName(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldAuthProvider:
		return m.OldAuthProvider(ctx)
	case user.FieldGoogleID:
		return m.OldGoogleID(ctx)
	case user.FieldFacebookID:
		return m.OldFacebookID(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldLoginAttempts:
		return m.OldLoginAttempts(ctx)
	case user.FieldLockUntil:
		return m.OldLockUntil(ctx)
	case user.FieldIsActive:
		return m.OldIsActive(ctx)
	case user.FieldIsVerified:
		return m.OldIsVerified(ctx)
	case user.FieldOidcIssuer:
		return m.OldOidcIssuer(ctx)
	case user.FieldOidcSubject:
		return m.OldOidcSubject(ctx)
	case user.FieldOidcAudience:
		return m.OldOidcAudience(ctx)
	case user.FieldOidcIssuedAt:
		return m.OldOidcIssuedAt(ctx)
	case user.FieldOidcExpiration:
		return m.OldOidcExpiration(ctx)
	case user.FieldOidcEmailVerified:
		return m.OldOidcEmailVerified(ctx)
	case user.FieldOidcHostedDomain:
		return m.OldOidcHostedDomain(ctx)
	case user.FieldPasswordResetToken:
		return m.OldPasswordResetToken(ctx)
	case user.FieldPasswordResetExpires:
		return m.OldPasswordResetExpires(ctx)
	case user.FieldEmailVerificationToken:
		return m.OldEmailVerificationToken(ctx)
	case user.FieldEmailVerificationExpires:
		return m.OldEmailVerificationExpires(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldFullName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFullName(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldAuthProvider:
		v, ok := value.(user.AuthProvider)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthProvider(v)
		return nil
	case user.FieldGoogleID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGoogleID(v)
		return nil
	case user.FieldFacebookID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFacebookID(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLoginAttempts(v)
		return nil
	case user.FieldLockUntil:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLockUntil(v)
		return nil
	case user.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case user.FieldIsVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsVerified(v)
		return nil
	case user.FieldOidcIssuer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOidcIssuer(v)
		return nil
	case user.FieldOidcSubject:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOidcSubject(v)
		return nil
	case user.FieldOidcAudience:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOidcAudience(v)
		return nil
	case user.FieldOidcIssuedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOidcIssuedAt(v)
		return nil
	case user.FieldOidcExpiration:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOidcExpiration(v)
		return nil
	case user.FieldOidcEmailVerified:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOidcEmailVerified(v)
		return nil
	case user.FieldOidcHostedDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOidcHostedDomain(v)
		return nil
	case user.FieldPasswordResetToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordResetToken(v)
		return nil
	case user.FieldPasswordResetExpires:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordResetExpires(v)
		return nil
	case user.FieldEmailVerificationToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerificationToken(v)
		return nil
	case user.FieldEmailVerificationExpires:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmailVerificationExpires(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addlogin_attempts != nil {
		fields = append(fields, user.FieldLoginAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldLoginAttempts:
		return m.AddedLoginAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldLoginAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLoginAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldPasswordHash) {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.FieldCleared(user.FieldGoogleID) {
		fields = append(fields, user.FieldGoogleID)
	}
	if m.FieldCleared(user.FieldFacebookID) {
		fields = append(fields, user.FieldFacebookID)
	}
	if m.FieldCleared(user.FieldLockUntil) {
		fields = append(fields, user.FieldLockUntil)
	}
	if m.FieldCleared(user.FieldOidcIssuer) {
		fields = append(fields, user.FieldOidcIssuer)
	}
	if m.FieldCleared(user.FieldOidcSubject) {
		fields = append(fields, user.FieldOidcSubject)
	}
	if m.FieldCleared(user.FieldOidcAudience) {
		fields = append(fields, user.FieldOidcAudience)
	}
	if m.FieldCleared(user.FieldOidcIssuedAt) {
		fields = append(fields, user.FieldOidcIssuedAt)
	}
	if m.FieldCleared(user.FieldOidcExpiration) {
		fields = append(fields, user.FieldOidcExpiration)
	}
	if m.FieldCleared(user.FieldOidcEmailVerified) {
		fields = append(fields, user.FieldOidcEmailVerified)
	}
	if m.FieldCleared(user.FieldOidcHostedDomain) {
		fields = append(fields, user.FieldOidcHostedDomain)
	}
	if m.FieldCleared(user.FieldPasswordResetToken) {
		fields = append(fields, user.FieldPasswordResetToken)
	}
	if m.FieldCleared(user.FieldPasswordResetExpires) {
		fields = append(fields, user.FieldPasswordResetExpires)
	}
	if m.FieldCleared(user.FieldEmailVerificationToken) {
		fields = append(fields, user.FieldEmailVerificationToken)
	}
	if m.FieldCleared(user.FieldEmailVerificationExpires) {
		fields = append(fields, user.FieldEmailVerificationExpires)
	}
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldPasswordHash:
		m.ClearPasswordHash()
		return nil
	case user.FieldGoogleID:
		m.ClearGoogleID()
		return nil
	case user.FieldFacebookID:
		m.ClearFacebookID()
		return nil
	case user.FieldLockUntil:
		m.ClearLockUntil()
		return nil
	case user.FieldOidcIssuer:
		m.ClearOidcIssuer()
		return nil
	case user.FieldOidcSubject:
		m.ClearOidcSubject()
		return nil
	case user.FieldOidcAudience:
		m.ClearOidcAudience()
		return nil
	case user.FieldOidcIssuedAt:
		m.ClearOidcIssuedAt()
		return nil
	case user.FieldOidcExpiration:
		m.ClearOidcExpiration()
		return nil
	case user.FieldOidcEmailVerified:
		m.ClearOidcEmailVerified()
		return nil
	case user.FieldOidcHostedDomain:
		m.ClearOidcHostedDomain()
		return nil
	case user.FieldPasswordResetToken:
		m.ClearPasswordResetToken()
		return nil
	case user.FieldPasswordResetExpires:
		m.ClearPasswordResetExpires()
		return nil
	case user.FieldEmailVerificationToken:
		m.ClearEmailVerificationToken()
		return nil
	case user.FieldEmailVerificationExpires:
		m.ClearEmailVerificationExpires()
		return nil
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldFullName:
		m.ResetFullName()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldAuthProvider:
		m.ResetAuthProvider()
		return nil
	case user.FieldGoogleID:
		m.ResetGoogleID()
		return nil
	case user.FieldFacebookID:
		m.ResetFacebookID()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldLoginAttempts:
		m.ResetLoginAttempts()
		return nil
	case user.FieldLockUntil:
		m.ResetLockUntil()
		return nil
	case user.FieldIsActive:
		m.ResetIsActive()
		return nil
	case user.FieldIsVerified:
		m.ResetIsVerified()
		return nil
	case user.FieldOidcIssuer:
		m.ResetOidcIssuer()
		return nil
	case user.FieldOidcSubject:
		m.ResetOidcSubject()
		return nil
	case user.FieldOidcAudience:
		m.ResetOidcAudience()
		return nil
	case user.FieldOidcIssuedAt:
		m.ResetOidcIssuedAt()
		return nil
	case user.FieldOidcExpiration:
		m.ResetOidcExpiration()
		return nil
	case user.FieldOidcEmailVerified:
		m.ResetOidcEmailVerified()
		return nil
	case user.FieldOidcHostedDomain:
		m.ResetOidcHostedDomain()
		return nil
	case user.FieldPasswordResetToken:
		m.ResetPasswordResetToken()
		return nil
	case user.FieldPasswordResetExpires:
		m.ResetPasswordResetExpires()
		return nil
	case user.FieldEmailVerificationToken:
		m.ResetEmailVerificationToken()
		return nil
	case user.FieldEmailVerificationExpires:
		m.ResetEmailVerificationExpires()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}
