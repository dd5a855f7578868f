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
	"modgoviya.io/modgoviya/ent/predicate"
	"modgoviya.io/modgoviya/ent/user"
)

// UserUpdate is the builder for updating User entities.
type UserUpdate struct {
	config
	hooks    []Hook
	mutation *UserMutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdate) Where(ps ...predicate.User) *UserUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdate) SetUpdatedAt(v time.Time) *UserUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdate) SetEmail(v string) *UserUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmail(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *UserUpdate) SetFullName(v string) *UserUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *UserUpdate) SetNillableFullName(v *string) *UserUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdate) SetPasswordHash(v string) *UserUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordHash(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserUpdate) ClearPasswordHash() *UserUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetAuthProvider sets the "auth_provider" field.
func (_u *UserUpdate) SetAuthProvider(v user.AuthProvider) *UserUpdate {
	_u.mutation.SetAuthProvider(v)
	return _u
}

// SetNillableAuthProvider sets the "auth_provider" field if the given value is not nil.
func (_u *UserUpdate) SetNillableAuthProvider(v *user.AuthProvider) *UserUpdate {
	if v != nil {
		_u.SetAuthProvider(*v)
	}
	return _u
}

// SetGoogleID sets the "google_id" field.
func (_u *UserUpdate) SetGoogleID(v string) *UserUpdate {
	_u.mutation.SetGoogleID(v)
	return _u
}

// SetNillableGoogleID sets the "google_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableGoogleID(v *string) *UserUpdate {
	if v != nil {
		_u.SetGoogleID(*v)
	}
	return _u
}

// ClearGoogleID clears the value of the "google_id" field.
func (_u *UserUpdate) ClearGoogleID() *UserUpdate {
	_u.mutation.ClearGoogleID()
	return _u
}

// SetFacebookID sets the "facebook_id" field.
func (_u *UserUpdate) SetFacebookID(v string) *UserUpdate {
	_u.mutation.SetFacebookID(v)
	return _u
}

// SetNillableFacebookID sets the "facebook_id" field if the given value is not nil.
func (_u *UserUpdate) SetNillableFacebookID(v *string) *UserUpdate {
	if v != nil {
		_u.SetFacebookID(*v)
	}
	return _u
}

// ClearFacebookID clears the value of the "facebook_id" field.
func (_u *UserUpdate) ClearFacebookID() *UserUpdate {
	_u.mutation.ClearFacebookID()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdate) SetRole(v user.Role) *UserUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdate) SetNillableRole(v *user.Role) *UserUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetLoginAttempts sets the "login_attempts" field.
func (_u *UserUpdate) SetLoginAttempts(v int) *UserUpdate {
	_u.mutation.ResetLoginAttempts()
	_u.mutation.SetLoginAttempts(v)
	return _u
}

// SetNillableLoginAttempts sets the "login_attempts" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLoginAttempts(v *int) *UserUpdate {
	if v != nil {
		_u.SetLoginAttempts(*v)
	}
	return _u
}

// AddLoginAttempts adds value to the "login_attempts" field.
func (_u *UserUpdate) AddLoginAttempts(v int) *UserUpdate {
	_u.mutation.AddLoginAttempts(v)
	return _u
}

// SetLockUntil sets the "lock_until" field.
func (_u *UserUpdate) SetLockUntil(v time.Time) *UserUpdate {
	_u.mutation.SetLockUntil(v)
	return _u
}

// SetNillableLockUntil sets the "lock_until" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLockUntil(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLockUntil(*v)
	}
	return _u
}

// ClearLockUntil clears the value of the "lock_until" field.
func (_u *UserUpdate) ClearLockUntil() *UserUpdate {
	_u.mutation.ClearLockUntil()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UserUpdate) SetIsActive(v bool) *UserUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsActive(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *UserUpdate) SetIsVerified(v bool) *UserUpdate {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillableIsVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetOidcIssuer sets the "oidc_issuer" field.
func (_u *UserUpdate) SetOidcIssuer(v string) *UserUpdate {
	_u.mutation.SetOidcIssuer(v)
	return _u
}

// SetNillableOidcIssuer sets the "oidc_issuer" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOidcIssuer(v *string) *UserUpdate {
	if v != nil {
		_u.SetOidcIssuer(*v)
	}
	return _u
}

// ClearOidcIssuer clears the value of the "oidc_issuer" field.
func (_u *UserUpdate) ClearOidcIssuer() *UserUpdate {
	_u.mutation.ClearOidcIssuer()
	return _u
}

// SetOidcSubject sets the "oidc_subject" field.
func (_u *UserUpdate) SetOidcSubject(v string) *UserUpdate {
	_u.mutation.SetOidcSubject(v)
	return _u
}

// SetNillableOidcSubject sets the "oidc_subject" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOidcSubject(v *string) *UserUpdate {
	if v != nil {
		_u.SetOidcSubject(*v)
	}
	return _u
}

// ClearOidcSubject clears the value of the "oidc_subject" field.
func (_u *UserUpdate) ClearOidcSubject() *UserUpdate {
	_u.mutation.ClearOidcSubject()
	return _u
}

// SetOidcAudience sets the "oidc_audience" field.
func (_u *UserUpdate) SetOidcAudience(v string) *UserUpdate {
	_u.mutation.SetOidcAudience(v)
	return _u
}

// SetNillableOidcAudience sets the "oidc_audience" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOidcAudience(v *string) *UserUpdate {
	if v != nil {
		_u.SetOidcAudience(*v)
	}
	return _u
}

// ClearOidcAudience clears the value of the "oidc_audience" field.
func (_u *UserUpdate) ClearOidcAudience() *UserUpdate {
	_u.mutation.ClearOidcAudience()
	return _u
}

// SetOidcIssuedAt sets the "oidc_issued_at" field.
func (_u *UserUpdate) SetOidcIssuedAt(v time.Time) *UserUpdate {
	_u.mutation.SetOidcIssuedAt(v)
	return _u
}

// SetNillableOidcIssuedAt sets the "oidc_issued_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOidcIssuedAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetOidcIssuedAt(*v)
	}
	return _u
}

// ClearOidcIssuedAt clears the value of the "oidc_issued_at" field.
func (_u *UserUpdate) ClearOidcIssuedAt() *UserUpdate {
	_u.mutation.ClearOidcIssuedAt()
	return _u
}

// SetOidcExpiration sets the "oidc_expiration" field.
func (_u *UserUpdate) SetOidcExpiration(v time.Time) *UserUpdate {
	_u.mutation.SetOidcExpiration(v)
	return _u
}

// SetNillableOidcExpiration sets the "oidc_expiration" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOidcExpiration(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetOidcExpiration(*v)
	}
	return _u
}

// ClearOidcExpiration clears the value of the "oidc_expiration" field.
func (_u *UserUpdate) ClearOidcExpiration() *UserUpdate {
	_u.mutation.ClearOidcExpiration()
	return _u
}

// SetOidcEmailVerified sets the "oidc_email_verified" field.
func (_u *UserUpdate) SetOidcEmailVerified(v bool) *UserUpdate {
	_u.mutation.SetOidcEmailVerified(v)
	return _u
}

// SetNillableOidcEmailVerified sets the "oidc_email_verified" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOidcEmailVerified(v *bool) *UserUpdate {
	if v != nil {
		_u.SetOidcEmailVerified(*v)
	}
	return _u
}

// ClearOidcEmailVerified clears the value of the "oidc_email_verified" field.
func (_u *UserUpdate) ClearOidcEmailVerified() *UserUpdate {
	_u.mutation.ClearOidcEmailVerified()
	return _u
}

// SetOidcHostedDomain sets the "oidc_hosted_domain" field.
func (_u *UserUpdate) SetOidcHostedDomain(v string) *UserUpdate {
	_u.mutation.SetOidcHostedDomain(v)
	return _u
}

// SetNillableOidcHostedDomain sets the "oidc_hosted_domain" field if the given value is not nil.
func (_u *UserUpdate) SetNillableOidcHostedDomain(v *string) *UserUpdate {
	if v != nil {
		_u.SetOidcHostedDomain(*v)
	}
	return _u
}

// ClearOidcHostedDomain clears the value of the "oidc_hosted_domain" field.
func (_u *UserUpdate) ClearOidcHostedDomain() *UserUpdate {
	_u.mutation.ClearOidcHostedDomain()
	return _u
}

// SetPasswordResetToken sets the "password_reset_token" field.
func (_u *UserUpdate) SetPasswordResetToken(v string) *UserUpdate {
	_u.mutation.SetPasswordResetToken(v)
	return _u
}

// SetNillablePasswordResetToken sets the "password_reset_token" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordResetToken(v *string) *UserUpdate {
	if v != nil {
		_u.SetPasswordResetToken(*v)
	}
	return _u
}

// ClearPasswordResetToken clears the value of the "password_reset_token" field.
func (_u *UserUpdate) ClearPasswordResetToken() *UserUpdate {
	_u.mutation.ClearPasswordResetToken()
	return _u
}

// SetPasswordResetExpires sets the "password_reset_expires" field.
func (_u *UserUpdate) SetPasswordResetExpires(v time.Time) *UserUpdate {
	_u.mutation.SetPasswordResetExpires(v)
	return _u
}

// SetNillablePasswordResetExpires sets the "password_reset_expires" field if the given value is not nil.
func (_u *UserUpdate) SetNillablePasswordResetExpires(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetPasswordResetExpires(*v)
	}
	return _u
}

// ClearPasswordResetExpires clears the value of the "password_reset_expires" field.
func (_u *UserUpdate) ClearPasswordResetExpires() *UserUpdate {
	_u.mutation.ClearPasswordResetExpires()
	return _u
}

// SetEmailVerificationToken sets the "email_verification_token" field.
func (_u *UserUpdate) SetEmailVerificationToken(v string) *UserUpdate {
	_u.mutation.SetEmailVerificationToken(v)
	return _u
}

// SetNillableEmailVerificationToken sets the "email_verification_token" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmailVerificationToken(v *string) *UserUpdate {
	if v != nil {
		_u.SetEmailVerificationToken(*v)
	}
	return _u
}

// ClearEmailVerificationToken clears the value of the "email_verification_token" field.
func (_u *UserUpdate) ClearEmailVerificationToken() *UserUpdate {
	_u.mutation.ClearEmailVerificationToken()
	return _u
}

// SetEmailVerificationExpires sets the "email_verification_expires" field.
func (_u *UserUpdate) SetEmailVerificationExpires(v time.Time) *UserUpdate {
	_u.mutation.SetEmailVerificationExpires(v)
	return _u
}

// SetNillableEmailVerificationExpires sets the "email_verification_expires" field if the given value is not nil.
func (_u *UserUpdate) SetNillableEmailVerificationExpires(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetEmailVerificationExpires(*v)
	}
	return _u
}

// ClearEmailVerificationExpires clears the value of the "email_verification_expires" field.
func (_u *UserUpdate) ClearEmailVerificationExpires() *UserUpdate {
	_u.mutation.ClearEmailVerificationExpires()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdate) SetLastLoginAt(v time.Time) *UserUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdate) SetNillableLastLoginAt(v *time.Time) *UserUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdate) ClearLastLoginAt() *UserUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdate) Mutation() *UserMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UserUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UserUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdate) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := user.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "User.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthProvider(); ok {
		if err := user.AuthProviderValidator(v); err != nil {
			return &ValidationError{Name: "auth_provider", err: fmt.Errorf(`ent: validator failed for field "User.auth_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LoginAttempts(); ok {
		if err := user.LoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "login_attempts", err: fmt.Errorf(`ent: validator failed for field "User.login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(user.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(user.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.AuthProvider(); ok {
		_spec.SetField(user.FieldAuthProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GoogleID(); ok {
		_spec.SetField(user.FieldGoogleID, field.TypeString, value)
	}
	if _u.mutation.GoogleIDCleared() {
		_spec.ClearField(user.FieldGoogleID, field.TypeString)
	}
	if value, ok := _u.mutation.FacebookID(); ok {
		_spec.SetField(user.FieldFacebookID, field.TypeString, value)
	}
	if _u.mutation.FacebookIDCleared() {
		_spec.ClearField(user.FieldFacebookID, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LoginAttempts(); ok {
		_spec.SetField(user.FieldLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoginAttempts(); ok {
		_spec.AddField(user.FieldLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockUntil(); ok {
		_spec.SetField(user.FieldLockUntil, field.TypeTime, value)
	}
	if _u.mutation.LockUntilCleared() {
		_spec.ClearField(user.FieldLockUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(user.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(user.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OidcIssuer(); ok {
		_spec.SetField(user.FieldOidcIssuer, field.TypeString, value)
	}
	if _u.mutation.OidcIssuerCleared() {
		_spec.ClearField(user.FieldOidcIssuer, field.TypeString)
	}
	if value, ok := _u.mutation.OidcSubject(); ok {
		_spec.SetField(user.FieldOidcSubject, field.TypeString, value)
	}
	if _u.mutation.OidcSubjectCleared() {
		_spec.ClearField(user.FieldOidcSubject, field.TypeString)
	}
	if value, ok := _u.mutation.OidcAudience(); ok {
		_spec.SetField(user.FieldOidcAudience, field.TypeString, value)
	}
	if _u.mutation.OidcAudienceCleared() {
		_spec.ClearField(user.FieldOidcAudience, field.TypeString)
	}
	if value, ok := _u.mutation.OidcIssuedAt(); ok {
		_spec.SetField(user.FieldOidcIssuedAt, field.TypeTime, value)
	}
	if _u.mutation.OidcIssuedAtCleared() {
		_spec.ClearField(user.FieldOidcIssuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OidcExpiration(); ok {
		_spec.SetField(user.FieldOidcExpiration, field.TypeTime, value)
	}
	if _u.mutation.OidcExpirationCleared() {
		_spec.ClearField(user.FieldOidcExpiration, field.TypeTime)
	}
	if value, ok := _u.mutation.OidcEmailVerified(); ok {
		_spec.SetField(user.FieldOidcEmailVerified, field.TypeBool, value)
	}
	if _u.mutation.OidcEmailVerifiedCleared() {
		_spec.ClearField(user.FieldOidcEmailVerified, field.TypeBool)
	}
	if value, ok := _u.mutation.OidcHostedDomain(); ok {
		_spec.SetField(user.FieldOidcHostedDomain, field.TypeString, value)
	}
	if _u.mutation.OidcHostedDomainCleared() {
		_spec.ClearField(user.FieldOidcHostedDomain, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordResetToken(); ok {
		_spec.SetField(user.FieldPasswordResetToken, field.TypeString, value)
	}
	if _u.mutation.PasswordResetTokenCleared() {
		_spec.ClearField(user.FieldPasswordResetToken, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordResetExpires(); ok {
		_spec.SetField(user.FieldPasswordResetExpires, field.TypeTime, value)
	}
	if _u.mutation.PasswordResetExpiresCleared() {
		_spec.ClearField(user.FieldPasswordResetExpires, field.TypeTime)
	}
	if value, ok := _u.mutation.EmailVerificationToken(); ok {
		_spec.SetField(user.FieldEmailVerificationToken, field.TypeString, value)
	}
	if _u.mutation.EmailVerificationTokenCleared() {
		_spec.ClearField(user.FieldEmailVerificationToken, field.TypeString)
	}
	if value, ok := _u.mutation.EmailVerificationExpires(); ok {
		_spec.SetField(user.FieldEmailVerificationExpires, field.TypeTime, value)
	}
	if _u.mutation.EmailVerificationExpiresCleared() {
		_spec.ClearField(user.FieldEmailVerificationExpires, field.TypeTime)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UserUpdateOne is the builder for updating a single User entity.
type UserUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UserMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UserUpdateOne) SetUpdatedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetEmail sets the "email" field.
func (_u *UserUpdateOne) SetEmail(v string) *UserUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmail(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *UserUpdateOne) SetFullName(v string) *UserUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableFullName(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UserUpdateOne) SetPasswordHash(v string) *UserUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordHash(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UserUpdateOne) ClearPasswordHash() *UserUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetAuthProvider sets the "auth_provider" field.
func (_u *UserUpdateOne) SetAuthProvider(v user.AuthProvider) *UserUpdateOne {
	_u.mutation.SetAuthProvider(v)
	return _u
}

// SetNillableAuthProvider sets the "auth_provider" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableAuthProvider(v *user.AuthProvider) *UserUpdateOne {
	if v != nil {
		_u.SetAuthProvider(*v)
	}
	return _u
}

// SetGoogleID sets the "google_id" field.
func (_u *UserUpdateOne) SetGoogleID(v string) *UserUpdateOne {
	_u.mutation.SetGoogleID(v)
	return _u
}

// SetNillableGoogleID sets the "google_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableGoogleID(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetGoogleID(*v)
	}
	return _u
}

// ClearGoogleID clears the value of the "google_id" field.
func (_u *UserUpdateOne) ClearGoogleID() *UserUpdateOne {
	_u.mutation.ClearGoogleID()
	return _u
}

// SetFacebookID sets the "facebook_id" field.
func (_u *UserUpdateOne) SetFacebookID(v string) *UserUpdateOne {
	_u.mutation.SetFacebookID(v)
	return _u
}

// SetNillableFacebookID sets the "facebook_id" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableFacebookID(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetFacebookID(*v)
	}
	return _u
}

// ClearFacebookID clears the value of the "facebook_id" field.
func (_u *UserUpdateOne) ClearFacebookID() *UserUpdateOne {
	_u.mutation.ClearFacebookID()
	return _u
}

// SetRole sets the "role" field.
func (_u *UserUpdateOne) SetRole(v user.Role) *UserUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableRole(v *user.Role) *UserUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetLoginAttempts sets the "login_attempts" field.
func (_u *UserUpdateOne) SetLoginAttempts(v int) *UserUpdateOne {
	_u.mutation.ResetLoginAttempts()
	_u.mutation.SetLoginAttempts(v)
	return _u
}

// SetNillableLoginAttempts sets the "login_attempts" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLoginAttempts(v *int) *UserUpdateOne {
	if v != nil {
		_u.SetLoginAttempts(*v)
	}
	return _u
}

// AddLoginAttempts adds value to the "login_attempts" field.
func (_u *UserUpdateOne) AddLoginAttempts(v int) *UserUpdateOne {
	_u.mutation.AddLoginAttempts(v)
	return _u
}

// SetLockUntil sets the "lock_until" field.
func (_u *UserUpdateOne) SetLockUntil(v time.Time) *UserUpdateOne {
	_u.mutation.SetLockUntil(v)
	return _u
}

// SetNillableLockUntil sets the "lock_until" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLockUntil(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLockUntil(*v)
	}
	return _u
}

// ClearLockUntil clears the value of the "lock_until" field.
func (_u *UserUpdateOne) ClearLockUntil() *UserUpdateOne {
	_u.mutation.ClearLockUntil()
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *UserUpdateOne) SetIsActive(v bool) *UserUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsActive(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetIsVerified sets the "is_verified" field.
func (_u *UserUpdateOne) SetIsVerified(v bool) *UserUpdateOne {
	_u.mutation.SetIsVerified(v)
	return _u
}

// SetNillableIsVerified sets the "is_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableIsVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetIsVerified(*v)
	}
	return _u
}

// SetOidcIssuer sets the "oidc_issuer" field.
func (_u *UserUpdateOne) SetOidcIssuer(v string) *UserUpdateOne {
	_u.mutation.SetOidcIssuer(v)
	return _u
}

// SetNillableOidcIssuer sets the "oidc_issuer" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOidcIssuer(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetOidcIssuer(*v)
	}
	return _u
}

// ClearOidcIssuer clears the value of the "oidc_issuer" field.
func (_u *UserUpdateOne) ClearOidcIssuer() *UserUpdateOne {
	_u.mutation.ClearOidcIssuer()
	return _u
}

// SetOidcSubject sets the "oidc_subject" field.
func (_u *UserUpdateOne) SetOidcSubject(v string) *UserUpdateOne {
	_u.mutation.SetOidcSubject(v)
	return _u
}

// SetNillableOidcSubject sets the "oidc_subject" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOidcSubject(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetOidcSubject(*v)
	}
	return _u
}

// ClearOidcSubject clears the value of the "oidc_subject" field.
func (_u *UserUpdateOne) ClearOidcSubject() *UserUpdateOne {
	_u.mutation.ClearOidcSubject()
	return _u
}

// SetOidcAudience sets the "oidc_audience" field.
func (_u *UserUpdateOne) SetOidcAudience(v string) *UserUpdateOne {
	_u.mutation.SetOidcAudience(v)
	return _u
}

// SetNillableOidcAudience sets the "oidc_audience" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOidcAudience(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetOidcAudience(*v)
	}
	return _u
}

// ClearOidcAudience clears the value of the "oidc_audience" field.
func (_u *UserUpdateOne) ClearOidcAudience() *UserUpdateOne {
	_u.mutation.ClearOidcAudience()
	return _u
}

// SetOidcIssuedAt sets the "oidc_issued_at" field.
func (_u *UserUpdateOne) SetOidcIssuedAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetOidcIssuedAt(v)
	return _u
}

// SetNillableOidcIssuedAt sets the "oidc_issued_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOidcIssuedAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetOidcIssuedAt(*v)
	}
	return _u
}

// ClearOidcIssuedAt clears the value of the "oidc_issued_at" field.
func (_u *UserUpdateOne) ClearOidcIssuedAt() *UserUpdateOne {
	_u.mutation.ClearOidcIssuedAt()
	return _u
}

// SetOidcExpiration sets the "oidc_expiration" field.
func (_u *UserUpdateOne) SetOidcExpiration(v time.Time) *UserUpdateOne {
	_u.mutation.SetOidcExpiration(v)
	return _u
}

// SetNillableOidcExpiration sets the "oidc_expiration" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOidcExpiration(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetOidcExpiration(*v)
	}
	return _u
}

// ClearOidcExpiration clears the value of the "oidc_expiration" field.
func (_u *UserUpdateOne) ClearOidcExpiration() *UserUpdateOne {
	_u.mutation.ClearOidcExpiration()
	return _u
}

// SetOidcEmailVerified sets the "oidc_email_verified" field.
func (_u *UserUpdateOne) SetOidcEmailVerified(v bool) *UserUpdateOne {
	_u.mutation.SetOidcEmailVerified(v)
	return _u
}

// SetNillableOidcEmailVerified sets the "oidc_email_verified" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOidcEmailVerified(v *bool) *UserUpdateOne {
	if v != nil {
		_u.SetOidcEmailVerified(*v)
	}
	return _u
}

// ClearOidcEmailVerified clears the value of the "oidc_email_verified" field.
func (_u *UserUpdateOne) ClearOidcEmailVerified() *UserUpdateOne {
	_u.mutation.ClearOidcEmailVerified()
	return _u
}

// SetOidcHostedDomain sets the "oidc_hosted_domain" field.
func (_u *UserUpdateOne) SetOidcHostedDomain(v string) *UserUpdateOne {
	_u.mutation.SetOidcHostedDomain(v)
	return _u
}

// SetNillableOidcHostedDomain sets the "oidc_hosted_domain" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableOidcHostedDomain(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetOidcHostedDomain(*v)
	}
	return _u
}

// ClearOidcHostedDomain clears the value of the "oidc_hosted_domain" field.
func (_u *UserUpdateOne) ClearOidcHostedDomain() *UserUpdateOne {
	_u.mutation.ClearOidcHostedDomain()
	return _u
}

// SetPasswordResetToken sets the "password_reset_token" field.
func (_u *UserUpdateOne) SetPasswordResetToken(v string) *UserUpdateOne {
	_u.mutation.SetPasswordResetToken(v)
	return _u
}

// SetNillablePasswordResetToken sets the "password_reset_token" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordResetToken(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordResetToken(*v)
	}
	return _u
}

// ClearPasswordResetToken clears the value of the "password_reset_token" field.
func (_u *UserUpdateOne) ClearPasswordResetToken() *UserUpdateOne {
	_u.mutation.ClearPasswordResetToken()
	return _u
}

// SetPasswordResetExpires sets the "password_reset_expires" field.
func (_u *UserUpdateOne) SetPasswordResetExpires(v time.Time) *UserUpdateOne {
	_u.mutation.SetPasswordResetExpires(v)
	return _u
}

// SetNillablePasswordResetExpires sets the "password_reset_expires" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillablePasswordResetExpires(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetPasswordResetExpires(*v)
	}
	return _u
}

// ClearPasswordResetExpires clears the value of the "password_reset_expires" field.
func (_u *UserUpdateOne) ClearPasswordResetExpires() *UserUpdateOne {
	_u.mutation.ClearPasswordResetExpires()
	return _u
}

// SetEmailVerificationToken sets the "email_verification_token" field.
func (_u *UserUpdateOne) SetEmailVerificationToken(v string) *UserUpdateOne {
	_u.mutation.SetEmailVerificationToken(v)
	return _u
}

// SetNillableEmailVerificationToken sets the "email_verification_token" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmailVerificationToken(v *string) *UserUpdateOne {
	if v != nil {
		_u.SetEmailVerificationToken(*v)
	}
	return _u
}

// ClearEmailVerificationToken clears the value of the "email_verification_token" field.
func (_u *UserUpdateOne) ClearEmailVerificationToken() *UserUpdateOne {
	_u.mutation.ClearEmailVerificationToken()
	return _u
}

// SetEmailVerificationExpires sets the "email_verification_expires" field.
func (_u *UserUpdateOne) SetEmailVerificationExpires(v time.Time) *UserUpdateOne {
	_u.mutation.SetEmailVerificationExpires(v)
	return _u
}

// SetNillableEmailVerificationExpires sets the "email_verification_expires" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableEmailVerificationExpires(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetEmailVerificationExpires(*v)
	}
	return _u
}

// ClearEmailVerificationExpires clears the value of the "email_verification_expires" field.
func (_u *UserUpdateOne) ClearEmailVerificationExpires() *UserUpdateOne {
	_u.mutation.ClearEmailVerificationExpires()
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UserUpdateOne) SetLastLoginAt(v time.Time) *UserUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UserUpdateOne) SetNillableLastLoginAt(v *time.Time) *UserUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UserUpdateOne) ClearLastLoginAt() *UserUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// Mutation returns the UserMutation object of the builder.
func (_u *UserUpdateOne) Mutation() *UserMutation {
	return _u.mutation
}

// Where appends a list predicates to the UserUpdate builder.
func (_u *UserUpdateOne) Where(ps ...predicate.User) *UserUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UserUpdateOne) Select(field string, fields ...string) *UserUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated User entity.
func (_u *UserUpdateOne) Save(ctx context.Context) (*User, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UserUpdateOne) SaveX(ctx context.Context) *User {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UserUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UserUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UserUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := user.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UserUpdateOne) check() error {
	if v, ok := _u.mutation.Email(); ok {
		if err := user.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "User.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FullName(); ok {
		if err := user.FullNameValidator(v); err != nil {
			return &ValidationError{Name: "full_name", err: fmt.Errorf(`ent: validator failed for field "User.full_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AuthProvider(); ok {
		if err := user.AuthProviderValidator(v); err != nil {
			return &ValidationError{Name: "auth_provider", err: fmt.Errorf(`ent: validator failed for field "User.auth_provider": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := user.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "User.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LoginAttempts(); ok {
		if err := user.LoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "login_attempts", err: fmt.Errorf(`ent: validator failed for field "User.login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UserUpdateOne) sqlSave(ctx context.Context) (_node *User, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(user.Table, user.Columns, sqlgraph.NewFieldSpec(user.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "User.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, user.FieldID)
		for _, f := range fields {
			if !user.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != user.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(user.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(user.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(user.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(user.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(user.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.AuthProvider(); ok {
		_spec.SetField(user.FieldAuthProvider, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GoogleID(); ok {
		_spec.SetField(user.FieldGoogleID, field.TypeString, value)
	}
	if _u.mutation.GoogleIDCleared() {
		_spec.ClearField(user.FieldGoogleID, field.TypeString)
	}
	if value, ok := _u.mutation.FacebookID(); ok {
		_spec.SetField(user.FieldFacebookID, field.TypeString, value)
	}
	if _u.mutation.FacebookIDCleared() {
		_spec.ClearField(user.FieldFacebookID, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(user.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LoginAttempts(); ok {
		_spec.SetField(user.FieldLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLoginAttempts(); ok {
		_spec.AddField(user.FieldLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockUntil(); ok {
		_spec.SetField(user.FieldLockUntil, field.TypeTime, value)
	}
	if _u.mutation.LockUntilCleared() {
		_spec.ClearField(user.FieldLockUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(user.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IsVerified(); ok {
		_spec.SetField(user.FieldIsVerified, field.TypeBool, value)
	}
	if value, ok := _u.mutation.OidcIssuer(); ok {
		_spec.SetField(user.FieldOidcIssuer, field.TypeString, value)
	}
	if _u.mutation.OidcIssuerCleared() {
		_spec.ClearField(user.FieldOidcIssuer, field.TypeString)
	}
	if value, ok := _u.mutation.OidcSubject(); ok {
		_spec.SetField(user.FieldOidcSubject, field.TypeString, value)
	}
	if _u.mutation.OidcSubjectCleared() {
		_spec.ClearField(user.FieldOidcSubject, field.TypeString)
	}
	if value, ok := _u.mutation.OidcAudience(); ok {
		_spec.SetField(user.FieldOidcAudience, field.TypeString, value)
	}
	if _u.mutation.OidcAudienceCleared() {
		_spec.ClearField(user.FieldOidcAudience, field.TypeString)
	}
	if value, ok := _u.mutation.OidcIssuedAt(); ok {
		_spec.SetField(user.FieldOidcIssuedAt, field.TypeTime, value)
	}
	if _u.mutation.OidcIssuedAtCleared() {
		_spec.ClearField(user.FieldOidcIssuedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.OidcExpiration(); ok {
		_spec.SetField(user.FieldOidcExpiration, field.TypeTime, value)
	}
	if _u.mutation.OidcExpirationCleared() {
		_spec.ClearField(user.FieldOidcExpiration, field.TypeTime)
	}
	if value, ok := _u.mutation.OidcEmailVerified(); ok {
		_spec.SetField(user.FieldOidcEmailVerified, field.TypeBool, value)
	}
	if _u.mutation.OidcEmailVerifiedCleared() {
		_spec.ClearField(user.FieldOidcEmailVerified, field.TypeBool)
	}
	if value, ok := _u.mutation.OidcHostedDomain(); ok {
		_spec.SetField(user.FieldOidcHostedDomain, field.TypeString, value)
	}
	if _u.mutation.OidcHostedDomainCleared() {
		_spec.ClearField(user.FieldOidcHostedDomain, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordResetToken(); ok {
		_spec.SetField(user.FieldPasswordResetToken, field.TypeString, value)
	}
	if _u.mutation.PasswordResetTokenCleared() {
		_spec.ClearField(user.FieldPasswordResetToken, field.TypeString)
	}
	if value, ok := _u.mutation.PasswordResetExpires(); ok {
		_spec.SetField(user.FieldPasswordResetExpires, field.TypeTime, value)
	}
	if _u.mutation.PasswordResetExpiresCleared() {
		_spec.ClearField(user.FieldPasswordResetExpires, field.TypeTime)
	}
	if value, ok := _u.mutation.EmailVerificationToken(); ok {
		_spec.SetField(user.FieldEmailVerificationToken, field.TypeString, value)
	}
	if _u.mutation.EmailVerificationTokenCleared() {
		_spec.ClearField(user.FieldEmailVerificationToken, field.TypeString)
	}
	if value, ok := _u.mutation.EmailVerificationExpires(); ok {
		_spec.SetField(user.FieldEmailVerificationExpires, field.TypeTime, value)
	}
	if _u.mutation.EmailVerificationExpiresCleared() {
		_spec.ClearField(user.FieldEmailVerificationExpires, field.TypeTime)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(user.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(user.FieldLastLoginAt, field.TypeTime)
	}
	_node = &User{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{user.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
