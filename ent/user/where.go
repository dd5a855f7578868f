// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"modgoviya.io/modgoviya/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFullName, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// GoogleID applies equality check predicate on the "google_id" field. It's identical to GoogleIDEQ.
func GoogleID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldGoogleID, v))
}

// FacebookID applies equality check predicate on the "facebook_id" field. It's identical to FacebookIDEQ.
func FacebookID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFacebookID, v))
}

// LoginAttempts applies equality check predicate on the "login_attempts" field. It's identical to LoginAttemptsEQ.
func LoginAttempts(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLoginAttempts, v))
}

// LockUntil applies equality check predicate on the "lock_until" field. It's identical to LockUntilEQ.
func LockUntil(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLockUntil, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsActive, v))
}

// IsVerified applies equality check predicate on the "is_verified" field. It's identical to IsVerifiedEQ.
func IsVerified(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsVerified, v))
}

// OidcIssuer applies equality check predicate on the "oidc_issuer" field. It's identical to OidcIssuerEQ.
func OidcIssuer(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcIssuer, v))
}

// OidcSubject applies equality check predicate on the "oidc_subject" field. It's identical to OidcSubjectEQ.
func OidcSubject(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcSubject, v))
}

// OidcAudience applies equality check predicate on the "oidc_audience" field. It's identical to OidcAudienceEQ.
func OidcAudience(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcAudience, v))
}

// OidcIssuedAt applies equality check predicate on the "oidc_issued_at" field. It's identical to OidcIssuedAtEQ.
func OidcIssuedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcIssuedAt, v))
}

// OidcExpiration applies equality check predicate on the "oidc_expiration" field. It's identical to OidcExpirationEQ.
func OidcExpiration(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcExpiration, v))
}

// OidcEmailVerified applies equality check predicate on the "oidc_email_verified" field. It's identical to OidcEmailVerifiedEQ.
func OidcEmailVerified(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcEmailVerified, v))
}

// OidcHostedDomain applies equality check predicate on the "oidc_hosted_domain" field. It's identical to OidcHostedDomainEQ.
func OidcHostedDomain(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcHostedDomain, v))
}

// PasswordResetToken applies equality check predicate on the "password_reset_token" field. It's identical to PasswordResetTokenEQ.
func PasswordResetToken(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordResetToken, v))
}

// PasswordResetExpires applies equality check predicate on the "password_reset_expires" field. It's identical to PasswordResetExpiresEQ.
func PasswordResetExpires(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordResetExpires, v))
}

// EmailVerificationToken applies equality check predicate on the "email_verification_token" field. It's identical to EmailVerificationTokenEQ.
func EmailVerificationToken(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationExpires applies equality check predicate on the "email_verification_expires" field. It's identical to EmailVerificationExpiresEQ.
func EmailVerificationExpires(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationExpires, v))
}

// LastLoginAt applies equality check predicate on the "last_login_at" field. It's identical to LastLoginAtEQ.
func LastLoginAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmail, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldFullName, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashIsNil applies the IsNil predicate on the "password_hash" field.
func PasswordHashIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPasswordHash))
}

// PasswordHashNotNil applies the NotNil predicate on the "password_hash" field.
func PasswordHashNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPasswordHash))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordHash, v))
}

// AuthProviderEQ applies the EQ predicate on the "auth_provider" field.
func AuthProviderEQ(v AuthProvider) predicate.User {
	return predicate.User(sql.FieldEQ(FieldAuthProvider, v))
}

// AuthProviderNEQ applies the NEQ predicate on the "auth_provider" field.
func AuthProviderNEQ(v AuthProvider) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldAuthProvider, v))
}

// AuthProviderIn applies the In predicate on the "auth_provider" field.
func AuthProviderIn(vs ...AuthProvider) predicate.User {
	return predicate.User(sql.FieldIn(FieldAuthProvider, vs...))
}

// AuthProviderNotIn applies the NotIn predicate on the "auth_provider" field.
func AuthProviderNotIn(vs ...AuthProvider) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldAuthProvider, vs...))
}

// GoogleIDEQ applies the EQ predicate on the "google_id" field.
func GoogleIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldGoogleID, v))
}

// GoogleIDNEQ applies the NEQ predicate on the "google_id" field.
func GoogleIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldGoogleID, v))
}

// GoogleIDIn applies the In predicate on the "google_id" field.
func GoogleIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldGoogleID, vs...))
}

// GoogleIDNotIn applies the NotIn predicate on the "google_id" field.
func GoogleIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldGoogleID, vs...))
}

// GoogleIDGT applies the GT predicate on the "google_id" field.
func GoogleIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldGoogleID, v))
}

// GoogleIDGTE applies the GTE predicate on the "google_id" field.
func GoogleIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldGoogleID, v))
}

// GoogleIDLT applies the LT predicate on the "google_id" field.
func GoogleIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldGoogleID, v))
}

// GoogleIDLTE applies the LTE predicate on the "google_id" field.
func GoogleIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldGoogleID, v))
}

// GoogleIDContains applies the Contains predicate on the "google_id" field.
func GoogleIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldGoogleID, v))
}

// GoogleIDHasPrefix applies the HasPrefix predicate on the "google_id" field.
func GoogleIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldGoogleID, v))
}

// GoogleIDHasSuffix applies the HasSuffix predicate on the "google_id" field.
func GoogleIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldGoogleID, v))
}

// GoogleIDIsNil applies the IsNil predicate on the "google_id" field.
func GoogleIDIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldGoogleID))
}

// GoogleIDNotNil applies the NotNil predicate on the "google_id" field.
func GoogleIDNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldGoogleID))
}

// GoogleIDEqualFold applies the EqualFold predicate on the "google_id" field.
func GoogleIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldGoogleID, v))
}

// GoogleIDContainsFold applies the ContainsFold predicate on the "google_id" field.
func GoogleIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldGoogleID, v))
}

// FacebookIDEQ applies the EQ predicate on the "facebook_id" field.
func FacebookIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldFacebookID, v))
}

// FacebookIDNEQ applies the NEQ predicate on the "facebook_id" field.
func FacebookIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldFacebookID, v))
}

// FacebookIDIn applies the In predicate on the "facebook_id" field.
func FacebookIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldFacebookID, vs...))
}

// FacebookIDNotIn applies the NotIn predicate on the "facebook_id" field.
func FacebookIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldFacebookID, vs...))
}

// FacebookIDGT applies the GT predicate on the "facebook_id" field.
func FacebookIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldFacebookID, v))
}

// FacebookIDGTE applies the GTE predicate on the "facebook_id" field.
func FacebookIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldFacebookID, v))
}

// FacebookIDLT applies the LT predicate on the "facebook_id" field.
func FacebookIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldFacebookID, v))
}

// FacebookIDLTE applies the LTE predicate on the "facebook_id" field.
func FacebookIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldFacebookID, v))
}

// FacebookIDContains applies the Contains predicate on the "facebook_id" field.
func FacebookIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldFacebookID, v))
}

// FacebookIDHasPrefix applies the HasPrefix predicate on the "facebook_id" field.
func FacebookIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldFacebookID, v))
}

// FacebookIDHasSuffix applies the HasSuffix predicate on the "facebook_id" field.
func FacebookIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldFacebookID, v))
}

// FacebookIDIsNil applies the IsNil predicate on the "facebook_id" field.
func FacebookIDIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldFacebookID))
}

// FacebookIDNotNil applies the NotNil predicate on the "facebook_id" field.
func FacebookIDNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldFacebookID))
}

// FacebookIDEqualFold applies the EqualFold predicate on the "facebook_id" field.
func FacebookIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldFacebookID, v))
}

// FacebookIDContainsFold applies the ContainsFold predicate on the "facebook_id" field.
func FacebookIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldFacebookID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.User {
	return predicate.User(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldRole, vs...))
}

// LoginAttemptsEQ applies the EQ predicate on the "login_attempts" field.
func LoginAttemptsEQ(v int) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLoginAttempts, v))
}

// LoginAttemptsNEQ applies the NEQ predicate on the "login_attempts" field.
func LoginAttemptsNEQ(v int) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLoginAttempts, v))
}

// LoginAttemptsIn applies the In predicate on the "login_attempts" field.
func LoginAttemptsIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldIn(FieldLoginAttempts, vs...))
}

// LoginAttemptsNotIn applies the NotIn predicate on the "login_attempts" field.
func LoginAttemptsNotIn(vs ...int) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLoginAttempts, vs...))
}

// LoginAttemptsGT applies the GT predicate on the "login_attempts" field.
func LoginAttemptsGT(v int) predicate.User {
	return predicate.User(sql.FieldGT(FieldLoginAttempts, v))
}

// LoginAttemptsGTE applies the GTE predicate on the "login_attempts" field.
func LoginAttemptsGTE(v int) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLoginAttempts, v))
}

// LoginAttemptsLT applies the LT predicate on the "login_attempts" field.
func LoginAttemptsLT(v int) predicate.User {
	return predicate.User(sql.FieldLT(FieldLoginAttempts, v))
}

// LoginAttemptsLTE applies the LTE predicate on the "login_attempts" field.
func LoginAttemptsLTE(v int) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLoginAttempts, v))
}

// LockUntilEQ applies the EQ predicate on the "lock_until" field.
func LockUntilEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLockUntil, v))
}

// LockUntilNEQ applies the NEQ predicate on the "lock_until" field.
func LockUntilNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLockUntil, v))
}

// LockUntilIn applies the In predicate on the "lock_until" field.
func LockUntilIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLockUntil, vs...))
}

// LockUntilNotIn applies the NotIn predicate on the "lock_until" field.
func LockUntilNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLockUntil, vs...))
}

// LockUntilGT applies the GT predicate on the "lock_until" field.
func LockUntilGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLockUntil, v))
}

// LockUntilGTE applies the GTE predicate on the "lock_until" field.
func LockUntilGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLockUntil, v))
}

// LockUntilLT applies the LT predicate on the "lock_until" field.
func LockUntilLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLockUntil, v))
}

// LockUntilLTE applies the LTE predicate on the "lock_until" field.
func LockUntilLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLockUntil, v))
}

// LockUntilIsNil applies the IsNil predicate on the "lock_until" field.
func LockUntilIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLockUntil))
}

// LockUntilNotNil applies the NotNil predicate on the "lock_until" field.
func LockUntilNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLockUntil))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldIsActive, v))
}

// IsVerifiedEQ applies the EQ predicate on the "is_verified" field.
func IsVerifiedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldIsVerified, v))
}

// IsVerifiedNEQ applies the NEQ predicate on the "is_verified" field.
func IsVerifiedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldIsVerified, v))
}

// OidcIssuerEQ applies the EQ predicate on the "oidc_issuer" field.
func OidcIssuerEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcIssuer, v))
}

// OidcIssuerNEQ applies the NEQ predicate on the "oidc_issuer" field.
func OidcIssuerNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOidcIssuer, v))
}

// OidcIssuerIn applies the In predicate on the "oidc_issuer" field.
func OidcIssuerIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldOidcIssuer, vs...))
}

// OidcIssuerNotIn applies the NotIn predicate on the "oidc_issuer" field.
func OidcIssuerNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOidcIssuer, vs...))
}

// OidcIssuerGT applies the GT predicate on the "oidc_issuer" field.
func OidcIssuerGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldOidcIssuer, v))
}

// OidcIssuerGTE applies the GTE predicate on the "oidc_issuer" field.
func OidcIssuerGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOidcIssuer, v))
}

// OidcIssuerLT applies the LT predicate on the "oidc_issuer" field.
func OidcIssuerLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldOidcIssuer, v))
}

// OidcIssuerLTE applies the LTE predicate on the "oidc_issuer" field.
func OidcIssuerLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOidcIssuer, v))
}

// OidcIssuerContains applies the Contains predicate on the "oidc_issuer" field.
func OidcIssuerContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldOidcIssuer, v))
}

// OidcIssuerHasPrefix applies the HasPrefix predicate on the "oidc_issuer" field.
func OidcIssuerHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldOidcIssuer, v))
}

// OidcIssuerHasSuffix applies the HasSuffix predicate on the "oidc_issuer" field.
func OidcIssuerHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldOidcIssuer, v))
}

// OidcIssuerIsNil applies the IsNil predicate on the "oidc_issuer" field.
func OidcIssuerIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOidcIssuer))
}

// OidcIssuerNotNil applies the NotNil predicate on the "oidc_issuer" field.
func OidcIssuerNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOidcIssuer))
}

// OidcIssuerEqualFold applies the EqualFold predicate on the "oidc_issuer" field.
func OidcIssuerEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldOidcIssuer, v))
}

// OidcIssuerContainsFold applies the ContainsFold predicate on the "oidc_issuer" field.
func OidcIssuerContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldOidcIssuer, v))
}

// OidcSubjectEQ applies the EQ predicate on the "oidc_subject" field.
func OidcSubjectEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcSubject, v))
}

// OidcSubjectNEQ applies the NEQ predicate on the "oidc_subject" field.
func OidcSubjectNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOidcSubject, v))
}

// OidcSubjectIn applies the In predicate on the "oidc_subject" field.
func OidcSubjectIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldOidcSubject, vs...))
}

// OidcSubjectNotIn applies the NotIn predicate on the "oidc_subject" field.
func OidcSubjectNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOidcSubject, vs...))
}

// OidcSubjectGT applies the GT predicate on the "oidc_subject" field.
func OidcSubjectGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldOidcSubject, v))
}

// OidcSubjectGTE applies the GTE predicate on the "oidc_subject" field.
func OidcSubjectGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOidcSubject, v))
}

// OidcSubjectLT applies the LT predicate on the "oidc_subject" field.
func OidcSubjectLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldOidcSubject, v))
}

// OidcSubjectLTE applies the LTE predicate on the "oidc_subject" field.
func OidcSubjectLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOidcSubject, v))
}

// OidcSubjectContains applies the Contains predicate on the "oidc_subject" field.
func OidcSubjectContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldOidcSubject, v))
}

// OidcSubjectHasPrefix applies the HasPrefix predicate on the "oidc_subject" field.
func OidcSubjectHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldOidcSubject, v))
}

// OidcSubjectHasSuffix applies the HasSuffix predicate on the "oidc_subject" field.
func OidcSubjectHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldOidcSubject, v))
}

// OidcSubjectIsNil applies the IsNil predicate on the "oidc_subject" field.
func OidcSubjectIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOidcSubject))
}

// OidcSubjectNotNil applies the NotNil predicate on the "oidc_subject" field.
func OidcSubjectNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOidcSubject))
}

// OidcSubjectEqualFold applies the EqualFold predicate on the "oidc_subject" field.
func OidcSubjectEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldOidcSubject, v))
}

// OidcSubjectContainsFold applies the ContainsFold predicate on the "oidc_subject" field.
func OidcSubjectContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldOidcSubject, v))
}

// OidcAudienceEQ applies the EQ predicate on the "oidc_audience" field.
func OidcAudienceEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcAudience, v))
}

// OidcAudienceNEQ applies the NEQ predicate on the "oidc_audience" field.
func OidcAudienceNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOidcAudience, v))
}

// OidcAudienceIn applies the In predicate on the "oidc_audience" field.
func OidcAudienceIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldOidcAudience, vs...))
}

// OidcAudienceNotIn applies the NotIn predicate on the "oidc_audience" field.
func OidcAudienceNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOidcAudience, vs...))
}

// OidcAudienceGT applies the GT predicate on the "oidc_audience" field.
func OidcAudienceGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldOidcAudience, v))
}

// OidcAudienceGTE applies the GTE predicate on the "oidc_audience" field.
func OidcAudienceGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOidcAudience, v))
}

// OidcAudienceLT applies the LT predicate on the "oidc_audience" field.
func OidcAudienceLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldOidcAudience, v))
}

// OidcAudienceLTE applies the LTE predicate on the "oidc_audience" field.
func OidcAudienceLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOidcAudience, v))
}

// OidcAudienceContains applies the Contains predicate on the "oidc_audience" field.
func OidcAudienceContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldOidcAudience, v))
}

// OidcAudienceHasPrefix applies the HasPrefix predicate on the "oidc_audience" field.
func OidcAudienceHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldOidcAudience, v))
}

// OidcAudienceHasSuffix applies the HasSuffix predicate on the "oidc_audience" field.
func OidcAudienceHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldOidcAudience, v))
}

// OidcAudienceIsNil applies the IsNil predicate on the "oidc_audience" field.
func OidcAudienceIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOidcAudience))
}

// OidcAudienceNotNil applies the NotNil predicate on the "oidc_audience" field.
func OidcAudienceNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOidcAudience))
}

// OidcAudienceEqualFold applies the EqualFold predicate on the "oidc_audience" field.
func OidcAudienceEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldOidcAudience, v))
}

// OidcAudienceContainsFold applies the ContainsFold predicate on the "oidc_audience" field.
func OidcAudienceContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldOidcAudience, v))
}

// OidcIssuedAtEQ applies the EQ predicate on the "oidc_issued_at" field.
func OidcIssuedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcIssuedAt, v))
}

// OidcIssuedAtNEQ applies the NEQ predicate on the "oidc_issued_at" field.
func OidcIssuedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOidcIssuedAt, v))
}

// OidcIssuedAtIn applies the In predicate on the "oidc_issued_at" field.
func OidcIssuedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldOidcIssuedAt, vs...))
}

// OidcIssuedAtNotIn applies the NotIn predicate on the "oidc_issued_at" field.
func OidcIssuedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOidcIssuedAt, vs...))
}

// OidcIssuedAtGT applies the GT predicate on the "oidc_issued_at" field.
func OidcIssuedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldOidcIssuedAt, v))
}

// OidcIssuedAtGTE applies the GTE predicate on the "oidc_issued_at" field.
func OidcIssuedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOidcIssuedAt, v))
}

// OidcIssuedAtLT applies the LT predicate on the "oidc_issued_at" field.
func OidcIssuedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldOidcIssuedAt, v))
}

// OidcIssuedAtLTE applies the LTE predicate on the "oidc_issued_at" field.
func OidcIssuedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOidcIssuedAt, v))
}

// OidcIssuedAtIsNil applies the IsNil predicate on the "oidc_issued_at" field.
func OidcIssuedAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOidcIssuedAt))
}

// OidcIssuedAtNotNil applies the NotNil predicate on the "oidc_issued_at" field.
func OidcIssuedAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOidcIssuedAt))
}

// OidcExpirationEQ applies the EQ predicate on the "oidc_expiration" field.
func OidcExpirationEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcExpiration, v))
}

// OidcExpirationNEQ applies the NEQ predicate on the "oidc_expiration" field.
func OidcExpirationNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOidcExpiration, v))
}

// OidcExpirationIn applies the In predicate on the "oidc_expiration" field.
func OidcExpirationIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldOidcExpiration, vs...))
}

// OidcExpirationNotIn applies the NotIn predicate on the "oidc_expiration" field.
func OidcExpirationNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOidcExpiration, vs...))
}

// OidcExpirationGT applies the GT predicate on the "oidc_expiration" field.
func OidcExpirationGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldOidcExpiration, v))
}

// OidcExpirationGTE applies the GTE predicate on the "oidc_expiration" field.
func OidcExpirationGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOidcExpiration, v))
}

// OidcExpirationLT applies the LT predicate on the "oidc_expiration" field.
func OidcExpirationLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldOidcExpiration, v))
}

// OidcExpirationLTE applies the LTE predicate on the "oidc_expiration" field.
func OidcExpirationLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOidcExpiration, v))
}

// OidcExpirationIsNil applies the IsNil predicate on the "oidc_expiration" field.
func OidcExpirationIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOidcExpiration))
}

// OidcExpirationNotNil applies the NotNil predicate on the "oidc_expiration" field.
func OidcExpirationNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOidcExpiration))
}

// OidcEmailVerifiedEQ applies the EQ predicate on the "oidc_email_verified" field.
func OidcEmailVerifiedEQ(v bool) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcEmailVerified, v))
}

// OidcEmailVerifiedNEQ applies the NEQ predicate on the "oidc_email_verified" field.
func OidcEmailVerifiedNEQ(v bool) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOidcEmailVerified, v))
}

// OidcEmailVerifiedIsNil applies the IsNil predicate on the "oidc_email_verified" field.
func OidcEmailVerifiedIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOidcEmailVerified))
}

// OidcEmailVerifiedNotNil applies the NotNil predicate on the "oidc_email_verified" field.
func OidcEmailVerifiedNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOidcEmailVerified))
}

// OidcHostedDomainEQ applies the EQ predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldOidcHostedDomain, v))
}

// OidcHostedDomainNEQ applies the NEQ predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldOidcHostedDomain, v))
}

// OidcHostedDomainIn applies the In predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldOidcHostedDomain, vs...))
}

// OidcHostedDomainNotIn applies the NotIn predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldOidcHostedDomain, vs...))
}

// OidcHostedDomainGT applies the GT predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldOidcHostedDomain, v))
}

// OidcHostedDomainGTE applies the GTE predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldOidcHostedDomain, v))
}

// OidcHostedDomainLT applies the LT predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldOidcHostedDomain, v))
}

// OidcHostedDomainLTE applies the LTE predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldOidcHostedDomain, v))
}

// OidcHostedDomainContains applies the Contains predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldOidcHostedDomain, v))
}

// OidcHostedDomainHasPrefix applies the HasPrefix predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldOidcHostedDomain, v))
}

// OidcHostedDomainHasSuffix applies the HasSuffix predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldOidcHostedDomain, v))
}

// OidcHostedDomainIsNil applies the IsNil predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldOidcHostedDomain))
}

// OidcHostedDomainNotNil applies the NotNil predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldOidcHostedDomain))
}

// OidcHostedDomainEqualFold applies the EqualFold predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldOidcHostedDomain, v))
}

// OidcHostedDomainContainsFold applies the ContainsFold predicate on the "oidc_hosted_domain" field.
func OidcHostedDomainContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldOidcHostedDomain, v))
}

// PasswordResetTokenEQ applies the EQ predicate on the "password_reset_token" field.
func PasswordResetTokenEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordResetToken, v))
}

// PasswordResetTokenNEQ applies the NEQ predicate on the "password_reset_token" field.
func PasswordResetTokenNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordResetToken, v))
}

// PasswordResetTokenIn applies the In predicate on the "password_reset_token" field.
func PasswordResetTokenIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordResetToken, vs...))
}

// PasswordResetTokenNotIn applies the NotIn predicate on the "password_reset_token" field.
func PasswordResetTokenNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordResetToken, vs...))
}

// PasswordResetTokenGT applies the GT predicate on the "password_reset_token" field.
func PasswordResetTokenGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordResetToken, v))
}

// PasswordResetTokenGTE applies the GTE predicate on the "password_reset_token" field.
func PasswordResetTokenGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordResetToken, v))
}

// PasswordResetTokenLT applies the LT predicate on the "password_reset_token" field.
func PasswordResetTokenLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordResetToken, v))
}

// PasswordResetTokenLTE applies the LTE predicate on the "password_reset_token" field.
func PasswordResetTokenLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordResetToken, v))
}

// PasswordResetTokenContains applies the Contains predicate on the "password_reset_token" field.
func PasswordResetTokenContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldPasswordResetToken, v))
}

// PasswordResetTokenHasPrefix applies the HasPrefix predicate on the "password_reset_token" field.
func PasswordResetTokenHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldPasswordResetToken, v))
}

// PasswordResetTokenHasSuffix applies the HasSuffix predicate on the "password_reset_token" field.
func PasswordResetTokenHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldPasswordResetToken, v))
}

// PasswordResetTokenIsNil applies the IsNil predicate on the "password_reset_token" field.
func PasswordResetTokenIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPasswordResetToken))
}

// PasswordResetTokenNotNil applies the NotNil predicate on the "password_reset_token" field.
func PasswordResetTokenNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPasswordResetToken))
}

// PasswordResetTokenEqualFold applies the EqualFold predicate on the "password_reset_token" field.
func PasswordResetTokenEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldPasswordResetToken, v))
}

// PasswordResetTokenContainsFold applies the ContainsFold predicate on the "password_reset_token" field.
func PasswordResetTokenContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldPasswordResetToken, v))
}

// PasswordResetExpiresEQ applies the EQ predicate on the "password_reset_expires" field.
func PasswordResetExpiresEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldPasswordResetExpires, v))
}

// PasswordResetExpiresNEQ applies the NEQ predicate on the "password_reset_expires" field.
func PasswordResetExpiresNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldPasswordResetExpires, v))
}

// PasswordResetExpiresIn applies the In predicate on the "password_reset_expires" field.
func PasswordResetExpiresIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldPasswordResetExpires, vs...))
}

// PasswordResetExpiresNotIn applies the NotIn predicate on the "password_reset_expires" field.
func PasswordResetExpiresNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldPasswordResetExpires, vs...))
}

// PasswordResetExpiresGT applies the GT predicate on the "password_reset_expires" field.
func PasswordResetExpiresGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldPasswordResetExpires, v))
}

// PasswordResetExpiresGTE applies the GTE predicate on the "password_reset_expires" field.
func PasswordResetExpiresGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldPasswordResetExpires, v))
}

// PasswordResetExpiresLT applies the LT predicate on the "password_reset_expires" field.
func PasswordResetExpiresLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldPasswordResetExpires, v))
}

// PasswordResetExpiresLTE applies the LTE predicate on the "password_reset_expires" field.
func PasswordResetExpiresLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldPasswordResetExpires, v))
}

// PasswordResetExpiresIsNil applies the IsNil predicate on the "password_reset_expires" field.
func PasswordResetExpiresIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldPasswordResetExpires))
}

// PasswordResetExpiresNotNil applies the NotNil predicate on the "password_reset_expires" field.
func PasswordResetExpiresNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldPasswordResetExpires))
}

// EmailVerificationTokenEQ applies the EQ predicate on the "email_verification_token" field.
func EmailVerificationTokenEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenNEQ applies the NEQ predicate on the "email_verification_token" field.
func EmailVerificationTokenNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenIn applies the In predicate on the "email_verification_token" field.
func EmailVerificationTokenIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmailVerificationToken, vs...))
}

// EmailVerificationTokenNotIn applies the NotIn predicate on the "email_verification_token" field.
func EmailVerificationTokenNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmailVerificationToken, vs...))
}

// EmailVerificationTokenGT applies the GT predicate on the "email_verification_token" field.
func EmailVerificationTokenGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenGTE applies the GTE predicate on the "email_verification_token" field.
func EmailVerificationTokenGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenLT applies the LT predicate on the "email_verification_token" field.
func EmailVerificationTokenLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenLTE applies the LTE predicate on the "email_verification_token" field.
func EmailVerificationTokenLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenContains applies the Contains predicate on the "email_verification_token" field.
func EmailVerificationTokenContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenHasPrefix applies the HasPrefix predicate on the "email_verification_token" field.
func EmailVerificationTokenHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenHasSuffix applies the HasSuffix predicate on the "email_verification_token" field.
func EmailVerificationTokenHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenIsNil applies the IsNil predicate on the "email_verification_token" field.
func EmailVerificationTokenIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmailVerificationToken))
}

// EmailVerificationTokenNotNil applies the NotNil predicate on the "email_verification_token" field.
func EmailVerificationTokenNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmailVerificationToken))
}

// EmailVerificationTokenEqualFold applies the EqualFold predicate on the "email_verification_token" field.
func EmailVerificationTokenEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldEmailVerificationToken, v))
}

// EmailVerificationTokenContainsFold applies the ContainsFold predicate on the "email_verification_token" field.
func EmailVerificationTokenContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldEmailVerificationToken, v))
}

// EmailVerificationExpiresEQ applies the EQ predicate on the "email_verification_expires" field.
func EmailVerificationExpiresEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldEmailVerificationExpires, v))
}

// EmailVerificationExpiresNEQ applies the NEQ predicate on the "email_verification_expires" field.
func EmailVerificationExpiresNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldEmailVerificationExpires, v))
}

// EmailVerificationExpiresIn applies the In predicate on the "email_verification_expires" field.
func EmailVerificationExpiresIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldEmailVerificationExpires, vs...))
}

// EmailVerificationExpiresNotIn applies the NotIn predicate on the "email_verification_expires" field.
func EmailVerificationExpiresNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldEmailVerificationExpires, vs...))
}

// EmailVerificationExpiresGT applies the GT predicate on the "email_verification_expires" field.
func EmailVerificationExpiresGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldEmailVerificationExpires, v))
}

// EmailVerificationExpiresGTE applies the GTE predicate on the "email_verification_expires" field.
func EmailVerificationExpiresGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldEmailVerificationExpires, v))
}

// EmailVerificationExpiresLT applies the LT predicate on the "email_verification_expires" field.
func EmailVerificationExpiresLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldEmailVerificationExpires, v))
}

// EmailVerificationExpiresLTE applies the LTE predicate on the "email_verification_expires" field.
func EmailVerificationExpiresLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldEmailVerificationExpires, v))
}

// EmailVerificationExpiresIsNil applies the IsNil predicate on the "email_verification_expires" field.
func EmailVerificationExpiresIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldEmailVerificationExpires))
}

// EmailVerificationExpiresNotNil applies the NotNil predicate on the "email_verification_expires" field.
func EmailVerificationExpiresNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldEmailVerificationExpires))
}

// LastLoginAtEQ applies the EQ predicate on the "last_login_at" field.
func LastLoginAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldLastLoginAt, v))
}

// LastLoginAtNEQ applies the NEQ predicate on the "last_login_at" field.
func LastLoginAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldLastLoginAt, v))
}

// LastLoginAtIn applies the In predicate on the "last_login_at" field.
func LastLoginAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldLastLoginAt, vs...))
}

// LastLoginAtNotIn applies the NotIn predicate on the "last_login_at" field.
func LastLoginAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldLastLoginAt, vs...))
}

// LastLoginAtGT applies the GT predicate on the "last_login_at" field.
func LastLoginAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldLastLoginAt, v))
}

// LastLoginAtGTE applies the GTE predicate on the "last_login_at" field.
func LastLoginAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldLastLoginAt, v))
}

// LastLoginAtLT applies the LT predicate on the "last_login_at" field.
func LastLoginAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldLastLoginAt, v))
}

// LastLoginAtLTE applies the LTE predicate on the "last_login_at" field.
func LastLoginAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldLastLoginAt, v))
}

// LastLoginAtIsNil applies the IsNil predicate on the "last_login_at" field.
func LastLoginAtIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldLastLoginAt))
}

// LastLoginAtNotNil applies the NotNil predicate on the "last_login_at" field.
func LastLoginAtNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldLastLoginAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
