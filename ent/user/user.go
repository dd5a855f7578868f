// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldPasswordHash holds the string denoting the password_hash field in the database.
	FieldPasswordHash = "password_hash"
	// FieldAuthProvider holds the string denoting the auth_provider field in the database.
	FieldAuthProvider = "auth_provider"
	// FieldGoogleID holds the string denoting the google_id field in the database.
	FieldGoogleID = "google_id"
	// FieldFacebookID holds the string denoting the facebook_id field in the database.
	FieldFacebookID = "facebook_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldLoginAttempts holds the string denoting the login_attempts field in the database.
	FieldLoginAttempts = "login_attempts"
	// FieldLockUntil holds the string denoting the lock_until field in the database.
	FieldLockUntil = "lock_until"
	// FieldIsActive holds the string denoting the is_active field in the database.
	FieldIsActive = "is_active"
	// FieldIsVerified holds the string denoting the is_verified field in the database.
	FieldIsVerified = "is_verified"
	// FieldOidcIssuer holds the string denoting the oidc_issuer field in the database.
	FieldOidcIssuer = "oidc_issuer"
	// FieldOidcSubject holds the string denoting the oidc_subject field in the database.
	FieldOidcSubject = "oidc_subject"
	// FieldOidcAudience holds the string denoting the oidc_audience field in the database.
	FieldOidcAudience = "oidc_audience"
	// FieldOidcIssuedAt holds the string denoting the oidc_issued_at field in the database.
	FieldOidcIssuedAt = "oidc_issued_at"
	// FieldOidcExpiration holds the string denoting the oidc_expiration field in the database.
	FieldOidcExpiration = "oidc_expiration"
	// FieldOidcEmailVerified holds the string denoting the oidc_email_verified field in the database.
	FieldOidcEmailVerified = "oidc_email_verified"
	// FieldOidcHostedDomain holds the string denoting the oidc_hosted_domain field in the database.
	FieldOidcHostedDomain = "oidc_hosted_domain"
	// FieldPasswordResetToken holds the string denoting the password_reset_token field in the database.
	FieldPasswordResetToken = "password_reset_token"
	// FieldPasswordResetExpires holds the string denoting the password_reset_expires field in the database.
	FieldPasswordResetExpires = "password_reset_expires"
	// FieldEmailVerificationToken holds the string denoting the email_verification_token field in the database.
	FieldEmailVerificationToken = "email_verification_token"
	// FieldEmailVerificationExpires holds the string denoting the email_verification_expires field in the database.
	FieldEmailVerificationExpires = "email_verification_expires"
	// FieldLastLoginAt holds the string denoting the last_login_at field in the database.
	FieldLastLoginAt = "last_login_at"
	// Table holds the table name of the user in the database.
	Table = "users"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldEmail,
	FieldFullName,
	FieldPasswordHash,
	FieldAuthProvider,
	FieldGoogleID,
	FieldFacebookID,
	FieldRole,
	FieldLoginAttempts,
	FieldLockUntil,
	FieldIsActive,
	FieldIsVerified,
	FieldOidcIssuer,
	FieldOidcSubject,
	FieldOidcAudience,
	FieldOidcIssuedAt,
	FieldOidcExpiration,
	FieldOidcEmailVerified,
	FieldOidcHostedDomain,
	FieldPasswordResetToken,
	FieldPasswordResetExpires,
	FieldEmailVerificationToken,
	FieldEmailVerificationExpires,
	FieldLastLoginAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// EmailValidator is a validator for the "email" field. It is called by the builders before save.
	EmailValidator func(string) error
	// FullNameValidator is a validator for the "full_name" field. It is called by the builders before save.
	FullNameValidator func(string) error
	// DefaultLoginAttempts holds the default value on creation for the "login_attempts" field.
	DefaultLoginAttempts int
	// LoginAttemptsValidator is a validator for the "login_attempts" field. It is called by the builders before save.
	LoginAttemptsValidator func(int) error
	// DefaultIsActive holds the default value on creation for the "is_active" field.
	DefaultIsActive bool
	// DefaultIsVerified holds the default value on creation for the "is_verified" field.
	DefaultIsVerified bool
)

// AuthProvider defines the type for the "auth_provider" enum field.
type AuthProvider string

// AuthProviderLocal is the default value of the AuthProvider enum.
const DefaultAuthProvider = AuthProviderLocal

// AuthProvider values.
const (
	AuthProviderLocal    AuthProvider = "local"
	AuthProviderGoogle   AuthProvider = "google"
	AuthProviderFacebook AuthProvider = "facebook"
)

func (ap AuthProvider) String() string {
	return string(ap)
}

// AuthProviderValidator is a validator for the "auth_provider" field enum values. It is called by the builders before save.
func AuthProviderValidator(ap AuthProvider) error {
	switch ap {
	case AuthProviderLocal, AuthProviderGoogle, AuthProviderFacebook:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for auth_provider field: %q", ap)
	}
}

// Role defines the type for the "role" enum field.
type Role string

// RoleFarmer is the default value of the Role enum.
const DefaultRole = RoleFarmer

// Role values.
const (
	RoleFarmer           Role = "farmer"
	RoleTrader           Role = "trader"
	RoleBuyer            Role = "buyer"
	RoleExtensionOfficer Role = "extension_officer"
	RoleAdmin            Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RoleFarmer, RoleTrader, RoleBuyer, RoleExtensionOfficer, RoleAdmin:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for role field: %q", r)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByPasswordHash orders the results by the password_hash field.
func ByPasswordHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordHash, opts...).ToFunc()
}

// ByAuthProvider orders the results by the auth_provider field.
func ByAuthProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthProvider, opts...).ToFunc()
}

// ByGoogleID orders the results by the google_id field.
func ByGoogleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoogleID, opts...).ToFunc()
}

// ByFacebookID orders the results by the facebook_id field.
func ByFacebookID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFacebookID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByLoginAttempts orders the results by the login_attempts field.
func ByLoginAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLoginAttempts, opts...).ToFunc()
}

// ByLockUntil orders the results by the lock_until field.
func ByLockUntil(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLockUntil, opts...).ToFunc()
}

// ByIsActive orders the results by the is_active field.
func ByIsActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsActive, opts...).ToFunc()
}

// ByIsVerified orders the results by the is_verified field.
func ByIsVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsVerified, opts...).ToFunc()
}

// ByOidcIssuer orders the results by the oidc_issuer field.
func ByOidcIssuer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOidcIssuer, opts...).ToFunc()
}

// ByOidcSubject orders the results by the oidc_subject field.
func ByOidcSubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOidcSubject, opts...).ToFunc()
}

// ByOidcAudience orders the results by the oidc_audience field.
func ByOidcAudience(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOidcAudience, opts...).ToFunc()
}

// ByOidcIssuedAt orders the results by the oidc_issued_at field.
func ByOidcIssuedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOidcIssuedAt, opts...).ToFunc()
}

// ByOidcExpiration orders the results by the oidc_expiration field.
func ByOidcExpiration(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOidcExpiration, opts...).ToFunc()
}

// ByOidcEmailVerified orders the results by the oidc_email_verified field.
func ByOidcEmailVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOidcEmailVerified, opts...).ToFunc()
}

// ByOidcHostedDomain orders the results by the oidc_hosted_domain field.
func ByOidcHostedDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOidcHostedDomain, opts...).ToFunc()
}

// ByPasswordResetToken orders the results by the password_reset_token field.
func ByPasswordResetToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordResetToken, opts...).ToFunc()
}

// ByPasswordResetExpires orders the results by the password_reset_expires field.
func ByPasswordResetExpires(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPasswordResetExpires, opts...).ToFunc()
}

// ByEmailVerificationToken orders the results by the email_verification_token field.
func ByEmailVerificationToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailVerificationToken, opts...).ToFunc()
}

// ByEmailVerificationExpires orders the results by the email_verification_expires field.
func ByEmailVerificationExpires(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmailVerificationExpires, opts...).ToFunc()
}

// ByLastLoginAt orders the results by the last_login_at field.
func ByLastLoginAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastLoginAt, opts...).ToFunc()
}
