// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"modgoviya.io/modgoviya/ent/user"
)

// User is the model entity for the User schema.
type User struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// PasswordHash holds the value of the "password_hash" field.
	PasswordHash string `json:"-"`
	// AuthProvider holds the value of the "auth_provider" field.
	AuthProvider user.AuthProvider `json:"auth_provider,omitempty"`
	// GoogleID holds the value of the "google_id" field.
	GoogleID *string `json:"google_id,omitempty"`
	// FacebookID holds the value of the "facebook_id" field.
	FacebookID *string `json:"facebook_id,omitempty"`
	// Role holds the value of the "role" field.
	Role user.Role `json:"role,omitempty"`
	// LoginAttempts holds the value of the "login_attempts" field.
	LoginAttempts int `json:"login_attempts,omitempty"`
	// LockUntil holds the value of the "lock_until" field.
	LockUntil *time.Time `json:"lock_until,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// IsVerified holds the value of the "is_verified" field.
	IsVerified bool `json:"is_verified,omitempty"`
	// OidcIssuer holds the value of the "oidc_issuer" field.
	OidcIssuer string `json:"oidc_issuer,omitempty"`
	// OidcSubject holds the value of the "oidc_subject" field.
	OidcSubject string `json:"oidc_subject,omitempty"`
	// OidcAudience holds the value of the "oidc_audience" field.
	OidcAudience string `json:"oidc_audience,omitempty"`
	// OidcIssuedAt holds the value of the "oidc_issued_at" field.
	OidcIssuedAt *time.Time `json:"oidc_issued_at,omitempty"`
	// OidcExpiration holds the value of the "oidc_expiration" field.
	OidcExpiration *time.Time `json:"oidc_expiration,omitempty"`
	// OidcEmailVerified holds the value of the "oidc_email_verified" field.
	OidcEmailVerified bool `json:"oidc_email_verified,omitempty"`
	// OidcHostedDomain holds the value of the "oidc_hosted_domain" field.
	OidcHostedDomain string `json:"oidc_hosted_domain,omitempty"`
	// PasswordResetToken holds the value of the "password_reset_token" field.
	PasswordResetToken string `json:"-"`
	// PasswordResetExpires holds the value of the "password_reset_expires" field.
	PasswordResetExpires *time.Time `json:"password_reset_expires,omitempty"`
	// EmailVerificationToken holds the value of the "email_verification_token" field.
	EmailVerificationToken string `json:"-"`
	// EmailVerificationExpires holds the value of the "email_verification_expires" field.
	EmailVerificationExpires *time.Time `json:"email_verification_expires,omitempty"`
	// LastLoginAt holds the value of the "last_login_at" field.
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*User) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case user.FieldIsActive, user.FieldIsVerified, user.FieldOidcEmailVerified:
			values[i] = new(sql.NullBool)
		case user.FieldLoginAttempts:
			values[i] = new(sql.NullInt64)
		case user.FieldID, user.FieldEmail, user.FieldFullName, user.FieldPasswordHash, user.FieldAuthProvider, user.FieldGoogleID, user.FieldFacebookID, user.FieldRole, user.FieldOidcIssuer, user.FieldOidcSubject, user.FieldOidcAudience, user.FieldOidcHostedDomain, user.FieldPasswordResetToken, user.FieldEmailVerificationToken:
			values[i] = new(sql.NullString)
		case user.FieldCreatedAt, user.FieldUpdatedAt, user.FieldLockUntil, user.FieldOidcIssuedAt, user.FieldOidcExpiration, user.FieldPasswordResetExpires, user.FieldEmailVerificationExpires, user.FieldLastLoginAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the User fields.
func (_m *User) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case user.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case user.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case user.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case user.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case user.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case user.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = value.String
			}
		case user.FieldAuthProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field auth_provider", values[i])
			} else if value.Valid {
				_m.AuthProvider = user.AuthProvider(value.String)
			}
		case user.FieldGoogleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field google_id", values[i])
			} else if value.Valid {
				_m.GoogleID = new(string)
				*_m.GoogleID = value.String
			}
		case user.FieldFacebookID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field facebook_id", values[i])
			} else if value.Valid {
				_m.FacebookID = new(string)
				*_m.FacebookID = value.String
			}
		case user.FieldRole:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field role", values[i])
			} else if value.Valid {
				_m.Role = user.Role(value.String)
			}
		case user.FieldLoginAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field login_attempts", values[i])
			} else if value.Valid {
				_m.LoginAttempts = int(value.Int64)
			}
		case user.FieldLockUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field lock_until", values[i])
			} else if value.Valid {
				_m.LockUntil = new(time.Time)
				*_m.LockUntil = value.Time
			}
		case user.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case user.FieldIsVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_verified", values[i])
			} else if value.Valid {
				_m.IsVerified = value.Bool
			}
		case user.FieldOidcIssuer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field oidc_issuer", values[i])
			} else if value.Valid {
				_m.OidcIssuer = value.String
			}
		case user.FieldOidcSubject:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field oidc_subject", values[i])
			} else if value.Valid {
				_m.OidcSubject = value.String
			}
		case user.FieldOidcAudience:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field oidc_audience", values[i])
			} else if value.Valid {
				_m.OidcAudience = value.String
			}
		case user.FieldOidcIssuedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field oidc_issued_at", values[i])
			} else if value.Valid {
				_m.OidcIssuedAt = new(time.Time)
				*_m.OidcIssuedAt = value.Time
			}
		case user.FieldOidcExpiration:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field oidc_expiration", values[i])
			} else if value.Valid {
				_m.OidcExpiration = new(time.Time)
				*_m.OidcExpiration = value.Time
			}
		case user.FieldOidcEmailVerified:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field oidc_email_verified", values[i])
			} else if value.Valid {
				_m.OidcEmailVerified = value.Bool
			}
		case user.FieldOidcHostedDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field oidc_hosted_domain", values[i])
			} else if value.Valid {
				_m.OidcHostedDomain = value.String
			}
		case user.FieldPasswordResetToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_reset_token", values[i])
			} else if value.Valid {
				_m.PasswordResetToken = value.String
			}
		case user.FieldPasswordResetExpires:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field password_reset_expires", values[i])
			} else if value.Valid {
				_m.PasswordResetExpires = new(time.Time)
				*_m.PasswordResetExpires = value.Time
			}
		case user.FieldEmailVerificationToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email_verification_token", values[i])
			} else if value.Valid {
				_m.EmailVerificationToken = value.String
			}
		case user.FieldEmailVerificationExpires:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field email_verification_expires", values[i])
			} else if value.Valid {
				_m.EmailVerificationExpires = new(time.Time)
				*_m.EmailVerificationExpires = value.Time
			}
		case user.FieldLastLoginAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login_at", values[i])
			} else if value.Valid {
				_m.LastLoginAt = new(time.Time)
				*_m.LastLoginAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the User.
// This includes values selected through modifiers, order, etc.
func (_m *User) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this User.
// Note that you need to call User.Unwrap() before calling this method if this User
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *User) Update() *UserUpdateOne {
	return NewUserClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the User entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *User) Unwrap() *User {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: User is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *User) String() string {
	var builder strings.Builder
	builder.WriteString("User(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("auth_provider=")
	builder.WriteString(fmt.Sprintf("%v", _m.AuthProvider))
	builder.WriteString(", ")
	if v := _m.GoogleID; v != nil {
		builder.WriteString("google_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.FacebookID; v != nil {
		builder.WriteString("facebook_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("role=")
	builder.WriteString(fmt.Sprintf("%v", _m.Role))
	builder.WriteString(", ")
	builder.WriteString("login_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.LoginAttempts))
	builder.WriteString(", ")
	if v := _m.LockUntil; v != nil {
		builder.WriteString("lock_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	builder.WriteString("is_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsVerified))
	builder.WriteString(", ")
	builder.WriteString("oidc_issuer=")
	builder.WriteString(_m.OidcIssuer)
	builder.WriteString(", ")
	builder.WriteString("oidc_subject=")
	builder.WriteString(_m.OidcSubject)
	builder.WriteString(", ")
	builder.WriteString("oidc_audience=")
	builder.WriteString(_m.OidcAudience)
	builder.WriteString(", ")
	if v := _m.OidcIssuedAt; v != nil {
		builder.WriteString("oidc_issued_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.OidcExpiration; v != nil {
		builder.WriteString("oidc_expiration=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("oidc_email_verified=")
	builder.WriteString(fmt.Sprintf("%v", _m.OidcEmailVerified))
	builder.WriteString(", ")
	builder.WriteString("oidc_hosted_domain=")
	builder.WriteString(_m.OidcHostedDomain)
	builder.WriteString(", ")
	builder.WriteString("password_reset_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.PasswordResetExpires; v != nil {
		builder.WriteString("password_reset_expires=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("email_verification_token=<sensitive>")
	builder.WriteString(", ")
	if v := _m.EmailVerificationExpires; v != nil {
		builder.WriteString("email_verification_expires=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastLoginAt; v != nil {
		builder.WriteString("last_login_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Users is a parsable slice of User.
type Users []*User
