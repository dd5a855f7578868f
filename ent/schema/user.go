package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for platform accounts.
//
// An account is either local (password_hash set) or federated
// (google_id/facebook_id set, no password hash). Email is the global
// identity key across providers; the unique index is the authoritative
// guard against duplicate registration under concurrency.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.String("full_name").
			NotEmpty().
			MaxLen(255),
		field.String("password_hash").
			Optional().
			Sensitive(), // local accounts only
		field.Enum("auth_provider").
			Values("local", "google", "facebook").
			Default("local"),
		field.String("google_id").
			Optional().
			Nillable(),
		field.String("facebook_id").
			Optional().
			Nillable(),
		field.Enum("role").
			Values("farmer", "trader", "buyer", "extension_officer", "admin").
			Default("farmer"),
		field.Int("login_attempts").
			Default(0).
			NonNegative(),
		field.Time("lock_until").
			Optional().
			Nillable(),
		field.Bool("is_active").
			Default(true),
		field.Bool("is_verified").
			Default(false),

		// Snapshot of the last verified OIDC token, for re-auth auditing.
		field.String("oidc_issuer").
			Optional(),
		field.String("oidc_subject").
			Optional(),
		field.String("oidc_audience").
			Optional(),
		field.Time("oidc_issued_at").
			Optional().
			Nillable(),
		field.Time("oidc_expiration").
			Optional().
			Nillable(),
		field.Bool("oidc_email_verified").
			Optional(),
		field.String("oidc_hosted_domain").
			Optional(),

		// One-way hashes of single-use tokens; raw values are never stored.
		field.String("password_reset_token").
			Optional().
			Sensitive(),
		field.Time("password_reset_expires").
			Optional().
			Nillable(),
		field.String("email_verification_token").
			Optional().
			Sensitive(),
		field.Time("email_verification_expires").
			Optional().
			Nillable(),

		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("google_id").Unique(),
		index.Fields("facebook_id").Unique(),
	}
}
