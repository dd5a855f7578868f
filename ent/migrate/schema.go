// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "email", Type: field.TypeString, Size: 255},
		{Name: "full_name", Type: field.TypeString, Size: 255},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "auth_provider", Type: field.TypeEnum, Enums: []string{"local", "google", "facebook"}, Default: "local"},
		{Name: "google_id", Type: field.TypeString, Nullable: true},
		{Name: "facebook_id", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"farmer", "trader", "buyer", "extension_officer", "admin"}, Default: "farmer"},
		{Name: "login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "lock_until", Type: field.TypeTime, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "is_verified", Type: field.TypeBool, Default: false},
		{Name: "oidc_issuer", Type: field.TypeString, Nullable: true},
		{Name: "oidc_subject", Type: field.TypeString, Nullable: true},
		{Name: "oidc_audience", Type: field.TypeString, Nullable: true},
		{Name: "oidc_issued_at", Type: field.TypeTime, Nullable: true},
		{Name: "oidc_expiration", Type: field.TypeTime, Nullable: true},
		{Name: "oidc_email_verified", Type: field.TypeBool, Nullable: true},
		{Name: "oidc_hosted_domain", Type: field.TypeString, Nullable: true},
		{Name: "password_reset_token", Type: field.TypeString, Nullable: true},
		{Name: "password_reset_expires", Type: field.TypeTime, Nullable: true},
		{Name: "email_verification_token", Type: field.TypeString, Nullable: true},
		{Name: "email_verification_expires", Type: field.TypeTime, Nullable: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_email",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[3]},
			},
			{
				Name:    "user_google_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[7]},
			},
			{
				Name:    "user_facebook_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		UsersTable,
	}
)

func init() {
}
