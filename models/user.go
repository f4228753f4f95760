// models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is one identity record: a single document in the user collection with
// roles, claims, logins, and tokens embedded rather than joined.
//
// The bson tags pin the wire layout the authentication framework expects
// (PascalCase names, the identifier remapped to `_id`), independent of the
// in-memory field names. Documents written by other implementations of the
// same contract decode cleanly; fields they carry that we don't declare are
// ignored.
type User struct {
	ID                 string `bson:"_id"`
	UserName           string `bson:"UserName,omitempty"`
	NormalizedUserName string `bson:"NormalizedUserName,omitempty"`
	Email              string `bson:"Email,omitempty"`
	NormalizedEmail    string `bson:"NormalizedEmail,omitempty"`
	EmailConfirmed     bool   `bson:"EmailConfirmed"`

	PasswordHash  string `bson:"PasswordHash,omitempty"` // opaque; hashing belongs to the framework
	SecurityStamp string `bson:"SecurityStamp,omitempty"`

	PhoneNumber          string `bson:"PhoneNumber,omitempty"`
	PhoneNumberConfirmed bool   `bson:"PhoneNumberConfirmed"`

	TwoFactorEnabled bool `bson:"TwoFactorEnabled"`

	LockoutEnd        *time.Time `bson:"LockoutEnd,omitempty"`
	LockoutEnabled    bool       `bson:"LockoutEnabled"`
	AccessFailedCount int        `bson:"AccessFailedCount"`

	Roles  []string    `bson:"Roles"` // stored folded; membership is case-insensitive
	Claims []UserClaim `bson:"Claims"`
	Logins []UserLogin `bson:"Logins"`
	Tokens []UserToken `bson:"Tokens"`
}

// UserClaim is an embedded (type, value) pair.
type UserClaim struct {
	Type  string `bson:"ClaimType"`
	Value string `bson:"ClaimValue"`
}

// UserLogin is an embedded external-provider login. (LoginProvider,
// ProviderKey) identifies the login; the display name is cosmetic.
type UserLogin struct {
	LoginProvider       string `bson:"LoginProvider"`
	ProviderKey         string `bson:"ProviderKey"`
	ProviderDisplayName string `bson:"ProviderDisplayName,omitempty"`
}

// UserToken is an embedded authentication token keyed by (LoginProvider,
// Name).
type UserToken struct {
	LoginProvider string `bson:"LoginProvider"`
	Name          string `bson:"Name"`
	Value         string `bson:"Value"`
}

// NewUser constructs a record with a fresh identifier and security stamp and
// empty (never nil) embedded collections. The identifier is a 24-hex string
// compatible with the database's native object-id format and is never
// reassigned after construction.
func NewUser(userName string) *User {
	return &User{
		ID:            primitive.NewObjectID().Hex(),
		UserName:      userName,
		SecurityStamp: uuid.NewString(),
		Roles:         []string{},
		Claims:        []UserClaim{},
		Logins:        []UserLogin{},
		Tokens:        []UserToken{},
	}
}
