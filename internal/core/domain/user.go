package domain

import "time"

// User models an approved account in the system.
type User struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Username       string    `json:"username" bson:"username"`
	Email          string    `json:"email" bson:"email"`
	FirstName      string    `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName       string    `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Role           Role      `json:"role" bson:"role"`
	PhoneNumber    string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	IsActive       bool      `json:"is_active" bson:"is_active"`
	IsApproved     bool      `json:"is_approved" bson:"is_approved"`
	Motivation     string    `json:"motivation,omitempty" bson:"motivation,omitempty"`
	Experience     string    `json:"experience,omitempty" bson:"experience,omitempty"`
	Specialization string    `json:"specialization,omitempty" bson:"specialization,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// RegistrationStatus is the lifecycle state of a registration request.
type RegistrationStatus string

const (
	RegistrationPending  RegistrationStatus = "pending"
	RegistrationApproved RegistrationStatus = "approved"
	RegistrationRejected RegistrationStatus = "rejected"
)

// PendingUser is a registration request awaiting an admin decision. A record
// lives in the pending set only while Status is pending; approval converts it
// into a User and removes it, rejection removes it outright.
type PendingUser struct {
	ID             string             `json:"id" bson:"_id,omitempty"`
	Username       string             `json:"username" bson:"username"`
	Email          string             `json:"email" bson:"email"`
	FirstName      string             `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName       string             `json:"last_name,omitempty" bson:"last_name,omitempty"`
	Role           Role               `json:"role" bson:"role"`
	PhoneNumber    string             `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Motivation     string             `json:"motivation" bson:"motivation"`
	Experience     string             `json:"experience,omitempty" bson:"experience,omitempty"`
	Specialization string             `json:"specialization,omitempty" bson:"specialization,omitempty"`
	Status         RegistrationStatus `json:"status" bson:"status"`
	CreatedAt      time.Time          `json:"created_at" bson:"created_at"`
	DecidedAt      *time.Time         `json:"decided_at,omitempty" bson:"decided_at,omitempty"`
}

// Credential is a password hash keyed by email, stored apart from the user
// record so the plaintext never travels further than the hashing call.
type Credential struct {
	Email        string    `json:"-" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	CreatedAt    time.Time `json:"-" bson:"created_at"`
}
