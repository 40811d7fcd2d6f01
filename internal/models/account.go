package models

import "time"

// AccountDB represents a host or client row in the database.
// FunFact is only stored for clients and is always nil for hosts.
type AccountDB struct {
	ID           int64     `json:"id" db:"id"`                       // Primary key
	FullName     string    `json:"full_name" db:"full_name"`         // Display name
	Email        string    `json:"email" db:"email"`                 // Unique login email
	PasswordHash string    `json:"-" db:"password_hash"`             // bcrypt hash
	Bio          *string   `json:"bio,omitempty" db:"bio"`           // Free-form profile text
	FunFact      *string   `json:"fun_fact,omitempty" db:"fun_fact"` // Clients only
	MobileNumber *string   `json:"mobile_number,omitempty" db:"mobile_number"`
	IDNumber     *string   `json:"id_number,omitempty" db:"id_number"` // Driver's licence or passport number
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// AccountProfile holds the optional profile fields of an account.
// A nil field leaves the stored value unchanged.
type AccountProfile struct {
	Bio          *string
	FunFact      *string
	MobileNumber *string
	IDNumber     *string
}
