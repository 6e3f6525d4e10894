package model

import "time"

// Organiser is a tenant account. Each organiser owns zero or more
// booking pages and authenticates with email and password.
//
// Fields:
//  ID           – primary key identifier.
//  Email        – unique login email, stored lower-cased.
//  PasswordHash – bcrypt hash of the password.
//  IsActive     – whether the account may log in.
//  IsStaff      – grants access to administrative endpoints.
//  CreatedAt    – creation timestamp.
type Organiser struct {
	ID           uint64    // organisers.id
	Email        string    // organisers.email
	PasswordHash string    // organisers.password_hash
	IsActive     bool      // organisers.is_active
	IsStaff      bool      // organisers.is_staff
	CreatedAt    time.Time // organisers.created_at
}
