package domain

import (
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/model"
)

// User is an account row. OAuth accounts carry a provider and an empty
// password hash.
type User struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Provider     string    `json:"provider,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// StoredResume wraps a resume document with its ownership and bookkeeping
// columns. The document itself is stored as one JSON value so it round-trips
// exactly as the editor produced it.
type StoredResume struct {
	ID        uuid.UUID    `json:"-"`
	UserEmail string       `json:"-"`
	Title     string       `json:"-"`
	Document  model.Resume `json:"-"`
	CreatedAt time.Time    `json:"-"`
	UpdatedAt time.Time    `json:"-"`
}

// Title for listings: the owner's headline name, else a fixed default.
func ResumeTitle(r model.Resume) string {
	if r.PersonalInfo.FullName != "" {
		return r.PersonalInfo.FullName
	}
	return "Resume"
}
