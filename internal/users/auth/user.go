// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

/*
Package auth implements the user identity layer.

It defines the core User entity and the logic for registration,
authentication, and token revocation.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/cinelog/cinelog/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Cinelog platform.
type User struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Nickname     string       `json:"nickname"`
	BirthDate    time.Time    `json:"birthDate"`
	Active       bool         `json:"active"`
	Role         sec.UserRole `json:"role"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Reviewer is the reduced identity attached to reviews on read paths.
type Reviewer struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldNickname  = "nickname"
	FieldBirthDate = "birthDate"
	FieldActive    = "active"
	FieldRole      = "role"
)

// BirthDateLayouts are the accepted wire formats for the birthDate field,
// tried in order during coercion.
var BirthDateLayouts = []string{"2006-01-02", time.RFC3339}

// ParseBirthDate coerces a string-encoded date into a time.Time.
func ParseBirthDate(raw string) (time.Time, bool) {
	for _, layout := range BirthDateLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
