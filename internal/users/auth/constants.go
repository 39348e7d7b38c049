// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package auth

import "time"

// # Token Lifetimes

const (
	// AccessTokenTTL is the lifetime of an issued access token.
	AccessTokenTTL = 24 * time.Hour
)

// # Validation Bounds

const (
	NameMinLen     = 3
	NameMaxLen     = 100
	PasswordMinLen = 6
	NicknameMaxLen = 50
)
