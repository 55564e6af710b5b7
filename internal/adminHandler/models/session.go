package models

import (
	"encoding/json"
	"errors"
	"time"
)

// AdminSession is the client-persisted admin credential: a JSON record the
// admin panel keeps in local storage and replays on every privileged call.
// It is not server-issued and not tamper-proof; the window check is the only
// thing the server enforces.
type AdminSession struct {
	Email     string `json:"email"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds at login
	IsAdmin   bool   `json:"isAdmin"`
}

// SessionTTL is the fixed admin session window.
const SessionTTL = 24 * time.Hour

var (
	ErrSessionInvalid = errors.New("invalid admin session")
	ErrSessionExpired = errors.New("admin session expired")
)

// ValidateSession parses a raw session record and checks it against the
// configured admin identity and the 24-hour window. Any parse failure, email
// mismatch or missing isAdmin flag is treated as unauthenticated.
func ValidateSession(raw string, adminEmail string, now time.Time) (AdminSession, error) {
	var session AdminSession
	if raw == "" {
		return session, ErrSessionInvalid
	}
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return session, ErrSessionInvalid
	}
	if !session.IsAdmin || session.Email != adminEmail {
		return session, ErrSessionInvalid
	}

	issued := time.UnixMilli(session.Timestamp)
	if session.Timestamp <= 0 || now.Before(issued) {
		return session, ErrSessionInvalid
	}
	if now.Sub(issued) > SessionTTL {
		return session, ErrSessionExpired
	}
	return session, nil
}

// NewSession builds the record handed back to the admin panel after a
// successful credential check.
func NewSession(email string, now time.Time) AdminSession {
	return AdminSession{
		Email:     email,
		Timestamp: now.UnixMilli(),
		IsAdmin:   true,
	}
}
