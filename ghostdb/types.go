package ghostdb

import (
	"time"
)

// StaffUser is the slice of Ghost's users table the bridge reads.
type StaffUser struct {
	ID     string `db:"id"`
	Name   string `db:"name"`
	Email  string `db:"email"`
	Status string `db:"status"`
}

// StaffSessionRow is a row for Ghost's sessions table. SessionData is the
// serialized express-session payload Ghost stores alongside the session ID.
type StaffSessionRow struct {
	ID        string
	SessionID string
	Data      SessionData
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SessionData mirrors the JSON document Ghost's session middleware persists
// in sessions.session_data. Field names and casing are part of the
// compatibility contract.
type SessionData struct {
	Cookie    SessionCookie `json:"cookie"`
	UserID    string        `json:"user_id"`
	Origin    string        `json:"origin"`
	UserAgent string        `json:"user_agent"`
	IP        string        `json:"ip"`
	Verified  bool          `json:"verified"`
}

// SessionCookie is the cookie policy block of SessionData.
type SessionCookie struct {
	OriginalMaxAge int64     `json:"originalMaxAge"`
	Expires        time.Time `json:"expires"`
	Secure         bool      `json:"secure"`
	HTTPOnly       bool      `json:"httpOnly"`
	Path           string    `json:"path"`
	SameSite       string    `json:"sameSite"`
}

// MagicTokenRow is a row for Ghost's tokens table. Usage tracking columns
// (first_used_at, used_count) are initialized by the insert and owned by
// Ghost's redemption logic from then on.
type MagicTokenRow struct {
	ID        string
	Token     string
	Data      MagicTokenData
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MagicTokenData is the opaque payload Ghost's magic-link redemption reads
// back out of tokens.data.
type MagicTokenData struct {
	Email string `json:"email"`
	Type  string `json:"type"`
}
