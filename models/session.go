package models

import "time"

// SessionKey is the key under which the current session is persisted in the
// client session store. The version segment allows the stored layout to
// change without reading stale records.
const SessionKey = "guestnama/v1/session"

// Session is the authenticated identity kept by the client for the lifetime
// of the process. It is a User without the password hash and carries no
// expiry: validity is confirmed by the storage service, not by the record.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// IsZero reports whether s holds no identity.
func (s Session) IsZero() bool {
	return s.ID == ""
}
