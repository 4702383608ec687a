package models

// User represents a registered player account.
//
// The password column stores the raw value the client sent at registration
// time and the Password field serializes by default, so user listings expose
// it verbatim. The login flow builds its own response and never includes the
// field. See the PasswordVerifier seam in the service package before relying
// on the stored value anywhere else.
type User struct {
	ID       int64   `db:"id" json:"id"`
	Username string  `db:"username" json:"username"`
	Password string  `db:"password" json:"password,omitempty"`
	Email    string  `db:"email" json:"email"`
	Role     *string `db:"role" json:"role,omitempty"`
}
