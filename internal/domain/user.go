// internal/domain/user.go
package domain

// User represents a registered shopper.
// The password is stored and compared as plaintext; hashing is a known
// non-goal of this demo.
type User struct {
	Username string  `json:"username"` // Natural key; repeated signup overwrites
	Password string  `json:"password"`
	PhotoURL *string `json:"photo_url,omitempty"` // Optional avatar link
}

// NewUser creates a new User instance.
func NewUser(username, password string, photoURL *string) *User {
	return &User{
		Username: username,
		Password: password,
		PhotoURL: photoURL,
	}
}
