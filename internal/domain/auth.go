// internal/domain/auth.go
package domain

// Token is the credential payload returned by a successful login.
// Every login returns the same fixed literal; real token issuance is
// out of scope for this demo.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Profile is the payload returned by the profile endpoint.
type Profile struct {
	Username string `json:"username"`
	PhotoURL string `json:"photo_url"`
}
