package dto

// CredentialsRequest describes username/password payload for register and login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse echoes the newly created account.
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// TokenResponse carries the issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}
