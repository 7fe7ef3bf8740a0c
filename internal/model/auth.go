package model

// TokenRequest is the form body of POST /token.
type TokenRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// PrivateResponse echoes the presented bearer token (diagnostic only).
type PrivateResponse struct {
	Token string `json:"token"`
}
