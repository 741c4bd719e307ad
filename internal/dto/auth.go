package dto

// TokenRequest carries login credentials for POST /api/token/.
type TokenRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse returns the signed access token.
type TokenResponse struct {
	Access string `json:"access"`
}
