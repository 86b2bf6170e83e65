package models

// LoginRequest defines the structure for ops login requests
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed bearer token
type LoginResponse struct {
	Token string `json:"token"`
}
