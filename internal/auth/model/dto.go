// Package model contains request/response types for the auth module.
package model

import userModel "github.com/tbrandt27/football-pick-em-sub003/internal/user/model"

// RegisterRequest represents the registration payload. InviteToken is
// optional; when present the new account joins the invitation's pool.
type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	InviteToken string `json:"invite_token"`
}

// LoginRequest represents the login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued token and the authenticated user.
type AuthResponse struct {
	Token string          `json:"token"`
	User  *userModel.User `json:"user"`
}
