package model

import "time"

// User is a registered account as stored in the database.
type User struct {
	ID        int64
	Name      string
	Email     string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SignUpRequest is the body of a sign up request.
type SignUpRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// AuthResponse carries the session token issued after sign up.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
