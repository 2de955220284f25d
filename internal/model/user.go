package model

import "time"

// User represents a registered user as returned by the API
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Admin     bool      `json:"admin"`
	Image     string    `json:"image,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest represents form data for POST /api/users
type RegisterRequest struct {
	Name     string `url:"name" form:"name"`
	Email    string `url:"email" form:"email"`
	Password string `url:"password" form:"password"`
}

// AuthenticateRequest represents form data for POST /api/authenticate
type AuthenticateRequest struct {
	Email    string `url:"email" form:"email"`
	Password string `url:"password" form:"password"`
	Remember bool   `url:"remember,omitempty" form:"remember"`
}

// UsersResponse represents response for GET /api/users
type UsersResponse struct {
	Page  Page   `json:"page"`
	Users []User `json:"users"`
}

// PingResponse represents response for GET /api/ping
type PingResponse struct {
	Pong bool      `json:"pong"`
	Time time.Time `json:"time"`
}
