package models

// User is the account the session belongs to. The client holds at most one.
type User struct {
	ID        int    `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type LoginCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterData struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// APIResponse is the store's generic envelope for auth endpoints.
type APIResponse[T any] struct {
	Data    T      `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// AuthResponse is what /auth/login returns: the envelope plus the bearer
// token the session persists.
type AuthResponse struct {
	Token   string `json:"token"`
	Data    User   `json:"data"`
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
