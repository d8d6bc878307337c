package models

// Credentials is the body of POST /login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration is the body of POST /register.
type Registration struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Name      string `json:"name"`
}

// AuthResponse is what /login and /register answer on success.
type AuthResponse struct {
	Token string `json:"token"`
}

// ErrorPayload is the body the API sends with a failed request.
type ErrorPayload struct {
	Msg string `json:"msg"`
}
