package models

// RegisterRequest is the body accepted by the register endpoint.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body accepted by the login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ToUser converts the request into a [User] carrying the plaintext password.
func (r RegisterRequest) ToUser() User {
	return User{
		Username: r.Username,
		Email:    r.Email,
		Password: r.Password,
	}
}
