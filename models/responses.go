package models

// APIResponse is the uniform envelope wrapped around every response body.
//
// Success responses carry success=true, a translated message and the
// payload. Error responses carry success=false, a translated (or fixed)
// message and a null payload.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Success builds a successful envelope around data.
func Success[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Failure builds an error envelope. Data is always serialized as null.
func Failure(message string) APIResponse[any] {
	return APIResponse[any]{
		Success: false,
		Message: message,
		Data:    nil,
	}
}

// AuthResponse is the payload returned by register and login.
type AuthResponse struct {
	Token    string `json:"token"`
	Type     string `json:"type"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// VersionResponse is the payload of the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
}

// HealthResponse is the payload of the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}
