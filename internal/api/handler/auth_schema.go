package handler

// messageResponse is the confirmation envelope used by delete endpoints and
// mirrored by the central error handler for failures.
type messageResponse struct {
	Message string `json:"message"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// authResponse is returned by both register and login: the public user
// fields plus a freshly issued bearer token.
type authResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
	Token    string `json:"token"`
}
