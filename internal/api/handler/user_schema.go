package handler

// updateProfileRequest is the self-service partial update. Omitted fields
// keep their stored values; role changes are admin-only and ignored here.
type updateProfileRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty"`
}

// adminUpdateUserRequest is the admin variant of the partial update and may
// additionally change the role.
type adminUpdateUserRequest struct {
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user admin"`
}
