package dto

// RegisterRequest represents request to create a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	Role     string `json:"role" binding:"omitempty,oneof=vendor customer"`
	Phone    string `json:"phone" binding:"omitempty,max=32"`
}

// LoginRequest represents request to authenticate
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents user data in response
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// AuthResponse represents the issued token plus the authenticated user
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt string       `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UpdateProfileRequest represents request to update the authenticated user
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	Phone     *string `json:"phone" binding:"omitempty,max=32"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

// Validate validates that at least one field is provided for update
func (r *UpdateProfileRequest) Validate() (bool, string) {
	if r.Name == nil && r.Phone == nil && r.AvatarURL == nil {
		return false, "At least one field must be provided for update"
	}
	return true, ""
}
