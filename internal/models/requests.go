package models

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email    string  `json:"email" validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required"`
	Name     string  `json:"name" validate:"required,max=100"`
	Bio      *string `json:"bio"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	AuthorID uint   `json:"authorId" validate:"required"`
	Content  string `json:"content" validate:"required"`
}

// UpdatePostRequest carries the post fields to change. Nil fields are left untouched.
type UpdatePostRequest struct {
	Content *string `json:"content" validate:"omitnil,min=1"`
}

// UpdateProfileRequest carries the profile fields to change. Absent fields
// are left untouched; an explicit null clears bio or avatar.
type UpdateProfileRequest struct {
	Name   *string        `json:"name" validate:"omitnil,min=1,max=100"`
	Bio    NullableString `json:"bio"`
	Avatar NullableString `json:"avatar" validate:"omitempty,max=500"`
}
