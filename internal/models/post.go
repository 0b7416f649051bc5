package models

import "time"

// Post is a text post written by a user.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	AuthorID  uint      `json:"authorId" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthorProfile is the part of the author's profile exposed on posts.
type AuthorProfile struct {
	Name   string  `json:"name"`
	Avatar *string `json:"avatar"`
}

// Author is the reduced user representation attached to posts.
// Profile is nil when the author has deleted their profile.
type Author struct {
	ID      uint           `json:"id"`
	Email   string         `json:"email"`
	Profile *AuthorProfile `json:"profile"`
}

// PostView is a post joined with its author projection.
type PostView struct {
	ID        uint      `json:"id"`
	Content   string    `json:"content"`
	AuthorID  uint      `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Author    Author    `json:"author"`
}
