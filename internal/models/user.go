package models

import "time"

// User is an account that can author posts. Password holds the bcrypt hash.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"` // never serialized
	Profile   *Profile  `json:"profile,omitempty" gorm:"foreignKey:UserID"`
	Posts     []Post    `json:"-" gorm:"foreignKey:AuthorID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WithoutPassword returns a copy of the user with the password hash cleared.
func (u User) WithoutPassword() *User {
	u.Password = ""
	return &u
}
