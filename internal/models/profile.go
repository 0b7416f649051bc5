package models

// Profile holds the public details of a user. There is at most one per user.
type Profile struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	UserID uint    `json:"userId" gorm:"uniqueIndex;not null"`
	Name   string  `json:"name" gorm:"type:varchar(100);not null"`
	Bio    *string `json:"bio" gorm:"type:text"`
	Avatar *string `json:"avatar" gorm:"type:varchar(500)"`
}
