package models

import (
	"time"
)

type UserType string

const (
	TypeStudent UserType = "student"
	TypeLocal   UserType = "local"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"unique;not null"`
	Email        string    `json:"email" gorm:"unique;not null"`
	Password     string    `json:"password,omitempty" gorm:"not null"`
	UserType     UserType  `json:"user_type" gorm:"not null"`
	FullName     string    `json:"full_name" gorm:"not null"`
	Phone        string    `json:"phone"`
	GuideProfile *Guide    `json:"guide_profile,omitempty" gorm:"foreignKey:UserID"`
	Sessions     []Session `json:"sessions,omitempty" gorm:"foreignKey:StudentID"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
