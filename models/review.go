package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	SessionID uint    `json:"session_id" gorm:"not null"`
	Session   Session `json:"session,omitempty" gorm:"foreignKey:SessionID"`
	StudentID uint    `json:"student_id" gorm:"not null"`
	Student   User    `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	LocalID   uint    `json:"local_id" gorm:"not null"`
	Local     Guide   `json:"local,omitempty" gorm:"foreignKey:LocalID"`
	Rating    int     `json:"rating" gorm:"not null"`
	Comment   string  `json:"comment"`
}

// BeforeCreate clamps the rating into the 1-5 range.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.Rating < 1 {
		r.Rating = 1
	} else if r.Rating > 5 {
		r.Rating = 5
	}
	return nil
}

// HasExistingReview reports whether this session was already reviewed.
func (r *Review) HasExistingReview(tx *gorm.DB) (bool, error) {
	var count int64
	err := tx.Model(&Review{}).
		Where("session_id = ? AND deleted_at IS NULL", r.SessionID).
		Count(&count).Error

	return count > 0, err
}
