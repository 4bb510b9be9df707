package models

import (
	"time"

	"gorm.io/gorm"
)

type SessionStatus string

const (
	SessionPending   SessionStatus = "pending"
	SessionCompleted SessionStatus = "completed"
	SessionCanceled  SessionStatus = "canceled"
)

// SessionUnitRate is the flat price per two-hour block. Booking cost is
// derived from duration alone, never from the guide's stored hourly rate.
const SessionUnitRate = 2.0

// GuideEarningsShare is what remains for the guide after the platform fee.
const GuideEarningsShare = 0.95

type Session struct {
	gorm.Model
	StudentID   uint          `json:"student_id" gorm:"not null"`
	Student     User          `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	LocalID     uint          `json:"local_id" gorm:"not null"`
	Local       Guide         `json:"local,omitempty" gorm:"foreignKey:LocalID"`
	SessionType string        `json:"session_type" gorm:"not null"`
	Duration    int           `json:"duration" gorm:"not null"`
	TotalCost   float64       `json:"total_cost" gorm:"type:decimal(10,2);not null"`
	Status      SessionStatus `json:"status" gorm:"default:'pending'"`
	ScheduledAt time.Time     `json:"scheduled_at"`
}

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.Status == "" {
		s.Status = SessionPending
	}
	return nil
}

// SessionCost computes the booking price for a duration in hours.
func SessionCost(durationHours int) float64 {
	return float64(durationHours) / 2 * SessionUnitRate
}
