package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/locallink/local-link/db"
	"github.com/locallink/local-link/models"
	"github.com/locallink/local-link/utils"
	"github.com/robfig/cron/v3"
)

// StartCronJobs initializes and starts the scheduler for session reminders
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for sessions starting in the next hour
	_, err := c.AddFunc("* * * * *", sendSessionReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for session reminders")
}

// sendSessionReminders checks for upcoming sessions and sends reminders
func sendSessionReminders() {
	var sessions []models.Session
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Student").Preload("Local.User").
		Where("status = ? AND scheduled_at BETWEEN ? AND ?", models.SessionPending, startWindow, endWindow).
		Find(&sessions).Error
	if err != nil {
		log.Printf("Error fetching sessions for reminders: %v", err)
		return
	}

	for _, session := range sessions {
		if err := sendReminderEmail(&session); err != nil {
			log.Printf("Failed to send reminder for session %d: %v", session.ID, err)
			continue
		}
		log.Printf("Sent reminder for session %d to %s", session.ID, session.Student.Email)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(session *models.Session) error {
	subject := fmt.Sprintf("Reminder: Upcoming %s session", session.SessionType)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your %s session with %s starts at %s.</p>",
		session.Student.FullName,
		session.SessionType,
		session.Local.User.FullName,
		session.ScheduledAt.Format("2006-01-02 15:04"),
	)
	return utils.SendEmail(session.Student.Email, subject, body)
}
