package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/kikilearn/learning_hub/database"
	"github.com/kikilearn/learning_hub/models"
	"github.com/kikilearn/learning_hub/notifications"
)

// SendClassReminders emails students whose next class starts in about an hour.
// The 5 minute window matches the cron cadence so each class is picked up once.
func SendClassReminders() {
	log.Println("Running job: SendClassReminders...")

	now := time.Now()
	lowerBound := now.Add(60 * time.Minute)
	upperBound := now.Add(65 * time.Minute)

	var upcoming []models.Enrollment
	err := database.DB.
		Preload("Student").
		Preload("Course").
		Where("status = ? AND next_class_at BETWEEN ? AND ?", "enrolled", lowerBound, upperBound).
		Find(&upcoming).Error
	if err != nil {
		log.Printf("Error checking for upcoming classes: %v", err)
		return
	}

	for _, enrollment := range upcoming {
		log.Printf("Sending class reminder for enrollment ID: %s", enrollment.ID)

		emailSubject := "Reminder: Your Class Starts in 1 Hour!"
		emailBody := fmt.Sprintf(
			"<h1>Class Reminder</h1><p>Hi %s,</p><p>Your <b>%s</b> class is scheduled to start at %s.</p>",
			enrollment.Student.FullName,
			enrollment.Course.Title,
			enrollment.NextClassAt.Format(time.Kitchen),
		)

		go notifications.SendEmail(enrollment.Student.FullName, enrollment.Student.Email, emailSubject, emailBody)
	}
}
