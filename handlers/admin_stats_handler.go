package handlers

import (
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kikilearn/learning_hub/database"
	"github.com/kikilearn/learning_hub/models"
)

type UserStatisticsResponse struct {
	TotalUsers       int64 `json:"total_users"`
	VerifiedUsers    int64 `json:"verified_users"`
	UnverifiedUsers  int64 `json:"unverified_users"`
	RecentSignups    int64 `json:"recent_signups"`
	ActiveUsers      int64 `json:"active_users"`
	VerificationRate int   `json:"verification_rate"`
}

// VerificationRate is the rounded percentage of verified users, 0 when there
// are no users at all.
func VerificationRate(verified, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(verified) / float64(total) * 100))
}

// GetUserStatistics aggregates at the store boundary instead of pulling the
// whole user table into memory. Verified means the confirmation timestamp is
// set; recent and active use fixed 7 and 30 day windows from request time.
func GetUserStatistics(c *fiber.Ctx) error {
	var response UserStatisticsResponse

	database.DB.Model(&models.User{}).Count(&response.TotalUsers)
	database.DB.Model(&models.User{}).Where("email_confirmed_at IS NOT NULL").Count(&response.VerifiedUsers)
	response.UnverifiedUsers = response.TotalUsers - response.VerifiedUsers

	oneWeekAgo := time.Now().AddDate(0, 0, -7)
	database.DB.Model(&models.User{}).Where("created_at >= ?", oneWeekAgo).Count(&response.RecentSignups)

	oneMonthAgo := time.Now().AddDate(0, 0, -30)
	database.DB.Model(&models.User{}).Where("last_sign_in_at >= ?", oneMonthAgo).Count(&response.ActiveUsers)

	response.VerificationRate = VerificationRate(response.VerifiedUsers, response.TotalUsers)

	return c.JSON(response)
}
