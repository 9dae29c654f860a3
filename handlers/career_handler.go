package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// GetCareerTest describes the assessment to logged-in students. The test
// itself is not built yet; like checkout, this surface only announces it.
func GetCareerTest(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"title": "Discover Your Perfect Career",
		"features": []string{
			"Personality Analysis",
			"Skills Assessment",
			"Interest Matching",
			"Career Recommendations",
		},
		"available": false,
		"message":   "The career assessment is coming soon.",
	})
}
