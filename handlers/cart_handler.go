package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kikilearn/learning_hub/database"
	"github.com/kikilearn/learning_hub/models"
	"gorm.io/gorm"
)

type AddToCartRequest struct {
	CourseID string `json:"course_id" validate:"required,uuid"`
}

// CartTotal is the display total: the sum of current prices. The struck-through
// original_price is presentation only and never enters the math.
func CartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Course.Price
	}
	return total
}

func GetMyCart(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var items []models.CartItem
	if err := database.DB.Preload("Course").Where("user_id = ?", userID).Order("created_at desc").Find(&items).Error; err != nil {
		log.Printf("Error fetching cart for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load cart"})
	}

	return c.JSON(fiber.Map{
		"items": items,
		"count": len(items),
		"total": CartTotal(items),
	})
}

func AddToCart(c *fiber.Ctx) error {
	userID, err := uuid.Parse(currentUserID(c))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid user identity"})
	}

	var req AddToCartRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Migrations skip foreign keys, so guard against carting a course id
	// that does not exist.
	var course models.Course
	if err := database.DB.First(&course, "id = ?", req.CourseID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Course not found"})
	}

	item := models.CartItem{
		UserID:   userID,
		CourseID: course.ID,
	}
	if err := database.DB.Create(&item).Error; err != nil {
		// A second add of the same course is an expected outcome, not a failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"already_in_cart": true,
				"message":         "This course is already in your cart.",
			})
		}
		log.Printf("Error adding to cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add course to cart"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Course added to cart successfully", "item": item})
}

// RemoveFromCart deletes by id AND owner, so one user can never remove a row
// from another user's cart no matter what id they post.
func RemoveFromCart(c *fiber.Ctx) error {
	userID := currentUserID(c)
	cartItemID := c.Params("cartItemId")

	result := database.DB.Where("id = ? AND user_id = ?", cartItemID, userID).Delete(&models.CartItem{})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove course from cart"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cart item not found"})
	}

	return c.JSON(fiber.Map{"message": "Course removed from cart"})
}

// Checkout is a stub on purpose: no Payment or Enrollment row is created until
// a gateway integration lands.
func Checkout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Checkout is coming soon. We will notify you once payments are available.",
	})
}
