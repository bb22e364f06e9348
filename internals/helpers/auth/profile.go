package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userModel "acadex_backend/internals/features/accounts/user/model"
	helper "acadex_backend/internals/helpers"
)

// GetStudentProfile resolves the authenticated user's student sub-profile.
// Returns 403 when the user has no student identity.
func GetStudentProfile(c *fiber.Ctx, db *gorm.DB) (*userModel.StudentModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var student userModel.StudentModel
	if err := db.Preload("User").First(&student, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "User is not a student.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve student profile")
	}
	return &student, nil
}

// GetLecturerProfile resolves the authenticated user's lecturer sub-profile.
// Returns 403 when the user has no lecturer identity.
func GetLecturerProfile(c *fiber.Ctx, db *gorm.DB) (*userModel.LecturerModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}

	var lecturer userModel.LecturerModel
	if err := db.Preload("User").First(&lecturer, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusForbidden, "User is not a lecturer.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to resolve lecturer profile")
	}
	return &lecturer, nil
}
