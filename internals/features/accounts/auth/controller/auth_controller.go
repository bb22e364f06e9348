package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"acadex_backend/internals/constants"
	dto "acadex_backend/internals/features/accounts/auth/dto"
	service "acadex_backend/internals/features/accounts/auth/service"
	userModel "acadex_backend/internals/features/accounts/user/model"
	helper "acadex_backend/internals/helpers"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{
		DB:        db,
		Validator: validator.New(),
	}
}

func validationErrorsToMap(err error) map[string][]string {
	out := map[string][]string{}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			field := strings.ToLower(fe.Field())
			out[field] = append(out[field], fe.Tag())
		}
	} else {
		out["non_field_errors"] = []string{err.Error()}
	}
	return out
}

/* =======================
   Registration
======================= */

// POST /api/accounts/student/register
func (ctrl *AuthController) RegisterStudent(c *fiber.Ctx) error {
	var body dto.RegisterStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	// user + sub-profile in one tx; no residue on failure
	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			FirstName: strings.TrimSpace(body.FirstName),
			LastName:  strings.TrimSpace(body.LastName),
			Email:     body.Email,
			Password:  hash,
			Role:      constants.RoleStudent,
			IsActive:  true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		student := userModel.StudentModel{
			UserID:       user.ID,
			MatricNumber: strings.ToUpper(strings.TrimSpace(body.MatricNumber)),
		}
		return tx.Create(&student).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, map[string][]string{
				"matric_number": {"a user with this matric number or email already exists"},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Student registered", dto.RegisterStudentResponse{
		MatricNumber: strings.ToUpper(strings.TrimSpace(body.MatricNumber)),
		FirstName:    strings.TrimSpace(body.FirstName),
		LastName:     strings.TrimSpace(body.LastName),
		Email:        body.Email,
	})
}

// POST /api/accounts/lecturer/register
func (ctrl *AuthController) RegisterLecturer(c *fiber.Ctx) error {
	var body dto.RegisterLecturerRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	hash, err := service.HashPassword(body.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		user := userModel.UserModel{
			FirstName: strings.TrimSpace(body.FirstName),
			LastName:  strings.TrimSpace(body.LastName),
			Email:     body.Email,
			Password:  hash,
			Role:      constants.RoleLecturer,
			IsActive:  true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		lecturer := userModel.LecturerModel{
			UserID:  user.ID,
			StaffID: strings.ToUpper(strings.TrimSpace(body.StaffID)),
		}
		return tx.Create(&lecturer).Error
	})
	if err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, map[string][]string{
				"staff_id": {"a user with this staff id or email already exists"},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Registration failed")
	}

	return helper.JsonCreated(c, "Lecturer registered", dto.RegisterLecturerResponse{
		StaffID:   strings.ToUpper(strings.TrimSpace(body.StaffID)),
		FirstName: strings.TrimSpace(body.FirstName),
		LastName:  strings.TrimSpace(body.LastName),
		Email:     body.Email,
	})
}

/* =======================
   Tokens
======================= */

// POST /api/accounts/token
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	user, err := service.Authenticate(ctrl.DB, body.Username, body.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid credentials")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	access, refresh, err := service.IssueTokenPair(ctrl.DB, user, c.Get("User-Agent"), c.IP())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue tokens")
	}

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Access:    access,
		Refresh:   refresh,
		UserID:    strings.TrimSpace(body.Username),
		UserRole:  user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	})
}

// POST /api/accounts/token/refresh
func (ctrl *AuthController) Refresh(c *fiber.Ctx) error {
	var body dto.RefreshRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonValidationError(c, validationErrorsToMap(err))
	}

	access, refresh, err := service.RotateRefreshToken(ctrl.DB, body.Refresh, c.Get("User-Agent"), c.IP())
	if err != nil {
		if errors.Is(err, service.ErrUnknownRefreshToken) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Refresh token invalid")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Refresh failed")
	}

	return helper.JsonOK(c, "Token refreshed", dto.RefreshResponse{
		Access:  access,
		Refresh: refresh,
	})
}

// POST /api/accounts/logout (authenticated)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	raw := helper.GetRawAccessToken(c)
	if raw == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Not logged in")
	}
	if err := service.BlacklistAccessToken(ctrl.DB, raw); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
	}
	return helper.JsonOK(c, "Logged out", nil)
}
