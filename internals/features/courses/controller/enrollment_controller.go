package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "acadex_backend/internals/features/courses/dto"
	model "acadex_backend/internals/features/courses/model"
	helper "acadex_backend/internals/helpers"
	helperAuth "acadex_backend/internals/helpers/auth"
)

type EnrollmentController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEnrollmentController(db *gorm.DB) *EnrollmentController {
	return &EnrollmentController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/courses/:course_id/enroll (student only)
func (ctrl *EnrollmentController) Enroll(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	student, err := helperAuth.GetStudentProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	enrollment := model.CourseEnrollmentModel{
		EnrollmentStudentID: student.ID,
		EnrollmentCourseID:  course.CourseID,
	}
	// the unique (student, course) index settles concurrent enrolls
	if err := ctrl.DB.Create(&enrollment).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusBadRequest, "This student is already enrolled in this course.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enroll")
	}

	enrollment.Student = student
	enrollment.Course = &course
	return helper.JsonCreated(c, "Enrolled", dto.NewEnrollmentResponse(&enrollment))
}

// GET /api/courses/:course_id/enroll?page=&per_page= (instructor roster)
func (ctrl *EnrollmentController) Roster(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(c.Params("course_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course id")
	}

	lecturer, err := helperAuth.GetLecturerProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course model.CourseModel
	if err := ctrl.DB.First(&course,
		"course_id = ? AND course_instructor_id = ?", courseID, lecturer.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found.")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.Model(&model.CourseEnrollmentModel{}).
		Where("enrollment_course_id = ?", course.CourseID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	var enrollments []model.CourseEnrollmentModel
	if err := ctrl.DB.Preload("Student.User").Preload("Course").
		Where("enrollment_course_id = ?", course.CourseID).
		Order("enrollment_date ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	out := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, dto.NewEnrollmentResponse(&enrollments[i]))
	}
	return helper.JsonList(c, "Enrollments", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/courses/students/enrollments (student's own list)
func (ctrl *EnrollmentController) MyEnrollments(c *fiber.Ctx) error {
	student, err := helperAuth.GetStudentProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var enrollments []model.CourseEnrollmentModel
	if err := ctrl.DB.Preload("Student.User").Preload("Course.Instructor.User").
		Where("enrollment_student_id = ?", student.ID).
		Order("enrollment_date ASC").
		Find(&enrollments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list enrollments")
	}

	out := make([]dto.EnrollmentResponse, 0, len(enrollments))
	for i := range enrollments {
		out = append(out, dto.NewEnrollmentResponse(&enrollments[i]))
	}
	return helper.JsonOK(c, "My enrollments", out)
}
