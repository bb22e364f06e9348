package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "acadex_backend/internals/features/courses/dto"
	model "acadex_backend/internals/features/courses/model"
	helper "acadex_backend/internals/helpers"
	helperAuth "acadex_backend/internals/helpers/auth"
)

type CourseController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewCourseController(db *gorm.DB) *CourseController {
	return &CourseController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/courses (lecturer only)
func (ctrl *CourseController) Create(c *fiber.Ctx) error {
	var body dto.CreateCourseRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lecturer, err := helperAuth.GetLecturerProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	course := model.CourseModel{
		CourseCode:       strings.ToUpper(strings.TrimSpace(body.CourseCode)),
		CourseTitle:      strings.TrimSpace(body.Title),
		CourseDesc:       body.Description,
		CourseInstructor: lecturer.ID,
	}
	if err := ctrl.DB.Create(&course).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonValidationError(c, map[string][]string{
				"course_code": {"You already have a course with this code."},
			})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}

	course.Instructor = lecturer
	return helper.JsonCreated(c, "Course created", dto.NewCourseResponse(&course))
}

// GET /api/courses?search=&page=&per_page=
// Case-insensitive substring over title, code and instructor name,
// OR-combined, ordered by course_code.
func (ctrl *CourseController) List(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.CourseModel{}).
		Joins("JOIN lecturers ON lecturers.id = courses.course_instructor_id").
		Joins("JOIN users ON users.id = lecturers.user_id")

	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"courses.course_title ILIKE ? OR courses.course_code ILIKE ? OR users.first_name ILIKE ? OR users.last_name ILIKE ?",
			like, like, like, like,
		)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	var courses []model.CourseModel
	if err := q.Preload("Instructor.User").
		Order("courses.course_code ASC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&courses).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}

	out := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		out = append(out, dto.NewCourseResponse(&courses[i]))
	}
	return helper.JsonList(c, "Courses", out, helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}
