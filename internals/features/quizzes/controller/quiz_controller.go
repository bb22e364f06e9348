package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"acadex_backend/internals/constants"
	courseModel "acadex_backend/internals/features/courses/model"
	dto "acadex_backend/internals/features/quizzes/dto"
	model "acadex_backend/internals/features/quizzes/model"
	helper "acadex_backend/internals/helpers"
	helperAuth "acadex_backend/internals/helpers/auth"
)

type QuizController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewQuizController(db *gorm.DB) *QuizController {
	return &QuizController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/quizzes (lecturer only, must own the course)
func (ctrl *QuizController) Create(c *fiber.Ctx) error {
	var body dto.CreateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := dto.ValidateSchedule(body.StartDateTime, body.EndDateTime, time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lecturer, err := helperAuth.GetLecturerProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var course courseModel.CourseModel
	if err := ctrl.DB.First(&course, "course_id = ?", body.CourseID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Course not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load course")
	}
	if course.CourseInstructor != lecturer.ID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only create quizzes for your own courses.")
	}

	quiz, err := body.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Create(quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create quiz")
	}

	return helper.JsonCreated(c, "Quiz created", dto.NewQuizResponse(quiz))
}

// GET /api/quizzes/all?is_active=
// Students see active quizzes of courses they are enrolled in; lecturers see
// all quizzes of courses they teach, optionally filtered by ?is_active=.
// Grouped by course either way.
func (ctrl *QuizController) List(c *fiber.Ctx) error {
	role := helper.GetUserRoleFromToken(c)

	q := ctrl.DB.Model(&model.QuizModel{}).
		Preload("Course.Instructor.User")

	switch role {
	case constants.RoleStudent:
		student, err := helperAuth.GetStudentProfile(c, ctrl.DB)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where(
			"quiz_course_id IN (?)",
			ctrl.DB.Model(&courseModel.CourseEnrollmentModel{}).
				Select("enrollment_course_id").
				Where("enrollment_student_id = ?", student.ID),
		).Where("quiz_is_active = ?", true)
	case constants.RoleLecturer:
		lecturer, err := helperAuth.GetLecturerProfile(c, ctrl.DB)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where(
			"quiz_course_id IN (?)",
			ctrl.DB.Model(&courseModel.CourseModel{}).
				Select("course_id").
				Where("course_instructor_id = ?", lecturer.ID),
		)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Unsupported role")
	}

	if v := c.Query("is_active"); v != "" && role == constants.RoleLecturer {
		q = q.Where("quiz_is_active = ?", v == "true" || v == "1")
	}

	var quizzes []model.QuizModel
	if err := q.Order("quiz_start_date_time ASC").Find(&quizzes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list quizzes")
	}

	return helper.JsonOK(c, "Quizzes", groupByCourse(quizzes))
}

func groupByCourse(quizzes []model.QuizModel) []dto.CourseQuizGroup {
	order := make([]uuid.UUID, 0)
	groups := make(map[uuid.UUID]*dto.CourseQuizGroup)

	for i := range quizzes {
		qz := &quizzes[i]
		g, ok := groups[qz.QuizCourseID]
		if !ok {
			details := dto.CourseDetails{}
			if qz.Course != nil {
				details.Title = qz.Course.CourseTitle
				details.CourseCode = qz.Course.CourseCode
				if qz.Course.Instructor != nil && qz.Course.Instructor.User != nil {
					details.LecturerName = qz.Course.Instructor.User.FullName()
				}
			}
			g = &dto.CourseQuizGroup{
				CourseID:      qz.QuizCourseID,
				CourseDetails: details,
				Quizzes:       []dto.QuizResponse{},
			}
			groups[qz.QuizCourseID] = g
			order = append(order, qz.QuizCourseID)
		}
		g.Quizzes = append(g.Quizzes, dto.NewQuizResponse(qz))
	}

	out := make([]dto.CourseQuizGroup, 0, len(order))
	for _, id := range order {
		out = append(out, *groups[id])
	}
	return out
}

// PATCH /api/quizzes/detail/:quiz_id (owning lecturer only)
func (ctrl *QuizController) Update(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quiz_id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid quiz id")
	}

	var body dto.UpdateQuizRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := body.CheckUnknownFields(c.Body()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	lecturer, err := helperAuth.GetLecturerProfile(c, ctrl.DB)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var quiz model.QuizModel
	if err := ctrl.DB.Preload("Course").First(&quiz, "quiz_id = ?", quizID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return helper.JsonError(c, fiber.StatusNotFound, "Quiz not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load quiz")
	}
	if quiz.Course == nil || quiz.Course.CourseInstructor != lecturer.ID {
		return helper.JsonError(c, fiber.StatusForbidden, "You can only update quizzes for your own courses.")
	}

	if err := body.Apply(&quiz, time.Now()); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctrl.DB.Save(&quiz).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update quiz")
	}

	return helper.JsonUpdated(c, "Quiz updated", dto.NewQuizResponse(&quiz))
}
