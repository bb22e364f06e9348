package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseController "acadex_backend/internals/features/courses/controller"
)

func CoursesRoutes(r fiber.Router, db *gorm.DB) {
	courses := courseController.NewCourseController(db)
	enrollments := courseController.NewEnrollmentController(db)

	g := r.Group("/courses")
	g.Post("/", courses.Create)
	g.Get("/", courses.List)

	// literal route before the :course_id ones
	g.Get("/students/enrollments", enrollments.MyEnrollments)

	g.Post("/:course_id/enroll", enrollments.Enroll)
	g.Get("/:course_id/enroll", enrollments.Roster)
}
