package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Ganaa-shark09/Attendance-Management/config"
	"github.com/Ganaa-shark09/Attendance-Management/handlers"
	"github.com/Ganaa-shark09/Attendance-Management/middlewares"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

// Register wires all HTTP routes.
func Register(e *echo.Echo, cfg *config.Config) {
	// ===== Handlers (shared singletons) =====
	auth := handlers.NewAuthHandler(cfg.JWTSecret)
	dep := handlers.NewDepartmentHandler()
	crs := handlers.NewCourseHandler()
	sec := handlers.NewSectionHandler()
	asg := handlers.NewAssignmentHandler()
	enr := handlers.NewEnrollmentHandler()
	ta := handlers.NewTeacherAttendanceHandler()
	sa := handlers.NewStudentAttendanceHandler()
	rep := handlers.NewHODReportHandler()

	// ===== Public =====
	e.GET("/healthz", handlers.Health)
	e.POST("/auth/login", auth.Login)

	authMW := middlewares.RequireAuth(cfg.JWTSecret)

	// ===== Teacher routes =====
	teacher := e.Group("/teacher", authMW, middlewares.RequireRole(models.RoleTeacher))
	teacher.GET("/my_sections", ta.MySections)
	teacher.POST("/open_session", ta.OpenSession)
	teacher.POST("/mark", ta.Mark)
	teacher.POST("/close_session", ta.CloseSession)
	teacher.GET("/section_summary", ta.SectionSummary)
	teacher.GET("/session_marks", ta.SessionMarks)

	// ===== Student routes =====
	student := e.Group("/student", authMW, middlewares.RequireRole(models.RoleStudent))
	student.GET("/my_sections", sa.MySections)
	student.GET("/my_attendance", sa.MyAttendance)
	student.GET("/marks", sa.Marks)

	// ===== HOD routes (roster setup + reports) =====
	hod := e.Group("/hod", authMW, middlewares.RequireRole(models.RoleHOD))

	hod.GET("/section_summary", rep.SectionSummary)
	hod.POST("/users", auth.CreateUser)

	hod.GET("/departments", dep.List)
	hod.GET("/departments/:id", dep.Get)
	hod.POST("/departments", dep.Create)
	hod.PUT("/departments/:id", dep.Update)
	hod.DELETE("/departments/:id", dep.Delete)

	hod.GET("/courses", crs.List)
	hod.GET("/courses/:id", crs.Get)
	hod.POST("/courses", crs.Create)
	hod.PUT("/courses/:id", crs.Update)
	hod.DELETE("/courses/:id", crs.Delete)

	hod.GET("/sections", sec.List)
	hod.GET("/sections/:id", sec.Get)
	hod.POST("/sections", sec.Create)
	hod.PUT("/sections/:id", sec.Update)
	hod.DELETE("/sections/:id", sec.Delete)

	hod.GET("/assignments", asg.List)
	hod.POST("/assignments", asg.Create)
	hod.DELETE("/assignments/:id", asg.Delete)

	hod.GET("/enrollments", enr.List)
	hod.POST("/enrollments", enr.Create)
	hod.DELETE("/enrollments/:id", enr.Delete)
}
