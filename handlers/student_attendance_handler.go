package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

type StudentAttendanceHandler struct{}

func NewStudentAttendanceHandler() *StudentAttendanceHandler { return &StudentAttendanceHandler{} }

func isEnrolled(studentID, sectionID uint) bool {
	var n int64
	database.DB.Model(&models.Enrollment{}).
		Where("student_id = ? AND section_id = ?", studentID, sectionID).
		Count(&n)
	return n > 0
}

// GET /student/my_sections
func (h *StudentAttendanceHandler) MySections(c echo.Context) error {
	studentID := currentUserID(c)

	var sections []models.Section
	if err := database.DB.
		Joins("JOIN enrollments ON enrollments.section_id = sections.id").
		Where("enrollments.student_id = ?", studentID).
		Preload("Course").
		Find(&sections).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, sections)
}

// GET /student/my_attendance[?section_id=]
//
// One row per enrolled section (or just the requested one). Excused does
// not count as attended here — StandardPresentSet, not the teacher view.
func (h *StudentAttendanceHandler) MyAttendance(c echo.Context) error {
	studentID := currentUserID(c)
	sectionID := atoiOr(c.QueryParam("section_id"), 0)

	tx := database.DB.
		Joins("JOIN enrollments ON enrollments.section_id = sections.id").
		Where("enrollments.student_id = ?", studentID).
		Preload("Course")
	if sectionID != 0 {
		tx = tx.Where("sections.id = ?", sectionID)
	}

	var sections []models.Section
	if err := tx.Find(&sections).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}

	out := make([]map[string]any, 0, len(sections))
	for i := range sections {
		sec := &sections[i]

		var total int64
		database.DB.Model(&models.AttendanceSession{}).
			Where("section_id = ? AND is_closed = ?", sec.ID, true).
			Count(&total)

		present := countPresent(sec.ID, studentID, models.StandardPresentSet)

		out = append(out, map[string]any{
			"section":         sec.Label(),
			"total_sessions":  total,
			"present_or_late": present,
			"percentage":      percentage(present, total),
		})
	}
	return c.JSON(http.StatusOK, out)
}

// GET /student/marks?section_id=
//
// One row per closed session, ordered by (date, start_time); a session
// without a mark row shows up as "absent".
func (h *StudentAttendanceHandler) Marks(c echo.Context) error {
	studentID := currentUserID(c)

	sectionID := atoiOr(c.QueryParam("section_id"), 0)
	if sectionID == 0 {
		return detail(c, http.StatusBadRequest, "section_id required")
	}
	if !isEnrolled(studentID, uint(sectionID)) {
		return detail(c, http.StatusForbidden, "Not enrolled in this section")
	}

	var sessions []models.AttendanceSession
	if err := database.DB.
		Where("section_id = ? AND is_closed = ?", sectionID, true).
		Order("date ASC, start_time ASC").
		Find(&sessions).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}

	rows := make([]map[string]any, 0, len(sessions))
	for _, s := range sessions {
		status := models.StatusAbsent
		var mark models.AttendanceMark
		err := database.DB.
			Where("session_id = ? AND student_id = ?", s.ID, studentID).
			First(&mark).Error
		if err == nil {
			status = mark.Status
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusInternalServerError, "query failed")
		}
		rows = append(rows, map[string]any{
			"session_id": s.ID,
			"date":       s.Date,
			"status":     status,
		})
	}
	return c.JSON(http.StatusOK, rows)
}
