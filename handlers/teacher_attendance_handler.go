package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

type TeacherAttendanceHandler struct{}

func NewTeacherAttendanceHandler() *TeacherAttendanceHandler { return &TeacherAttendanceHandler{} }

// isAssigned reports whether the teacher has a TeachingAssignment for the
// section. Every teacher endpoint below gates on this.
func isAssigned(teacherID, sectionID uint) bool {
	var n int64
	database.DB.Model(&models.TeachingAssignment{}).
		Where("teacher_id = ? AND section_id = ?", teacherID, sectionID).
		Count(&n)
	return n > 0
}

// GET /teacher/my_sections
func (h *TeacherAttendanceHandler) MySections(c echo.Context) error {
	teacherID := currentUserID(c)

	var sections []models.Section
	if err := database.DB.
		Joins("JOIN teaching_assignments ON teaching_assignments.section_id = sections.id").
		Where("teaching_assignments.teacher_id = ?", teacherID).
		Preload("Course").
		Find(&sections).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, sections)
}

type openSessionReq struct {
	SectionID uint `json:"section_id"`
}

// POST /teacher/open_session
func (h *TeacherAttendanceHandler) OpenSession(c echo.Context) error {
	teacherID := currentUserID(c)

	var req openSessionReq
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.SectionID == 0 {
		return detail(c, http.StatusBadRequest, "section_id required")
	}
	if !isAssigned(teacherID, req.SectionID) {
		return detail(c, http.StatusForbidden, "Not assigned to this section")
	}

	today := time.Now().Format("2006-01-02")

	var open int64
	database.DB.Model(&models.AttendanceSession{}).
		Where("section_id = ? AND date = ? AND is_closed = ?", req.SectionID, today, false).
		Count(&open)
	if open > 0 {
		return detail(c, http.StatusBadRequest, "Session already open today")
	}

	session := models.AttendanceSession{
		SectionID: req.SectionID,
		Date:      today,
		StartTime: time.Now(),
		CreatedBy: teacherID,
		IsClosed:  false,
	}
	if err := database.DB.Create(&session).Error; err != nil {
		// the partial unique index catches a concurrent open that slipped
		// past the count above
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusBadRequest, "Session already open today")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, session)
}

type markInput struct {
	Student uint                    `json:"student"`
	Status  models.AttendanceStatus `json:"status"`
}

type markReq struct {
	SessionID uint        `json:"session_id"`
	Marks     []markInput `json:"marks"`
}

// POST /teacher/mark
//
// Upserts one mark per (session, student). Students not enrolled in the
// session's section are skipped silently; the response reports only the
// count of applied marks. This partial-success contract is deliberate.
func (h *TeacherAttendanceHandler) Mark(c echo.Context) error {
	teacherID := currentUserID(c)

	var req markReq
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.SessionID == 0 || req.Marks == nil {
		return detail(c, http.StatusBadRequest, "session_id and marks[] required")
	}

	var session models.AttendanceSession
	if err := database.DB.First(&session, req.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Session not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	if !isAssigned(teacherID, session.SectionID) {
		return detail(c, http.StatusForbidden, "Not allowed on this session")
	}
	if session.IsClosed {
		return detail(c, http.StatusBadRequest, "Session is closed")
	}

	// reject the whole batch before writing anything; an omitted status
	// defaults to present
	for i := range req.Marks {
		if req.Marks[i].Status == "" {
			req.Marks[i].Status = models.StatusPresent
		}
		if !req.Marks[i].Status.Valid() {
			return detail(c, http.StatusBadRequest, fmt.Sprintf("invalid status %q", req.Marks[i].Status))
		}
	}

	var studentIDs []uint
	database.DB.Model(&models.Enrollment{}).
		Where("section_id = ?", session.SectionID).
		Pluck("student_id", &studentIDs)
	enrolled := make(map[uint]struct{}, len(studentIDs))
	for _, id := range studentIDs {
		enrolled[id] = struct{}{}
	}

	updated := 0
	for _, m := range req.Marks {
		if _, ok := enrolled[m.Student]; !ok {
			continue
		}
		var existing models.AttendanceMark
		err := database.DB.
			Where("session_id = ? AND student_id = ?", session.ID, m.Student).
			First(&existing).Error
		switch {
		case err == nil:
			// status only; marked_at keeps the first-write timestamp
			if err := database.DB.Model(&existing).Update("status", m.Status).Error; err != nil {
				return detail(c, http.StatusInternalServerError, "update failed")
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec := models.AttendanceMark{
				SessionID: session.ID,
				StudentID: m.Student,
				Status:    m.Status,
				MarkedAt:  time.Now(),
			}
			if err := database.DB.Create(&rec).Error; err != nil {
				return detail(c, http.StatusInternalServerError, "insert failed")
			}
		default:
			return detail(c, http.StatusInternalServerError, "query failed")
		}
		updated++
	}
	return c.JSON(http.StatusOK, map[string]any{"updated": updated})
}

type closeSessionReq struct {
	SessionID uint `json:"session_id"`
}

// POST /teacher/close_session
//
// Any teacher assigned to the section may close, not just the creator.
// Closing an already-closed session is a no-op that returns the session
// unchanged, so end_time stays at the first close.
func (h *TeacherAttendanceHandler) CloseSession(c echo.Context) error {
	teacherID := currentUserID(c)

	var req closeSessionReq
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if req.SessionID == 0 {
		return detail(c, http.StatusBadRequest, "session_id required")
	}

	var session models.AttendanceSession
	if err := database.DB.First(&session, req.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Session not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	if !isAssigned(teacherID, session.SectionID) {
		return detail(c, http.StatusForbidden, "Not allowed")
	}
	if session.IsClosed {
		return c.JSON(http.StatusOK, session)
	}

	now := time.Now()
	session.IsClosed = true
	session.EndTime = &now
	if err := database.DB.Model(&session).
		Updates(map[string]any{"is_closed": true, "end_time": now}).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "update failed")
	}
	return c.JSON(http.StatusOK, session)
}

// GET /teacher/section_summary?section_id=
//
// Per-student totals over closed sessions. Excused counts as attended in
// this view (TeacherPresentSet); the student and HOD views use the
// stricter set.
func (h *TeacherAttendanceHandler) SectionSummary(c echo.Context) error {
	teacherID := currentUserID(c)

	sectionID := atoiOr(c.QueryParam("section_id"), 0)
	if sectionID == 0 {
		return detail(c, http.StatusBadRequest, "section_id required")
	}
	if !isAssigned(teacherID, uint(sectionID)) {
		return detail(c, http.StatusForbidden, "Not assigned to this section")
	}

	var totalSessions int64
	database.DB.Model(&models.AttendanceSession{}).
		Where("section_id = ? AND is_closed = ?", sectionID, true).
		Count(&totalSessions)

	type rosterRow struct {
		StudentID uint
		Username  string
	}
	var roster []rosterRow
	if err := database.DB.Table("enrollments").
		Select("enrollments.student_id AS student_id, users.username AS username").
		Joins("JOIN users ON users.id = enrollments.student_id").
		Where("enrollments.section_id = ?", sectionID).
		Order("users.username ASC").
		Scan(&roster).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}

	students := make([]map[string]any, 0, len(roster))
	for _, r := range roster {
		present := countPresent(uint(sectionID), r.StudentID, models.TeacherPresentSet)
		students = append(students, map[string]any{
			"student_id":         r.StudentID,
			"student_username":   r.Username,
			"present_or_excused": present,
			"total_sessions":     totalSessions,
			"percentage":         percentage(present, totalSessions),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"section_id":     sectionID,
		"total_sessions": totalSessions,
		"students":       students,
	})
}

// GET /teacher/session_marks?session_id=
//
// Full roster for one session; enrolled students without a mark row are
// reported as "absent" without persisting anything.
func (h *TeacherAttendanceHandler) SessionMarks(c echo.Context) error {
	teacherID := currentUserID(c)

	sessionID := atoiOr(c.QueryParam("session_id"), 0)
	if sessionID == 0 {
		return detail(c, http.StatusBadRequest, "session_id required")
	}

	var session models.AttendanceSession
	if err := database.DB.Preload("Section.Course").First(&session, sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Session not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	if !isAssigned(teacherID, session.SectionID) {
		return detail(c, http.StatusForbidden, "Not assigned to this section")
	}

	type rosterRow struct {
		StudentID uint
		Username  string
	}
	var roster []rosterRow
	if err := database.DB.Table("enrollments").
		Select("enrollments.student_id AS student_id, users.username AS username").
		Joins("JOIN users ON users.id = enrollments.student_id").
		Where("enrollments.section_id = ?", session.SectionID).
		Order("enrollments.id ASC").
		Scan(&roster).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}

	var marks []models.AttendanceMark
	database.DB.Where("session_id = ?", session.ID).Find(&marks)
	byStudent := make(map[uint]models.AttendanceStatus, len(marks))
	for _, m := range marks {
		byStudent[m.StudentID] = m.Status
	}

	rows := make([]map[string]any, 0, len(roster))
	for _, r := range roster {
		status := models.StatusAbsent
		if st, ok := byStudent[r.StudentID]; ok {
			status = st
		}
		rows = append(rows, map[string]any{
			"student_id":       r.StudentID,
			"student_username": r.Username,
			"status":           status,
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"session_id": session.ID,
		"date":       session.Date,
		"section":    session.Section.Label(),
		"marks":      rows,
	})
}

// countPresent counts a student's marks over the section's closed
// sessions whose status falls in the given present-set.
func countPresent(sectionID, studentID uint, presentSet []models.AttendanceStatus) int64 {
	var n int64
	database.DB.Model(&models.AttendanceMark{}).
		Joins("JOIN attendance_sessions ON attendance_sessions.id = attendance_marks.session_id").
		Where("attendance_sessions.section_id = ? AND attendance_sessions.is_closed = ?", sectionID, true).
		Where("attendance_marks.student_id = ?", studentID).
		Where("attendance_marks.status IN ?", presentSet).
		Count(&n)
	return n
}

// percentage returns 0.0 when no closed sessions exist yet.
func percentage(present, total int64) float64 {
	if total == 0 {
		return 0.0
	}
	return float64(present) * 100.0 / float64(total)
}
