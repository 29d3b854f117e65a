package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

type HODReportHandler struct{}

func NewHODReportHandler() *HODReportHandler { return &HODReportHandler{} }

// GET /hod/section_summary?section_id=
//
// Cross-section view, no assignment scoping. Uses StandardPresentSet, so
// an excused mark lowers the percentage relative to the teacher view of
// the same data.
func (h *HODReportHandler) SectionSummary(c echo.Context) error {
	sectionID := atoiOr(c.QueryParam("section_id"), 0)
	if sectionID == 0 {
		return detail(c, http.StatusBadRequest, "section_id required")
	}

	var total int64
	database.DB.Model(&models.AttendanceSession{}).
		Where("section_id = ? AND is_closed = ?", sectionID, true).
		Count(&total)

	var studentIDs []uint
	if err := database.DB.Model(&models.Enrollment{}).
		Where("section_id = ?", sectionID).
		Order("id ASC").
		Pluck("student_id", &studentIDs).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}

	students := make([]map[string]any, 0, len(studentIDs))
	for _, sid := range studentIDs {
		present := countPresent(uint(sectionID), sid, models.StandardPresentSet)
		students = append(students, map[string]any{
			"student_id": sid,
			"present":    present,
			"total":      total,
			"percentage": percentage(present, total),
		})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"section_id": sectionID,
		"students":   students,
	})
}
