package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

type AssignmentHandler struct{}

func NewAssignmentHandler() *AssignmentHandler { return &AssignmentHandler{} }

type assignmentPayload struct {
	TeacherID uint `json:"teacher_id" validate:"required"`
	SectionID uint `json:"section_id" validate:"required"`
}

func (h *AssignmentHandler) List(c echo.Context) error {
	var items []models.TeachingAssignment
	tx := database.DB.Preload("Section.Course").Order("id ASC")
	if sectionID := atoiOr(c.QueryParam("section_id"), 0); sectionID != 0 {
		tx = tx.Where("section_id = ?", sectionID)
	}
	if err := tx.Find(&items).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *AssignmentHandler) Create(c echo.Context) error {
	var p assignmentPayload
	if err := c.Bind(&p); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	a := models.TeachingAssignment{TeacherID: p.TeacherID, SectionID: p.SectionID}
	if err := database.DB.Create(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "teacher already assigned to section")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *AssignmentHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.TeachingAssignment{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return detail(c, http.StatusInternalServerError, "delete failed")
	}
	if res.RowsAffected == 0 {
		return detail(c, http.StatusNotFound, "Assignment not found")
	}
	return c.NoContent(http.StatusNoContent)
}
