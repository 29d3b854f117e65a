package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

type EnrollmentHandler struct{}

func NewEnrollmentHandler() *EnrollmentHandler { return &EnrollmentHandler{} }

type enrollmentPayload struct {
	StudentID uint `json:"student_id" validate:"required"`
	SectionID uint `json:"section_id" validate:"required"`
}

func (h *EnrollmentHandler) List(c echo.Context) error {
	var items []models.Enrollment
	tx := database.DB.Preload("Section.Course").Order("id ASC")
	if sectionID := atoiOr(c.QueryParam("section_id"), 0); sectionID != 0 {
		tx = tx.Where("section_id = ?", sectionID)
	}
	if err := tx.Find(&items).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *EnrollmentHandler) Create(c echo.Context) error {
	var p enrollmentPayload
	if err := c.Bind(&p); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	e := models.Enrollment{StudentID: p.StudentID, SectionID: p.SectionID}
	if err := database.DB.Create(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "student already enrolled in section")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EnrollmentHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Enrollment{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return detail(c, http.StatusInternalServerError, "delete failed")
	}
	if res.RowsAffected == 0 {
		return detail(c, http.StatusNotFound, "Enrollment not found")
	}
	return c.NoContent(http.StatusNoContent)
}
