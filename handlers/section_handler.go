package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

type SectionHandler struct{}

func NewSectionHandler() *SectionHandler { return &SectionHandler{} }

type sectionPayload struct {
	CourseID uint   `json:"course_id" validate:"required"`
	Name     string `json:"name" validate:"required,max=50"`
	Semester string `json:"semester" validate:"max=20"`
}

func (h *SectionHandler) List(c echo.Context) error {
	var items []models.Section
	if err := database.DB.Preload("Course.Department").Order("id ASC").Find(&items).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *SectionHandler) Get(c echo.Context) error {
	var s models.Section
	if err := database.DB.Preload("Course.Department").First(&s, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Section not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SectionHandler) Create(c echo.Context) error {
	var p sectionPayload
	if err := c.Bind(&p); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	s := models.Section{
		CourseID: p.CourseID,
		Name:     strings.TrimSpace(p.Name),
		Semester: strings.TrimSpace(p.Semester),
	}
	if err := database.DB.Create(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "section already exists for course")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, s)
}

func (h *SectionHandler) Update(c echo.Context) error {
	var s models.Section
	if err := database.DB.First(&s, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Section not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	var p sectionPayload
	if err := c.Bind(&p); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	s.CourseID = p.CourseID
	s.Name = strings.TrimSpace(p.Name)
	s.Semester = strings.TrimSpace(p.Semester)
	if err := database.DB.Save(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "section already exists for course")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, s)
}

func (h *SectionHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Section{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return detail(c, http.StatusInternalServerError, "delete failed")
	}
	if res.RowsAffected == 0 {
		return detail(c, http.StatusNotFound, "Section not found")
	}
	return c.NoContent(http.StatusNoContent)
}
