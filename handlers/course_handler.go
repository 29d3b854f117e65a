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

type CourseHandler struct{}

func NewCourseHandler() *CourseHandler { return &CourseHandler{} }

type coursePayload struct {
	Code         string `json:"code" validate:"required,max=20"`
	Name         string `json:"name" validate:"required,max=200"`
	DepartmentID uint   `json:"department_id" validate:"required"`
}

func (h *CourseHandler) List(c echo.Context) error {
	var items []models.Course
	if err := database.DB.Preload("Department").Order("id ASC").Find(&items).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *CourseHandler) Get(c echo.Context) error {
	var course models.Course
	if err := database.DB.Preload("Department").First(&course, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Course not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Create(c echo.Context) error {
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	course := models.Course{
		Code:         strings.TrimSpace(p.Code),
		Name:         strings.TrimSpace(p.Name),
		DepartmentID: p.DepartmentID,
	}
	if err := database.DB.Create(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "course code already exists in department")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, course)
}

func (h *CourseHandler) Update(c echo.Context) error {
	var course models.Course
	if err := database.DB.First(&course, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Course not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	var p coursePayload
	if err := c.Bind(&p); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	course.Code = strings.TrimSpace(p.Code)
	course.Name = strings.TrimSpace(p.Name)
	course.DepartmentID = p.DepartmentID
	if err := database.DB.Save(&course).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "course code already exists in department")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, course)
}

func (h *CourseHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Course{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return detail(c, http.StatusInternalServerError, "delete failed")
	}
	if res.RowsAffected == 0 {
		return detail(c, http.StatusNotFound, "Course not found")
	}
	return c.NoContent(http.StatusNoContent)
}
