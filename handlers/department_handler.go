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

type DepartmentHandler struct{}

func NewDepartmentHandler() *DepartmentHandler { return &DepartmentHandler{} }

type departmentPayload struct {
	Name string `json:"name" validate:"required,max=120"`
}

func (h *DepartmentHandler) List(c echo.Context) error {
	var items []models.Department
	if err := database.DB.Order("id ASC").Find(&items).Error; err != nil {
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, items)
}

func (h *DepartmentHandler) Get(c echo.Context) error {
	var d models.Department
	if err := database.DB.First(&d, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Department not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DepartmentHandler) Create(c echo.Context) error {
	var p departmentPayload
	if err := c.Bind(&p); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	d := models.Department{Name: strings.TrimSpace(p.Name)}
	if err := database.DB.Create(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "department already exists")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DepartmentHandler) Update(c echo.Context) error {
	var d models.Department
	if err := database.DB.First(&d, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return detail(c, http.StatusNotFound, "Department not found")
		}
		return detail(c, http.StatusInternalServerError, "query failed")
	}
	var p departmentPayload
	if err := c.Bind(&p); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&p); err != nil {
		return err
	}
	d.Name = strings.TrimSpace(p.Name)
	if err := database.DB.Save(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "department already exists")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DepartmentHandler) Delete(c echo.Context) error {
	res := database.DB.Delete(&models.Department{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		return detail(c, http.StatusInternalServerError, "delete failed")
	}
	if res.RowsAffected == 0 {
		return detail(c, http.StatusNotFound, "Department not found")
	}
	return c.NoContent(http.StatusNoContent)
}
