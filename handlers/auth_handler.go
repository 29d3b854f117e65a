package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

type AuthHandler struct {
	JWTSecret string
}

func NewAuthHandler(secret string) *AuthHandler {
	return &AuthHandler{JWTSecret: secret}
}

func (h *AuthHandler) signJWT(sub uint, role models.Role, name string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": role.String(),
		"name": name,
		"exp":  time.Now().Add(ttl).Unix(),
		"iat":  time.Now().Unix(),
	}
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(h.JWTSecret))
}

type loginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	username := strings.TrimSpace(req.Username)

	var u models.User
	if err := database.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return detail(c, http.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return detail(c, http.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.signJWT(u.ID, u.Role, u.Name, 7*24*time.Hour)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "token generation failed")
	}

	return c.JSON(http.StatusOK, map[string]any{
		"token": token,
		"user":  map[string]any{"id": u.ID, "role": u.Role, "username": u.Username, "name": u.Name},
	})
}

type createUserReq struct {
	Username   string `json:"username" validate:"required,max=60"`
	Password   string `json:"password" validate:"required,min=4"`
	Role       string `json:"role" validate:"required,oneof=student teacher hod"`
	Name       string `json:"name"`
	EmployeeID string `json:"employee_id"`
	RollNumber string `json:"roll_number"`
}

// POST /hod/users — account provisioning for every role. The validate tag
// and ParseRole agree on the closed role set; both run so a bad value is
// caught even if the tag drifts.
func (h *AuthHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return detail(c, http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return detail(c, http.StatusBadRequest, "unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return detail(c, http.StatusInternalServerError, "password hashing failed")
	}

	u := models.User{
		Username:   strings.TrimSpace(req.Username),
		Password:   string(hash),
		Role:       role,
		Name:       strings.TrimSpace(req.Name),
		EmployeeID: strings.TrimSpace(req.EmployeeID),
		RollNumber: strings.TrimSpace(req.RollNumber),
	}
	if err := database.DB.Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return detail(c, http.StatusConflict, "username already exists")
		}
		return detail(c, http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusCreated, u)
}
