package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

// setupTestDB points the package-global database.DB at a fresh in-memory
// sqlite database with the production migrations applied.
func setupTestDB(t *testing.T) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a single conn keeps the named in-memory database alive for the test
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	database.DB = db
}

// do runs a handler the way the router would: bound JSON body, query
// string, and the principal the auth middleware attaches.
func do(t *testing.T, method, target string, body any, uid uint, role models.Role, h echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = NewValidator()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uid)
	c.Set("role", role)

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// ===== seed helpers =====

func seedUser(t *testing.T, username string, role models.Role) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pass1234"), bcrypt.MinCost)
	require.NoError(t, err)
	u := models.User{Username: username, Password: string(hash), Role: role}
	require.NoError(t, database.DB.Create(&u).Error)
	return u
}

func seedSection(t *testing.T, code, name string) models.Section {
	t.Helper()
	dept := models.Department{Name: "CS-" + code + name}
	require.NoError(t, database.DB.Create(&dept).Error)
	course := models.Course{Code: code, Name: code + " course", DepartmentID: dept.ID}
	require.NoError(t, database.DB.Create(&course).Error)
	sec := models.Section{CourseID: course.ID, Name: name}
	require.NoError(t, database.DB.Create(&sec).Error)
	return sec
}

func assignTeacher(t *testing.T, teacherID, sectionID uint) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.TeachingAssignment{TeacherID: teacherID, SectionID: sectionID}).Error)
}

func enrollStudent(t *testing.T, studentID, sectionID uint) {
	t.Helper()
	require.NoError(t, database.DB.Create(&models.Enrollment{StudentID: studentID, SectionID: sectionID}).Error)
}

func seedSession(t *testing.T, sectionID, createdBy uint, date string, start time.Time, closed bool) models.AttendanceSession {
	t.Helper()
	s := models.AttendanceSession{
		SectionID: sectionID,
		Date:      date,
		StartTime: start,
		CreatedBy: createdBy,
		IsClosed:  closed,
	}
	if closed {
		end := start.Add(time.Hour)
		s.EndTime = &end
	}
	require.NoError(t, database.DB.Create(&s).Error)
	return s
}

func seedMark(t *testing.T, sessionID, studentID uint, status models.AttendanceStatus) models.AttendanceMark {
	t.Helper()
	m := models.AttendanceMark{SessionID: sessionID, StudentID: studentID, Status: status, MarkedAt: time.Now()}
	require.NoError(t, database.DB.Create(&m).Error)
	return m
}
