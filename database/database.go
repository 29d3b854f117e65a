package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Ganaa-shark09/Attendance-Management/config"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	DB = db

	if err := Migrate(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}

// Migrate runs AutoMigrate plus the one index GORM tags cannot express.
// Tests call it against their own connection.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.Course{},
		&models.Section{},
		&models.TeachingAssignment{},
		&models.Enrollment{},
		&models.AttendanceSession{},
		&models.AttendanceMark{},
	); err != nil {
		return err
	}

	// One open session per section per day. The open_session handler checks
	// first so the API answers with a clean 400; this partial index closes
	// the race between two concurrent opens.
	return db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_open_session_per_day
		ON attendance_sessions (section_id, date) WHERE is_closed = false`).Error
}
