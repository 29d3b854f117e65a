// scripts/create_hod.go
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ganaa-shark09/Attendance-Management/config"
	"github.com/Ganaa-shark09/Attendance-Management/database"
	"github.com/Ganaa-shark09/Attendance-Management/models"
)

func main() {
	cfg := config.Load()
	database.Connect(cfg)

	username := os.Getenv("HOD_USERNAME")
	if username == "" {
		username = "hod"
	}
	password := os.Getenv("HOD_PASSWORD")
	if password == "" {
		password = "changeme"
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var existing models.User
	if err := database.DB.Where("username = ?", username).First(&existing).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to query users: %v", err)
		}
	} else {
		fmt.Println("HOD user already exists with username:", username)
		os.Exit(0)
	}

	u := models.User{
		Username: username,
		Password: string(hashed),
		Role:     models.RoleHOD,
		Name:     "Head of Department",
	}
	if err := database.DB.Create(&u).Error; err != nil {
		log.Fatalf("failed to insert hod: %v", err)
	}

	fmt.Println("HOD user created")
	fmt.Println("   Username:", username)
	fmt.Println("   Password:", password, "(change after first login)")
}
