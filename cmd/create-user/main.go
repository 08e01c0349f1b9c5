package main

import (
	"flag"
	"log"

	"canteen-inventory-api/internal/model"
	"canteen-inventory-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "", "username of the account to create or reset")
	password := flag.String("password", "", "password to set")
	role := flag.String("role", "staff", "role: admin or staff")
	flag.Parse()

	if *username == "" || *password == "" {
		log.Fatal("❌ -username and -password are required")
	}
	if !model.Role(*role).Valid() {
		log.Fatalf("❌ Invalid role %q: must be admin or staff", *role)
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(&model.User{})

	// 3. Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// 4. Create or reset
	var user model.User
	if err := db.Where("username = ?", *username).First(&user).Error; err == nil {
		if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
			log.Fatalf("❌ Failed to update password in DB: %v", err)
		}
		log.Printf("✅ Password for %s has been reset", *username)
		return
	}

	user = model.User{
		Username: *username,
		Password: string(hashedPassword),
		Role:     model.Role(*role),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("❌ Failed to create user: %v", err)
	}
	log.Printf("✅ User %s created with role %s (id=%d)", user.Username, user.Role, user.ID)
}
