package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/noord-hq/noord-backend/config"
	"github.com/noord-hq/noord-backend/models"
	"gorm.io/gorm"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main creates a demo dashboard account with an empty connection row
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("NOORD - Demo Account Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	log.Println("✓ Connected to database")

	email, name := getAccountDetails()

	var existing models.User
	if err := config.Gorm.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("❌ User with email '%s' already exists\n", email)
		os.Exit(1)
	} else if err != gorm.ErrRecordNotFound {
		log.Fatalf("Database error: %v", err)
	}
	log.Printf("✓ Email '%s' is available", email)

	user := models.User{
		ID:            uuid.Must(uuid.NewV7()).String(),
		Email:         email,
		Name:          name,
		EmailVerified: true,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := config.Gorm.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	// Empty connection row so the integrations page has something to load
	conn := models.Connection{
		ID:     uuid.Must(uuid.NewV7()).String(),
		UserID: user.ID,
	}
	if err := config.Gorm.Create(&conn).Error; err != nil {
		log.Fatalf("Failed to create connection row: %v", err)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Account Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("ID:    %s\n", user.ID)
	fmt.Printf("Email: %s\n", user.Email)
	fmt.Printf("Name:  %s\n", user.Name)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Sign in with Google One Tap using this email")
	fmt.Println("3. Connect a WooCommerce store at POST /api/v1/connections/woocommerce")
}

func getAccountDetails() (string, string) {
	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Email: ")
	email, _ := reader.ReadString('\n')
	email = strings.TrimSpace(email)
	if email == "" {
		log.Fatal("Email cannot be empty")
	}

	fmt.Print("Name: ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		name = "Demo User"
	}

	return email, name
}
