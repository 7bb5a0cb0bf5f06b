package main

import (
	"fmt"
	"log"

	"github.com/yolku/staffing-backend/internal/utils"
)

func main() {
	secret, err := utils.GenerateJWTSecret()
	if err != nil {
		log.Fatalf("Failed to generate secret: %v", err)
	}

	fmt.Println("Add this to your .env file or deployment secrets:")
	fmt.Println()
	fmt.Printf("JWT_SECRET=%s\n", secret)
	fmt.Println()
	fmt.Println("Keep the secret out of version control.")
}
