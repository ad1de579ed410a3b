package main

import (
	"fmt"
	"os"

	"pitstop/app/config"
	"pitstop/app/database"
	"pitstop/app/models"
	"pitstop/app/routes/auth"
)

func main() {
	if len(os.Args) != 5 {
		fmt.Println("Usage: add_admin <email> <password> <first_name> <last_name>")
		os.Exit(1)
	}

	// Initialize database connection
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		return
	}

	hashed, err := auth.HashPassword(os.Args[2])
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		return
	}

	user := &models.User{
		Email:     os.Args[1],
		Password:  hashed,
		FirstName: os.Args[3],
		LastName:  os.Args[4],
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		return
	}

	fmt.Printf("Admin created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
