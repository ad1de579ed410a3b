package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB      *sql.DB
	SMS     SMSConfig
	Payment PaymentConfig
}

// SMSConfig holds the outbound messaging gateway settings.
type SMSConfig struct {
	AccountSID string
	AuthToken  string
	From       string
	BaseURL    string
}

// PaymentConfig holds the card gateway settings.
type PaymentConfig struct {
	SecretKey string
	BaseURL   string
}

var AppConfig *Config

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func InitDB() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	host := getEnv("DB_HOST", "localhost")
	port, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		log.Fatal("Invalid DB_PORT:", err)
	}
	user := getEnv("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := getEnv("DB_NAME", "pitstop")

	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=disable connect_timeout=60", host, port, user, dbname)
	if password != "" {
		psqlInfo += " password=" + password
	}
	log.Printf("Connecting to database %s at %s:%d", dbname, host, port)

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Set connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Printf("Database connection failed: %v", err)
		log.Println("Check DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME and that the database exists")
		log.Fatal("Cannot establish database connection")
	}

	AppConfig = &Config{
		DB: db,
		SMS: SMSConfig{
			AccountSID: os.Getenv("SMS_ACCOUNT_SID"),
			AuthToken:  os.Getenv("SMS_AUTH_TOKEN"),
			From:       os.Getenv("SMS_FROM_NUMBER"),
			BaseURL:    getEnv("SMS_BASE_URL", "https://api.twilio.com"),
		},
		Payment: PaymentConfig{
			SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
			BaseURL:   getEnv("STRIPE_BASE_URL", "https://api.stripe.com"),
		},
	}
	log.Println("Database connected successfully")
	if AppConfig.SMS.AccountSID == "" {
		log.Println("SMS gateway not configured, notifications will be logged only")
	}
	if AppConfig.Payment.SecretKey == "" {
		log.Println("Payment gateway not configured, card payments disabled")
	}
}

func GetDB() *sql.DB {
	return AppConfig.DB
}
