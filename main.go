package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/chromatone/api/api"
	"github.com/chromatone/api/reports"
	"github.com/chromatone/api/scheduler"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := api.Config{
		HTTPPort:          getEnv("HTTP_PORT", ":8080"),
		ReportDir:         getEnv("REPORT_DIR", "reports_out"),
		JwtSecret:         getEnv("JWT_SECRET", "your-secret-key-change-this"),
		JwtAccessDuration: getEnvInt("JWT_ACCESS_DURATION", 900), // 15 minutes
		JwtDomain:         getEnv("JWT_DOMAIN", ""),
		AdminEmail:        getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AllowedOrigins:    getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:           getEnvBool("DEV_MODE", true),
	}

	// A plain-text admin password may be supplied instead of a hash
	if config.AdminPasswordHash == "" {
		if password := getEnv("ADMIN_PASSWORD", ""); password != "" {
			hashed, hashErr := bcrypt.GenerateFromPassword([]byte(password), 8)
			if hashErr != nil {
				log.Fatalf("Failed to hash admin password: %v", hashErr)
			}
			config.AdminPasswordHash = string(hashed)
		}
	}

	// Create report store and generator
	store, storeErr := reports.NewFileStore(config.ReportDir)
	if storeErr != nil {
		log.Fatalf("Failed to create report store: %v", storeErr)
	}
	generator := reports.NewGenerator(store)

	// Write the initial report set
	if getEnvBool("EXPORT_ON_START", true) {
		fmt.Println("Writing initial recommendation reports...")
		paths, exportErr := generator.Generate()
		if exportErr != nil {
			log.Fatalf("Failed to write reports: %v", exportErr)
		}
		for _, path := range paths {
			fmt.Printf("wrote %s\n", path)
		}
	}

	// Create application
	app := &api.Application{
		Config:  config,
		Reports: generator,
	}

	// Start scheduler for nightly report refresh
	reportScheduler := scheduler.NewScheduler(generator)
	reportScheduler.Start()

	// Create and start server
	mux := http.NewServeMux()

	fmt.Println("ChromaTone API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
