package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP        string // Host IP for the server
	RESTPort      int    // Port for the REST API
	GinMode       string // Mode for the Gin framework (e.g., release, debug, test)
	MazeRows      int    // Rows of the course maze
	MazeCols      int    // Columns of the course maze
	MazeSeed      int64  // Seed for maze generation, 0 picks one from the clock
	StartRow      int    // Row every proposal starts on
	StartCol      int    // Column every proposal starts on
	GoalRow       int    // Row of the goal cell, -1 for the last row
	GoalCol       int    // Column of the goal cell, -1 for the last column
	RedisAddr     string // Address of the redis server holding drafts
	RedisPassword string // Password for the redis server
	DraftTTL      int    // Seconds an untouched draft is kept
	DBHost        string // Hostname or IP address for the database
	DBPort        int    // Port number for the database
	DBUser        string // Username for the database
	DBPassword    string // Password for the database
	DBName        string // Name of the database
	JWTSecret     string // Secret key for JWT signing
	JWTIssuer     string // Issuer claim for JWTs
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	// Populate the Config struct with required environment variables
	return Config{
		HostIP:        mustGetEnv("HOST_IP"),
		RESTPort:      mustGetEnvAsInt("REST_PORT"),
		GinMode:       getEnvWithDefault("GIN_MODE", "release"),
		MazeRows:      getEnvAsIntWithDefault("MAZE_ROWS", 5),
		MazeCols:      getEnvAsIntWithDefault("MAZE_COLS", 5),
		MazeSeed:      int64(getEnvAsIntWithDefault("MAZE_SEED", 0)),
		StartRow:      getEnvAsIntWithDefault("START_ROW", 0),
		StartCol:      getEnvAsIntWithDefault("START_COL", 0),
		GoalRow:       getEnvAsIntWithDefault("GOAL_ROW", -1),
		GoalCol:       getEnvAsIntWithDefault("GOAL_COL", -1),
		RedisAddr:     getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvWithDefault("REDIS_PASS", ""),
		DraftTTL:      getEnvAsIntWithDefault("DRAFT_TTL", 3600),
		DBHost:        mustGetEnv("DB_HOST"),
		DBPort:        mustGetEnvAsInt("DB_PORT"),
		DBUser:        mustGetEnv("DB_USER"),
		DBPassword:    mustGetEnv("DB_PASS"),
		DBName:        mustGetEnv("DB_NAME"),
		JWTSecret:     mustGetEnv("JWT_SECRET"),
		JWTIssuer:     mustGetEnv("JWT_ISSUER"),
	}
}

// mustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func mustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		log.Fatalf("[APP] [FATAL] Environment variable %s is not set", key)
	}
	return value
}

// mustGetEnvAsInt retrieves the value of an environment variable as an integer or logs a fatal error if not set or cannot be parsed.
func mustGetEnvAsInt(key string) int {
	valueStr := mustGetEnv(key)
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}
