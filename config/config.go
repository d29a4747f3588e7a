package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds all configuration settings for the application.
type Config struct {
	// Server settings
	ListenAddress string
	ListenPort    string

	// Storage settings
	DataDir      string // Directory holding one JSON document per store key
	EnableBackup bool   // Keep a .bak of each document on overwrite

	// Authentication settings
	JwtSecret     string // The actual secret key
	JwtSecretFile string // Path to the file containing the secret
	TokenLifetime time.Duration
}

const (
	defaultAddress       = "0.0.0.0"
	defaultPort          = "8080"
	defaultDataDir       = "./data" // Relative to working dir
	defaultEnableBackup  = true
	defaultJwtSecretFile = ""              // No default file
	defaultJwtKeyFile    = "./adserver.key" // Default file if we generate a key
	defaultTokenLifetime = 24 * time.Hour
)

// LoadConfig loads configuration from defaults, environment variables, and
// command-line flags. Flags take precedence over environment variables,
// which take precedence over defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}

	// Use ADSERVER_ prefix for environment variables to avoid conflicts.
	flag.StringVar(&cfg.ListenAddress, "address", getEnv("ADSERVER_LISTEN_ADDRESS", defaultAddress), "Server listen address (Env: ADSERVER_LISTEN_ADDRESS)")
	flag.StringVar(&cfg.ListenPort, "port", defaultPort, "Server listen port (Env: ADSERVER_LISTEN_PORT)")
	flag.StringVar(&cfg.DataDir, "data-dir", getEnv("ADSERVER_DATA_DIR", defaultDataDir), "Directory for the JSON store documents (Env: ADSERVER_DATA_DIR)")
	flag.BoolVar(&cfg.EnableBackup, "enable-backup", getEnvBool("ADSERVER_ENABLE_BACKUP", defaultEnableBackup), "Keep a .bak copy of each store document before overwriting (Env: ADSERVER_ENABLE_BACKUP)")
	flag.StringVar(&cfg.JwtSecretFile, "jwt-secret-file", getEnv("ADSERVER_JWT_SECRET_FILE", defaultJwtSecretFile), "Path to file containing JWT secret key (overrides ADSERVER_JWT_SECRET env var) (Env: ADSERVER_JWT_SECRET_FILE)")

	cfg.TokenLifetime = defaultTokenLifetime

	flag.Parse()

	// Explicit env checks for flags whose defaults came from constants, so the
	// env var still wins when the flag was not provided.
	envPort := getEnv("ADSERVER_LISTEN_PORT", "")
	if cfg.ListenPort == defaultPort && envPort != "" {
		cfg.ListenPort = envPort
	}
	envDataDir := getEnv("ADSERVER_DATA_DIR", "")
	if cfg.DataDir == defaultDataDir && envDataDir != "" {
		cfg.DataDir = envDataDir
	}

	// --- JWT Secret Handling ---
	// Priority: File (CLI/Env) > Env Var > Default Key File > Generate
	var secretSource string

	if cfg.JwtSecretFile != "" {
		secretBytes, err := os.ReadFile(cfg.JwtSecretFile)
		if err == nil {
			cfg.JwtSecret = strings.TrimSpace(string(secretBytes))
			if cfg.JwtSecret != "" {
				log.Printf("INFO: Loaded JWT secret from specified file: %s", cfg.JwtSecretFile)
				secretSource = fmt.Sprintf("File (%s)", cfg.JwtSecretFile)
			} else {
				log.Printf("WARN: Specified JWT secret file '%s' is empty or contains only whitespace. Ignoring.", cfg.JwtSecretFile)
			}
		} else {
			log.Printf("WARN: Failed to read specified JWT secret file '%s': %v. Checking other sources.", cfg.JwtSecretFile, err)
		}
	}

	if cfg.JwtSecret == "" {
		cfg.JwtSecret = strings.TrimSpace(getEnv("ADSERVER_JWT_SECRET", ""))
		if cfg.JwtSecret != "" {
			log.Printf("INFO: Loaded JWT secret from ADSERVER_JWT_SECRET environment variable.")
			secretSource = "Environment Variable (ADSERVER_JWT_SECRET)"
		}
	}

	if cfg.JwtSecret == "" {
		secretBytes, err := os.ReadFile(defaultJwtKeyFile)
		if err == nil {
			cfg.JwtSecret = strings.TrimSpace(string(secretBytes))
			if cfg.JwtSecret != "" {
				log.Printf("INFO: Loaded JWT secret from default key file: %s", defaultJwtKeyFile)
				secretSource = fmt.Sprintf("Default Key File (%s)", defaultJwtKeyFile)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN: Failed to read default JWT key file '%s': %v. Will attempt generation.", defaultJwtKeyFile, err)
		}
	}

	if cfg.JwtSecret == "" {
		log.Printf("INFO: JWT secret not found via file, environment variable, or default key file. Generating a new secret...")
		newSecret, err := generateRandomKey(32) // 256-bit key
		if err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		cfg.JwtSecret = newSecret

		if err := os.WriteFile(defaultJwtKeyFile, []byte(newSecret), 0600); err != nil {
			log.Printf("WARN: Failed to save generated JWT secret to '%s': %v. The server will use the generated key for this session only.", defaultJwtKeyFile, err)
			secretSource = "Generated (In Memory)"
		} else {
			log.Printf("INFO: Successfully generated and saved new JWT secret to: %s", defaultJwtKeyFile)
			secretSource = fmt.Sprintf("Generated & Saved (%s)", defaultJwtKeyFile)
		}
	}

	if cfg.JwtSecret == "" {
		return nil, fmt.Errorf("failed to obtain a valid JWT secret after checking all sources and attempting generation")
	}

	// --- Data Directory Validation ---
	absDataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("could not determine absolute path for data-dir '%s': %w", cfg.DataDir, err)
	}
	cfg.DataDir = absDataDir

	fileInfo, err := os.Stat(cfg.DataDir)
	if err == nil && !fileInfo.IsDir() {
		return nil, fmt.Errorf("data path '%s' points to a file, not a directory", cfg.DataDir)
	}
	// A missing directory is fine; the ledger creates it on first write.

	logConfiguration(cfg, secretSource)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool retrieves a boolean environment variable or returns a default value.
// Recognizes "true", "1", "yes" (case-insensitive) as true.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		log.Printf("WARN: Invalid boolean value for environment variable %s: '%s'. Using default: %t", key, value, fallback)
	}
	return fallback
}

// logConfiguration prints the loaded configuration settings.
func logConfiguration(cfg *Config, secretSource string) {
	log.Println("--- Configuration ---")
	log.Printf("Server Address: %s", cfg.ListenAddress)
	log.Printf("Server Port: %s", cfg.ListenPort)
	log.Printf("Data Directory: %s", cfg.DataDir)
	log.Printf("Store Backup Enabled: %t", cfg.EnableBackup)
	log.Printf("JWT Secret Source: %s", secretSource)
	log.Printf("JWT Token Lifetime: %s", cfg.TokenLifetime)
	log.Println("---------------------")
}

// generateRandomKey generates a cryptographically secure random key of the
// specified byte length and returns it as a hex-encoded string.
func generateRandomKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
