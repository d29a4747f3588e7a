package utils

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"adserver/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// --- JWT Handling ---

// Claims defines the structure of the JWT claims. The subject is the
// account's username (classifieds auth) or the dating profile id (dating
// auth); IsAdmin marks the hard-coded privileged account.
type Claims struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin,omitempty"`
	jwt.RegisteredClaims
}

// GenerateJWT creates a new signed token for the given username.
func GenerateJWT(username string, isAdmin bool, cfg *config.Config) (string, error) {
	if cfg.JwtSecret == "" {
		log.Println("CRITICAL: JWT Secret is empty. Cannot generate token.")
		return "", errors.New("JWT secret is not configured")
	}

	expirationTime := time.Now().Add(cfg.TokenLifetime)
	claims := &Claims{
		Username: username,
		IsAdmin:  isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "adserver",
			Subject:   username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.JwtSecret))
	if err != nil {
		log.Printf("ERROR: Failed to sign JWT token: %v", err)
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ValidateJWT parses and validates a JWT token string.
// Returns the claims if valid, otherwise returns an error.
func ValidateJWT(tokenString string, cfg *config.Config) (*Claims, error) {
	if cfg.JwtSecret == "" {
		log.Println("CRITICAL: JWT Secret is empty. Cannot validate token.")
		return nil, errors.New("JWT secret is not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.JwtSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Printf("INFO: JWT validation failed: Token expired")
			return nil, errors.New("token has expired")
		}
		log.Printf("WARN: JWT validation failed: %v", err)
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		log.Printf("WARN: JWT validation failed: Token marked as invalid")
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// AuthMiddleware creates a Gin middleware function to protect routes.
// It validates the JWT token from the Authorization header and stores the
// caller's username and admin flag in the request context.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			GinUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			GinError(c, http.StatusBadRequest, "Authorization header format must be Bearer {token}")
			return
		}

		claims, err := ValidateJWT(parts[1], cfg)
		if err != nil {
			GinUnauthorized(c, fmt.Sprintf("Invalid token: %v", err))
			return
		}

		c.Set("username", claims.Username)
		c.Set("isAdmin", claims.IsAdmin)

		c.Next()
	}
}

// AdminMiddleware rejects callers whose token lacks the admin flag.
// Must run after AuthMiddleware.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get("isAdmin")
		if !exists || isAdmin != true {
			GinForbidden(c, "Administrator access required.")
			return
		}
		c.Next()
	}
}
