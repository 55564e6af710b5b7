package handler

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	config "storelink/config/database"
	"storelink/internal/authHandler/models"
	"storelink/utils"

	"github.com/golang-jwt/jwt/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser handles store owner registration. New accounts start pending
// until an admin approves them.
func RegisterUser(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "All fields are required"})
	}

	// Validate email format
	if !utils.ValidateEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid email format"})
	}

	email := strings.ToLower(req.Email)

	// Validate password strength (e.g., min 8 chars)
	if len(req.Password) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Password must be at least 8 characters long"})
	}

	// Hash the password
	hashPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	// Insert into users table
	userQuery := "INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id"
	var userID string
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = config.Pool.QueryRow(ctx, userQuery, req.Name, email, string(hashPassword)).Scan(&userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return c.JSON(http.StatusBadRequest, map[string]string{"message": "Email already registered"})
		}
		log.Printf("PostgreSQL error: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	if err = utils.SendWelcomeEmail(email, req.Name); err != nil {
		log.Printf("Failed to send email: %v", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": fmt.Sprintf("User %s registered successfully", req.Name),
		"email":   email,
	})
}

// LoginUser handles store owner login
func LoginUser(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	// Fetch user details
	var user models.User
	query := `SELECT id, name, email, password, role, account_status FROM users WHERE email = $1`
	err := config.Pool.QueryRow(context.Background(), query, strings.ToLower(req.Email)).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role, &user.AccountStatus,
	)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid email or password"})
	}

	// Compare password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid email or password"})
	}

	if user.AccountStatus == "banned" {
		return c.JSON(http.StatusForbidden, map[string]string{"message": "Account is banned"})
	}

	// Generate JWT token
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":        user.ID,
		"name":           user.Name,
		"email":          user.Email,
		"role":           user.Role,
		"account_status": user.AccountStatus,
		"exp":            jwt.NewNumericDate(time.Now().Add(72 * time.Hour)),
	})
	tokenString, err := token.SignedString([]byte(config.Cfg.JWTSecret))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to generate token"})
	}

	// Update JWT token in the database
	updateQuery := "UPDATE users SET jwt_token = $1 WHERE id = $2"
	if _, err = config.Pool.Exec(context.Background(), updateQuery, tokenString, user.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update token"})
	}

	return c.JSON(http.StatusOK, models.LoginResponse{
		Token:         tokenString,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		AccountStatus: user.AccountStatus,
	})
}
