package handler

import (
	"context"
	"crypto/rand"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	config "storelink/config/database"
	"storelink/internal/authHandler/models"
	"storelink/utils"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
)

const resetCodeTTL = 15 * time.Minute

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// HandlePasswordReset implements the handle-password-reset function. Action
// "request" issues a one-time code by email; "confirm" redeems the code and
// updates the password hash.
func HandlePasswordReset(c echo.Context) error {
	var req models.PasswordResetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid Request"})
	}

	if !utils.ValidateEmail(req.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid email format"})
	}

	switch req.Action {
	case "request":
		return requestReset(c, req)
	case "confirm":
		return confirmReset(c, req)
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"message": fmt.Sprintf("Unknown action: %s", req.Action)})
	}
}

func requestReset(c echo.Context, req models.PasswordResetRequest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Same response whether or not the account exists
	var userID string
	err := config.Pool.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", req.Email).Scan(&userID)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]string{"message": "If the account exists, a reset code has been sent"})
	}

	code, err := generateResetCode()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to generate reset code"})
	}

	insertQuery := "INSERT INTO password_reset_codes (email, code, expires_at) VALUES ($1, $2, $3)"
	if _, err := config.Pool.Exec(ctx, insertQuery, req.Email, code, time.Now().Add(resetCodeTTL)); err != nil {
		log.Printf("Failed to store reset code: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to create reset code"})
	}

	if err := utils.SendPasswordResetEmail(req.Email, code); err != nil {
		log.Printf("Failed to send reset email: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to send reset email"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "If the account exists, a reset code has been sent"})
}

func confirmReset(c echo.Context, req models.PasswordResetRequest) error {
	if req.Code == "" || len(req.NewPassword) < 8 {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Code and a password of at least 8 characters are required"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Burn the code in the same statement that checks it
	var resetID string
	redeemQuery := `
		UPDATE password_reset_codes
		SET used = TRUE
		WHERE email = $1 AND code = $2 AND used = FALSE AND expires_at > NOW()
		RETURNING id
	`
	if err := config.Pool.QueryRow(ctx, redeemQuery, req.Email, req.Code).Scan(&resetID); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid or expired code"})
	}

	hashPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Internal Server Error"})
	}

	updateQuery := "UPDATE users SET password = $1, jwt_token = NULL, updated_at = NOW() WHERE email = $2"
	if _, err := config.Pool.Exec(ctx, updateQuery, string(hashPassword), req.Email); err != nil {
		log.Printf("Failed to update password: %v", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Failed to update password"})
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Password updated successfully"})
}
