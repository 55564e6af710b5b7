package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	config "storelink/config/database"
	handler "storelink/internal/authHandler"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func jsonRequest(e *echo.Echo, method, path string, payload interface{}) (echo.Context, *httptest.ResponseRecorder) {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterUserValidation(t *testing.T) {
	e := echo.New()

	t.Run("Missing Fields", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/auth/register", map[string]string{"email": "a@b.co"})
		assert.NoError(t, handler.RegisterUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid Email Format", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/auth/register", map[string]string{
			"name": "Owner", "email": "not-an-email", "password": "longenough",
		})
		assert.NoError(t, handler.RegisterUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Short Password", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/auth/register", map[string]string{
			"name": "Owner", "email": "owner@example.com", "password": "short",
		})
		assert.NoError(t, handler.RegisterUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp map[string]string
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.Contains(t, resp["message"], "at least 8 characters")
	})
}

func TestLoginUser(t *testing.T) {
	requireDB(t)
	e := echo.New()

	password := "supersecret123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	email := fmt.Sprintf("login+%s@example.com", uuid.NewString())
	_, err := config.Pool.Exec(context.Background(),
		`INSERT INTO users (name, email, password, account_status) VALUES ('Login Owner', $1, $2, 'active')`,
		email, string(hash),
	)
	assert.NoError(t, err)

	t.Run("Valid Credentials", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/auth/login", map[string]string{
			"email": email, "password": password,
		})
		assert.NoError(t, handler.LoginUser(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		_ = json.Unmarshal(rec.Body.Bytes(), &resp)
		assert.NotEmpty(t, resp["token"])
		assert.Equal(t, "Login Owner", resp["name"])

		// the token must verify against the configured secret
		parsed, perr := jwt.Parse(resp["token"].(string), func(tk *jwt.Token) (interface{}, error) {
			return []byte(config.Cfg.JWTSecret), nil
		})
		assert.NoError(t, perr)
		assert.True(t, parsed.Valid)
		claims := parsed.Claims.(jwt.MapClaims)
		assert.Equal(t, "Login Owner", claims["name"])
	})

	t.Run("Wrong Password", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/auth/login", map[string]string{
			"email": email, "password": "wrong-password",
		})
		assert.NoError(t, handler.LoginUser(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Banned Account Cannot Log In", func(t *testing.T) {
		bannedEmail := fmt.Sprintf("banned+%s@example.com", uuid.NewString())
		_, err := config.Pool.Exec(context.Background(),
			`INSERT INTO users (name, email, password, account_status) VALUES ('Banned', $1, $2, 'banned')`,
			bannedEmail, string(hash),
		)
		assert.NoError(t, err)

		c, rec := jsonRequest(e, http.MethodPost, "/auth/login", map[string]string{
			"email": bannedEmail, "password": password,
		})
		assert.NoError(t, handler.LoginUser(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandlePasswordResetValidation(t *testing.T) {
	e := echo.New()

	t.Run("Unknown Action", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/functions/handle-password-reset", map[string]string{
			"action": "noop", "email": "owner@example.com",
		})
		assert.NoError(t, handler.HandlePasswordReset(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/functions/handle-password-reset", map[string]string{
			"action": "request", "email": "nope",
		})
		assert.NoError(t, handler.HandlePasswordReset(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Confirm Needs Code And Strong Password", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/functions/handle-password-reset", map[string]string{
			"action": "confirm", "email": "owner@example.com", "code": "", "new_password": "short",
		})
		assert.NoError(t, handler.HandlePasswordReset(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestConfirmResetWithStoredCode(t *testing.T) {
	requireDB(t)
	e := echo.New()

	email := fmt.Sprintf("reset+%s@example.com", uuid.NewString())
	hash, _ := bcrypt.GenerateFromPassword([]byte("oldpassword1"), bcrypt.DefaultCost)
	_, err := config.Pool.Exec(context.Background(),
		`INSERT INTO users (name, email, password, account_status) VALUES ('Reset Owner', $1, $2, 'active')`,
		email, string(hash),
	)
	assert.NoError(t, err)

	_, err = config.Pool.Exec(context.Background(),
		`INSERT INTO password_reset_codes (email, code, expires_at) VALUES ($1, '123456', NOW() + INTERVAL '10 minutes')`,
		email,
	)
	assert.NoError(t, err)

	t.Run("Valid Code Updates Password", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/functions/handle-password-reset", map[string]string{
			"action": "confirm", "email": email, "code": "123456", "new_password": "newpassword1",
		})
		assert.NoError(t, handler.HandlePasswordReset(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var stored string
		assert.NoError(t, config.Pool.QueryRow(context.Background(),
			"SELECT password FROM users WHERE email = $1", email).Scan(&stored))
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("newpassword1")))
	})

	t.Run("Code Is Single Use", func(t *testing.T) {
		c, rec := jsonRequest(e, http.MethodPost, "/functions/handle-password-reset", map[string]string{
			"action": "confirm", "email": email, "code": "123456", "new_password": "anotherpass1",
		})
		assert.NoError(t, handler.HandlePasswordReset(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
