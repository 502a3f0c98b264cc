package controllers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	resp := doRequest(t, "POST", "/register", map[string]string{
		"username": "reguser",
		"email":    "reguser@example.com",
		"password": "password123",
		"role":     "student",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Registration successful", body["message"])
	assert.NotZero(t, body["user_id"])
}

func TestRegisterDuplicateUsername(t *testing.T) {
	payload := map[string]string{
		"username": "dupuser",
		"email":    "dupuser@example.com",
		"password": "password123",
	}
	resp := doRequest(t, "POST", "/register", payload, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	payload["email"] = "other@example.com"
	resp = doRequest(t, "POST", "/register", payload, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username already exists", decodeBody(t, resp)["error"])
}

func TestRegisterDuplicateEmail(t *testing.T) {
	resp := doRequest(t, "POST", "/register", map[string]string{
		"username": "mailuser",
		"email":    "mailuser@example.com",
		"password": "password123",
	}, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = doRequest(t, "POST", "/register", map[string]string{
		"username": "mailuser2",
		"email":    "mailuser@example.com",
		"password": "password123",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Email already exists", decodeBody(t, resp)["error"])
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	resp := doRequest(t, "POST", "/register", map[string]string{
		"username": "roleuser",
		"email":    "roleuser@example.com",
		"password": "password123",
		"role":     "admin",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLogin(t *testing.T) {
	registerAndLogin(t, "loginuser", "teacher")

	resp := doRequest(t, "POST", "/login", map[string]string{
		"username": "loginuser",
		"password": "password123",
	}, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "teacher", body["role"])
	assert.NotEmpty(t, body["token"])
}

func TestLoginWrongPassword(t *testing.T) {
	registerAndLogin(t, "wrongpwuser", "student")

	resp := doRequest(t, "POST", "/login", map[string]string{
		"username": "wrongpwuser",
		"password": "not-the-password",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeBody(t, resp)["error"])
}

func TestLoginUnknownUser(t *testing.T) {
	resp := doRequest(t, "POST", "/login", map[string]string{
		"username": "nosuchuser",
		"password": "password123",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", decodeBody(t, resp)["error"])
}

func TestLogout(t *testing.T) {
	resp := doRequest(t, "POST", "/logout", nil, "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestProtectedRouteWithoutToken(t *testing.T) {
	resp := doRequest(t, "GET", "/api/user/points", nil, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
