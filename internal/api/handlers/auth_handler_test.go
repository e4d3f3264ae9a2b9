package handlers

import (
	"net/http"
	"testing"

	"github.com/johanstjernquist/portfolio-backend/internal/models"
)

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "admin@example.com", "hunter22", "admin")

	w, resp := env.do(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "hunter22",
	}, "")
	httpStatus(t, w, http.StatusOK)

	var auth models.AuthResponse
	decodeData(t, resp, &auth)
	if auth.Token == "" {
		t.Fatal("expected a token")
	}
	if auth.User.Role != "admin" {
		t.Errorf("role = %q", auth.User.Role)
	}

	// The returned token authenticates the profile endpoint.
	w, resp = env.do(t, "GET", "/api/auth/profile", nil, auth.Token)
	httpStatus(t, w, http.StatusOK)

	var profile models.UserResponse
	decodeData(t, resp, &profile)
	if profile.Email != "admin@example.com" {
		t.Errorf("profile email = %q", profile.Email)
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "admin@example.com", "hunter22", "admin")

	w, _ := env.do(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "  Admin@Example.COM ",
		"password": "hunter22",
	}, "")
	httpStatus(t, w, http.StatusOK)
}

func TestLoginWrongCredentials(t *testing.T) {
	env := newTestEnv(t)
	env.seedAccount(t, "admin@example.com", "hunter22", "admin")

	w, _ := env.do(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "admin@example.com",
		"password": "wrong",
	}, "")
	httpStatus(t, w, http.StatusUnauthorized)

	w, _ = env.do(t, "POST", "/api/auth/login", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": "hunter22",
	}, "")
	httpStatus(t, w, http.StatusUnauthorized)
}

func TestRegisterEndpoint(t *testing.T) {
	env := newTestEnv(t)

	body := map[string]interface{}{
		"name":     "Al",
		"email":    "al@example.com",
		"password": "hunter2222",
	}

	w, resp := env.do(t, "POST", "/api/auth/register", body, "")
	httpStatus(t, w, http.StatusCreated)

	var auth models.AuthResponse
	decodeData(t, resp, &auth)
	if auth.User.Role != "user" {
		t.Errorf("registered role = %q, want user", auth.User.Role)
	}

	// Same email again conflicts.
	w, _ = env.do(t, "POST", "/api/auth/register", body, "")
	httpStatus(t, w, http.StatusConflict)
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, "POST", "/api/auth/register", map[string]interface{}{
		"name":     "A",
		"email":    "nope",
		"password": "short",
	}, "")
	httpStatus(t, w, http.StatusBadRequest)
}

func TestProfileRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	w, _ := env.do(t, "GET", "/api/auth/profile", nil, "")
	httpStatus(t, w, http.StatusUnauthorized)

	w, _ = env.do(t, "GET", "/api/auth/profile", nil, "garbage-token")
	httpStatus(t, w, http.StatusUnauthorized)
}

func TestRegisteredUserCannotAccessAdminRoutes(t *testing.T) {
	env := newTestEnv(t)

	_, resp := env.do(t, "POST", "/api/auth/register", map[string]interface{}{
		"name":     "Al",
		"email":    "al@example.com",
		"password": "hunter2222",
	}, "")
	var auth models.AuthResponse
	decodeData(t, resp, &auth)

	w, _ := env.do(t, "GET", "/api/contacts", nil, auth.Token)
	httpStatus(t, w, http.StatusForbidden)
}
