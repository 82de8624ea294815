package handlers

import (
	"net/http"
	"testing"

	"kasir-pos/internal/auth"
	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func seedUser(t *testing.T, username, password, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Name: "Test " + username, Username: username, PasswordHash: string(hash), Role: role}
	if err := database.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func TestLoginIssuesValidToken(t *testing.T) {
	setupTestDB(t)
	user := seedUser(t, "admin", "rahasia", "ADMIN")

	r := gin.New()
	r.POST("/api/auth/login", Login)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"username": "admin",
		"password": "rahasia",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		Role  string `json:"role"`
	}
	decodeBody(t, w, &resp)
	if resp.Role != "ADMIN" {
		t.Errorf("expected role ADMIN, got %q", resp.Role)
	}

	claims, err := auth.ValidateToken(resp.Token)
	if err != nil {
		t.Fatalf("returned token does not validate: %v", err)
	}
	if claims.UserID != user.ID || claims.Role != "ADMIN" {
		t.Errorf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	setupTestDB(t)
	seedUser(t, "admin", "rahasia", "ADMIN")

	r := gin.New()
	r.POST("/api/auth/login", Login)

	cases := []gin.H{
		{"username": "admin", "password": "salah"},
		{"username": "nobody", "password": "rahasia"},
	}
	for _, body := range cases {
		w := doJSON(t, r, http.MethodPost, "/api/auth/login", body)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401 for %v, got %d", body, w.Code)
		}
		if kind := errorKind(t, w); kind != KindAuth {
			t.Errorf("expected auth error kind, got %q", kind)
		}
	}
}

func TestLoginValidation(t *testing.T) {
	setupTestDB(t)

	r := gin.New()
	r.POST("/api/auth/login", Login)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{"username": "admin"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if kind := errorKind(t, w); kind != KindValidation {
		t.Errorf("expected validation error kind, got %q", kind)
	}
}
