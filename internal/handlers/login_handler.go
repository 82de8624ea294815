package handlers

import (
	"net/http"

	"kasir-pos/internal/auth"
	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Username and password are required")
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		fail(c, http.StatusUnauthorized, KindAuth, "Invalid credentials")
		return
	}

	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
	if err != nil {
		fail(c, http.StatusUnauthorized, KindAuth, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username, user.Name, user.Role)
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"role":     user.Role,
		"name":     user.Name,
		"username": user.Username,
	})
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register creates the initial admin account. The route is only mounted
// when ALLOW_REGISTRATION=true.
func Register(c *gin.Context) {
	var input RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Name, username and password are required")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to hash password")
		return
	}

	user := models.User{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		Role:         "ADMIN",
	}

	if err := database.DB.Create(&user).Error; err != nil {
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Username already taken")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User created successfully", "data": user})
}
