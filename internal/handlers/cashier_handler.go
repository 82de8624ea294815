package handlers

import (
	"net/http"

	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type CashierRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CashierUpdateRequest struct {
	Name     string `json:"name" binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password"` // optional: blank keeps the current one
}

func GetCashiers(c *gin.Context) {
	var cashiers []models.User
	if err := database.DB.Where("role = ?", "CASHIER").Find(&cashiers).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch cashiers")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cashiers})
}

func AddCashier(c *gin.Context) {
	var input CashierRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Name, username and password are required")
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ?", input.Username).First(&existing).Error; err == nil {
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Username already taken")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to hash password")
		return
	}

	cashier := models.User{
		Name:         input.Name,
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
		Role:         "CASHIER",
	}

	if err := database.DB.Create(&cashier).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to create cashier")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Cashier created", "data": cashier})
}

func UpdateCashier(c *gin.Context) {
	var cashier models.User
	if err := database.DB.First(&cashier, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Cashier not found")
		return
	}

	var input CashierUpdateRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Name and username are required")
		return
	}

	var existing models.User
	if err := database.DB.Where("username = ? AND id <> ?", input.Username, cashier.ID).First(&existing).Error; err == nil {
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Username already taken")
		return
	}

	cashier.Name = input.Name
	cashier.Username = input.Username
	if input.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			fail(c, http.StatusInternalServerError, KindInternal, "Failed to hash password")
			return
		}
		cashier.PasswordHash = string(hashedPassword)
	}

	if err := database.DB.Save(&cashier).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to update cashier")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cashier updated", "data": cashier})
}

func DeleteCashier(c *gin.Context) {
	var cashier models.User
	if err := database.DB.First(&cashier, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Cashier not found")
		return
	}

	// Admin accounts cannot be removed through the cashier screen
	if cashier.Role == "ADMIN" {
		fail(c, http.StatusForbidden, KindAuth, "Deleting an admin account is not allowed")
		return
	}

	if err := database.DB.Delete(&cashier).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to delete cashier")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cashier deleted"})
}
