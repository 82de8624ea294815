package handlers

import (
	"net/http"

	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type MemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func GetMembers(c *gin.Context) {
	var members []models.Member
	if err := database.DB.Find(&members).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch members")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": members})
}

func AddMember(c *gin.Context) {
	var input MemberRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Name and phone are required")
		return
	}

	// Phone number identifies the member at the register
	var existing models.Member
	if err := database.DB.Where("phone = ?", input.Phone).First(&existing).Error; err == nil {
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Phone number already registered")
		return
	}

	member := models.Member{Name: input.Name, Phone: input.Phone}
	if err := database.DB.Create(&member).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to create member")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Member created", "data": member})
}

func UpdateMember(c *gin.Context) {
	var member models.Member
	if err := database.DB.First(&member, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Member not found")
		return
	}

	var input MemberRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Name and phone are required")
		return
	}

	var existing models.Member
	if err := database.DB.Where("phone = ? AND id <> ?", input.Phone, member.ID).First(&existing).Error; err == nil {
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Phone number already registered")
		return
	}

	member.Name = input.Name
	member.Phone = input.Phone
	if err := database.DB.Save(&member).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to update member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member updated", "data": member})
}

func DeleteMember(c *gin.Context) {
	var member models.Member
	if err := database.DB.First(&member, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Member not found")
		return
	}

	if err := database.DB.Delete(&member).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to delete member")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Member deleted"})
}
