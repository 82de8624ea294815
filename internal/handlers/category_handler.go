package handlers

import (
	"net/http"

	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func AddCategory(c *gin.Context) {
	var input CategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Category name is required")
		return
	}

	category := models.Category{Name: input.Name}
	if err := database.DB.Create(&category).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to create category")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Category created", "data": category})
}

func UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Category not found")
		return
	}

	var input CategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Category name is required")
		return
	}

	category.Name = input.Name
	if err := database.DB.Save(&category).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to update category")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category updated", "data": category})
}

func DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := database.DB.First(&category, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Category not found")
		return
	}

	if err := database.DB.Delete(&category).Error; err != nil {
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Could not delete category. It might still have products.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category deleted"})
}
