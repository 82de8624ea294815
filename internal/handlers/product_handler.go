package handlers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type ProductRequest struct {
	Name       string   `json:"name" binding:"required"`
	Price      *float64 `json:"price" binding:"required,gt=0"`
	Stock      *int     `json:"stock" binding:"required,gte=0"`
	CategoryID uint     `json:"category_id" binding:"required"`
	Image      string   `json:"image"`
}

// --- GET: List all products (cashier + admin) ---
func GetProducts(c *gin.Context) {
	var products []models.Product

	if err := database.DB.Preload("Category").Find(&products).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch products")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

// --- POST: Add a new product ---
func AddProduct(c *gin.Context) {
	var input ProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Name, price, stock and category_id are required")
		return
	}

	image := input.Image
	if image == "" {
		image = "default.png"
	}

	product := models.Product{
		Name:       input.Name,
		Price:      *input.Price,
		Stock:      *input.Stock,
		CategoryID: input.CategoryID,
		Image:      image,
	}

	if err := database.DB.Create(&product).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to create product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Product created", "data": product})
}

// --- PUT: Update a product ---
func UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Invalid product ID")
		return
	}

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Product not found")
		return
	}

	var input ProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Name, price, stock and category_id are required")
		return
	}

	product.Name = input.Name
	product.Price = *input.Price
	product.Stock = *input.Stock
	product.CategoryID = input.CategoryID
	if input.Image != "" {
		product.Image = input.Image
	}

	if err := database.DB.Save(&product).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to update product")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "data": product})
}

// --- DELETE: Remove a product ---
func DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	var product models.Product
	if err := database.DB.First(&product, id).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Product not found")
		return
	}

	if err := database.DB.Delete(&product).Error; err != nil {
		// Usually a foreign key constraint from past sale line items
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Could not delete product. It might be linked to past sales.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// --- UPLOAD: Handle product image files ---
func UploadImage(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "No file uploaded")
		return
	}

	// Timestamped name keeps re-uploads of the same file from colliding
	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), file.Filename)
	filepath := "./uploads/" + filename

	if err := c.SaveUploadedFile(file, filepath); err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to save file")
		return
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     baseURL + "/uploads/" + filename,
	})
}
