package handlers

import (
	"net/http"
	"time"

	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
)

type DiscountRequest struct {
	Name           string   `json:"name" binding:"required"`
	Percent        *float64 `json:"percent" binding:"required,gt=0,lte=100"`
	MinTransaction *float64 `json:"min_transaction" binding:"required,gte=0"`
	StartDate      string   `json:"start_date" binding:"required"`
	EndDate        string   `json:"end_date" binding:"required"`
}

const dateLayout = "2006-01-02"

func (r *DiscountRequest) window() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	return
}

func GetDiscounts(c *gin.Context) {
	var discounts []models.Discount
	if err := database.DB.Find(&discounts).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch discounts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": discounts})
}

func AddDiscount(c *gin.Context) {
	var input DiscountRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "All discount fields are required")
		return
	}

	start, end, err := input.window()
	if err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Dates must be in YYYY-MM-DD format")
		return
	}

	discount := models.Discount{
		Name:           input.Name,
		Percent:        *input.Percent,
		MinTransaction: *input.MinTransaction,
		StartDate:      start,
		EndDate:        end,
		Status:         "ACTIVE",
	}

	if err := database.DB.Create(&discount).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to create discount")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Discount created", "data": discount})
}

func UpdateDiscount(c *gin.Context) {
	var discount models.Discount
	if err := database.DB.First(&discount, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Discount not found")
		return
	}

	var input DiscountRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "All discount fields are required")
		return
	}

	start, end, err := input.window()
	if err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Dates must be in YYYY-MM-DD format")
		return
	}

	discount.Name = input.Name
	discount.Percent = *input.Percent
	discount.MinTransaction = *input.MinTransaction
	discount.StartDate = start
	discount.EndDate = end

	if err := database.DB.Save(&discount).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to update discount")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Discount updated", "data": discount})
}

func DeleteDiscount(c *gin.Context) {
	var discount models.Discount
	if err := database.DB.First(&discount, c.Param("id")).Error; err != nil {
		fail(c, http.StatusNotFound, KindNotFound, "Discount not found")
		return
	}

	if err := database.DB.Delete(&discount).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to delete discount")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Discount deleted"})
}
