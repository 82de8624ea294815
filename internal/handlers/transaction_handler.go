package handlers

import (
	"fmt"
	"net/http"
	"time"

	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Flat rate for loyalty members, applied before any voucher.
const memberDiscountRate = 0.05

type TransactionItem struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

type TransactionRequest struct {
	Items      []TransactionItem `json:"items" binding:"dive"`
	MemberID   *uint             `json:"member_id"`
	DiscountID *uint             `json:"discount_id"`
	Paid       float64           `json:"paid"`
}

// CreateTransaction runs the checkout: validate the cart against live stock,
// stack discounts, then persist the sale and the stock decrements as one unit.
// The cashier is always the authenticated caller, never a value from the body.
func CreateTransaction(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, KindValidation, "Invalid request body")
		return
	}
	if len(req.Items) == 0 {
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Cart is empty")
		return
	}

	cashierID := c.MustGet("userID").(uint)

	// Phase 1 is read-only: every line and the payment are checked before
	// anything is written, so a rejection leaves no partial record.
	var details []models.TransactionDetail
	var subtotal float64
	for _, item := range req.Items {
		var product models.Product
		if err := database.DB.First(&product, item.ProductID).Error; err != nil {
			fail(c, http.StatusNotFound, KindNotFound, fmt.Sprintf("Product %d not found", item.ProductID))
			return
		}

		if product.Stock < item.Quantity {
			fail(c, http.StatusUnprocessableEntity, KindBusinessRule, fmt.Sprintf("Insufficient stock for %s", product.Name))
			return
		}

		lineTotal := product.Price * float64(item.Quantity)
		subtotal += lineTotal
		details = append(details, models.TransactionDetail{
			ProductID:   product.ID,
			Quantity:    item.Quantity,
			PriceAtSale: product.Price,
			SubTotal:    lineTotal,
		})
	}

	total := subtotal

	// Members always get their flat cut off the running total.
	if req.MemberID != nil {
		var member models.Member
		if err := database.DB.First(&member, *req.MemberID).Error; err == nil {
			total -= total * memberDiscountRate
		}
	}

	// A voucher stacks after the member discount: eligibility is judged
	// against the gross subtotal, the reduction applies to the running total.
	if req.DiscountID != nil {
		var discount models.Discount
		if err := database.DB.First(&discount, *req.DiscountID).Error; err == nil && subtotal >= discount.MinTransaction {
			total -= total * (discount.Percent / 100)
		}
	}

	change := req.Paid - total
	if change < 0 {
		fail(c, http.StatusUnprocessableEntity, KindBusinessRule, "Insufficient payment")
		return
	}

	transaction := models.Transaction{
		CashierID:       cashierID,
		MemberID:        req.MemberID,
		DiscountID:      req.DiscountID,
		Total:           total,
		Paid:            req.Paid,
		Change:          change,
		TransactionTime: time.Now(),
		Details:         details,
	}

	// Phase 2: header, line items and stock decrements commit together or
	// not at all.
	tx := database.DB.Begin()

	if err := tx.Create(&transaction).Error; err != nil {
		tx.Rollback()
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to create transaction")
		return
	}

	for _, item := range req.Items {
		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
			Update("stock", gorm.Expr("stock - ?", item.Quantity))
		if res.Error != nil {
			tx.Rollback()
			fail(c, http.StatusInternalServerError, KindInternal, "Failed to update stock")
			return
		}
		// A concurrent sale can drain the stock between the pre-check and
		// this write; zero rows affected means we lost that race.
		if res.RowsAffected == 0 {
			tx.Rollback()
			fail(c, http.StatusUnprocessableEntity, KindBusinessRule, fmt.Sprintf("Insufficient stock for product %d", item.ProductID))
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to create transaction")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Transaction created",
		"data":    transaction,
	})
}

// GetTransactions lists past sales, newest first, with everything the
// receipt view needs preloaded.
func GetTransactions(c *gin.Context) {
	var transactions []models.Transaction

	err := database.DB.
		Preload("Cashier").
		Preload("Member").
		Preload("Discount").
		Preload("Details").
		Order("transaction_time desc").
		Find(&transactions).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": transactions})
}
