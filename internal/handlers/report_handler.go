package handlers

import (
	"net/http"
	"time"

	"kasir-pos/internal/database"
	"kasir-pos/internal/models"

	"github.com/gin-gonic/gin"
)

const criticalStockThreshold = 5

// StockRow is one line of the stock health report
type StockRow struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Stock    int     `json:"stock"`
	Status   string  `json:"status"`
}

// reportRange parses ?start=YYYY-MM-DD&end=YYYY-MM-DD, defaulting to today.
func reportRange(c *gin.Context) (time.Time, time.Time, bool) {
	startStr := c.Query("start")
	endStr := c.Query("end")

	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)

	if startStr != "" && endStr != "" {
		var err error
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return start, end, false
		}
		end, err = time.Parse("2006-01-02", endStr)
		if err != nil {
			return start, end, false
		}
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	return start, end, true
}

// --- GET: /api/reports/sales ---
func GetSalesReport(c *gin.Context) {
	start, end, ok := reportRange(c)
	if !ok {
		fail(c, http.StatusBadRequest, KindValidation, "Dates must be in YYYY-MM-DD format")
		return
	}

	summary, err := database.GetSalesSummary(start, end)
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to calculate sales")
		return
	}

	var transactions []models.Transaction
	err = database.DB.
		Preload("Cashier").
		Preload("Member").
		Where("transaction_time BETWEEN ? AND ?", start, end).
		Order("transaction_time desc").
		Find(&transactions).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch transactions")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period": gin.H{"start": start, "end": end},
		"summary": gin.H{
			"transaction_count": summary.TotalCount,
			"total_revenue":     summary.TotalRevenue,
		},
		"data": transactions,
	})
}

// --- GET: /api/reports/stock ---
func GetStockReport(c *gin.Context) {
	var products []models.Product
	if err := database.DB.Preload("Category").Order("stock asc").Find(&products).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch inventory")
		return
	}

	rows := make([]StockRow, 0, len(products))
	for _, p := range products {
		status := "OK"
		if p.Stock < criticalStockThreshold {
			status = "CRITICAL"
		}
		category := p.Category.Name
		if category == "" {
			category = "Uncategorized"
		}
		rows = append(rows, StockRow{
			ID:       p.ID,
			Name:     p.Name,
			Category: category,
			Price:    p.Price,
			Stock:    p.Stock,
			Status:   status,
		})
	}

	c.JSON(http.StatusOK, gin.H{"data": rows})
}

// --- GET: /api/reports/dashboard ---
// GetDashboard summarizes the whole store for the admin landing page.
func GetDashboard(c *gin.Context) {
	var totalCount int64
	if err := database.DB.Model(&models.Transaction{}).Count(&totalCount).Error; err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to count transactions")
		return
	}

	var netRevenue float64
	err := database.DB.Model(&models.Transaction{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&netRevenue).Error
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to calculate revenue")
		return
	}

	discountGiven, err := database.GetDiscountGiven()
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to calculate discounts")
		return
	}

	topProducts, err := database.GetTopProducts(5)
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch best sellers")
		return
	}

	lowStock, err := database.GetLowStock(5)
	if err != nil {
		fail(c, http.StatusInternalServerError, KindInternal, "Failed to fetch low stock")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": gin.H{
			"transaction_count": totalCount,
			"total_revenue":     netRevenue,
			"discount_given":    discountGiven,
		},
		"analysis": gin.H{
			"top_products": topProducts,
			"low_stock":    lowStock,
		},
	})
}
