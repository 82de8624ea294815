package database

import (
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"kasir-pos/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupReportDB(t *testing.T) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	DB = db
}

// seedSales writes two days of sales:
//
//	day 1: tea 2x5000 and coffee 1x10000, totals 20000 gross, 19000 net
//	day 2: tea 1x5000, no discount
func seedSales(t *testing.T, day1, day2 time.Time) {
	t.Helper()

	cashier := models.User{Name: "Budi", Username: "budi", PasswordHash: "x", Role: "CASHIER"}
	category := models.Category{Name: "Drinks"}
	if err := DB.Create(&cashier).Error; err != nil {
		t.Fatalf("seed cashier: %v", err)
	}
	if err := DB.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}

	tea := models.Product{Name: "Tea", Price: 5000, Stock: 50, CategoryID: category.ID}
	coffee := models.Product{Name: "Coffee", Price: 10000, Stock: 2, CategoryID: category.ID}
	for _, p := range []*models.Product{&tea, &coffee} {
		if err := DB.Create(p).Error; err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}

	sales := []models.Transaction{
		{
			CashierID:       cashier.ID,
			Total:           19000, // 20000 gross minus 1000 discount
			Paid:            20000,
			Change:          1000,
			TransactionTime: day1,
			Details: []models.TransactionDetail{
				{ProductID: tea.ID, Quantity: 2, PriceAtSale: 5000, SubTotal: 10000},
				{ProductID: coffee.ID, Quantity: 1, PriceAtSale: 10000, SubTotal: 10000},
			},
		},
		{
			CashierID:       cashier.ID,
			Total:           5000,
			Paid:            5000,
			TransactionTime: day2,
			Details: []models.TransactionDetail{
				{ProductID: tea.ID, Quantity: 1, PriceAtSale: 5000, SubTotal: 5000},
			},
		},
	}
	for i := range sales {
		if err := DB.Create(&sales[i]).Error; err != nil {
			t.Fatalf("seed sale: %v", err)
		}
	}
}

func TestGetSalesSummaryRange(t *testing.T) {
	setupReportDB(t)

	day1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC)
	seedSales(t, day1, day2)

	// Only day 1
	summary, err := GetSalesSummary(
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 1, 23, 59, 59, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalCount != 1 {
		t.Errorf("expected 1 transaction on day 1, got %d", summary.TotalCount)
	}
	if math.Abs(summary.TotalRevenue-19000) > 1e-6 {
		t.Errorf("expected revenue 19000 on day 1, got %v", summary.TotalRevenue)
	}

	// Whole window
	summary, err = GetSalesSummary(
		time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 23, 59, 59, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalCount != 2 {
		t.Errorf("expected 2 transactions, got %d", summary.TotalCount)
	}
	if math.Abs(summary.TotalRevenue-24000) > 1e-6 {
		t.Errorf("expected revenue 24000, got %v", summary.TotalRevenue)
	}

	// Empty range still reports zero, not NULL
	summary, err = GetSalesSummary(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if summary.TotalCount != 0 || summary.TotalRevenue != 0 {
		t.Errorf("expected empty summary, got %+v", summary)
	}
}

func TestGetTopProducts(t *testing.T) {
	setupReportDB(t)
	seedSales(t,
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	)

	rows, err := GetTopProducts(5)
	if err != nil {
		t.Fatalf("top products: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 ranked products, got %d", len(rows))
	}
	// Tea: 15000 revenue across both days, Coffee: 10000.
	if rows[0].ProductName != "Tea" {
		t.Errorf("expected Tea first, got %q", rows[0].ProductName)
	}
	if math.Abs(rows[0].Revenue-15000) > 1e-6 {
		t.Errorf("expected Tea revenue 15000, got %v", rows[0].Revenue)
	}
	if rows[0].Sold != 3 {
		t.Errorf("expected 3 teas sold, got %d", rows[0].Sold)
	}
}

func TestGetLowStockAndDiscountGiven(t *testing.T) {
	setupReportDB(t)
	seedSales(t,
		time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 10, 0, 0, 0, time.UTC),
	)

	products, err := GetLowStock(1)
	if err != nil {
		t.Fatalf("low stock: %v", err)
	}
	if len(products) != 1 || products[0].Name != "Coffee" {
		t.Fatalf("expected Coffee as lowest stock, got %+v", products)
	}

	given, err := GetDiscountGiven()
	if err != nil {
		t.Fatalf("discount given: %v", err)
	}
	// Gross 25000 across all line items, net 24000 charged.
	if math.Abs(given-1000) > 1e-6 {
		t.Errorf("expected 1000 discount given, got %v", given)
	}
}
