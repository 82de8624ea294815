package database

import (
	"time"

	"kasir-pos/internal/models"
)

// SalesSummary aggregates the transactions inside one reporting period.
type SalesSummary struct {
	TotalRevenue float64
	TotalCount   int64
}

// ProductRevenue is one row of the best-seller ranking.
type ProductRevenue struct {
	ProductName string  `json:"product_name"`
	Sold        int     `json:"sold"`
	Revenue     float64 `json:"revenue"`
}

// GetSalesSummary sums revenue and counts transactions within a date range.
func GetSalesSummary(start, end time.Time) (*SalesSummary, error) {
	var result SalesSummary

	// COALESCE ensures we get 0 instead of NULL when no sales exist
	err := DB.Model(&models.Transaction{}).
		Where("transaction_time BETWEEN ? AND ?", start, end).
		Select("COALESCE(SUM(total), 0)").
		Scan(&result.TotalRevenue).Error
	if err != nil {
		return nil, err
	}

	err = DB.Model(&models.Transaction{}).
		Where("transaction_time BETWEEN ? AND ?", start, end).
		Count(&result.TotalCount).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// GetTopProducts ranks products by revenue across all recorded sales.
func GetTopProducts(limit int) ([]ProductRevenue, error) {
	var rows []ProductRevenue

	err := DB.Table("transaction_details").
		Select("products.name as product_name, SUM(transaction_details.quantity) as sold, SUM(transaction_details.sub_total) as revenue").
		Joins("JOIN products ON transaction_details.product_id = products.id").
		Group("products.name").
		Order("revenue desc").
		Limit(limit).
		Scan(&rows).Error

	return rows, err
}

// GetLowStock returns the products closest to running out.
func GetLowStock(limit int) ([]models.Product, error) {
	var products []models.Product
	err := DB.Order("stock asc").Limit(limit).Find(&products).Error
	return products, err
}

// GetDiscountGiven reports how much revenue was given away as discounts:
// the gross line-item total minus the net total actually charged.
func GetDiscountGiven() (float64, error) {
	var gross, net float64

	err := DB.Model(&models.TransactionDetail{}).
		Select("COALESCE(SUM(sub_total), 0)").
		Scan(&gross).Error
	if err != nil {
		return 0, err
	}

	err = DB.Model(&models.Transaction{}).
		Select("COALESCE(SUM(total), 0)").
		Scan(&net).Error
	if err != nil {
		return 0, err
	}

	return gross - net, nil
}
