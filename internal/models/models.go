package models

import (
	"time"
)

// User - a staff account. Cashiers ring up sales, admins manage everything else.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Username     string    `gorm:"uniqueIndex;size:50" json:"username"`
	PasswordHash string    `json:"-"`    // Never return this in JSON
	Role         string    `json:"role"` // 'ADMIN', 'CASHIER'
	CreatedAt    time.Time `json:"created_at"`
}

// Category groups products in the catalog
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100" json:"name"`
}

// Product - The Inventory
type Product struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"` // whole currency units
	Stock      int      `json:"stock"`
	CategoryID uint     `json:"category_id"`
	Category   Category `json:"category"`
	Image      string   `json:"image"`
}

// Member - a loyalty customer. Attaching one to a sale grants a flat 5% off.
type Member struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `json:"name"`
	Phone     string    `gorm:"uniqueIndex;size:20" json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// Discount - a percentage voucher, eligible only above its minimum spend
type Discount struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `json:"name"`
	Percent        float64   `json:"percent"`
	MinTransaction float64   `json:"min_transaction"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Status         string    `json:"status"` // 'ACTIVE', 'INACTIVE'
}

// Transaction - The Sale Header. Immutable once created.
type Transaction struct {
	ID              uint                `gorm:"primaryKey" json:"id"`
	CashierID       uint                `json:"cashier_id"`
	Cashier         User                `gorm:"foreignKey:CashierID" json:"cashier"`
	MemberID        *uint               `json:"member_id"`
	Member          *Member             `json:"member,omitempty"`
	DiscountID      *uint               `json:"discount_id"`
	Discount        *Discount           `json:"discount,omitempty"`
	Total           float64             `json:"total"`
	Paid            float64             `json:"paid"`
	Change          float64             `json:"change"`
	TransactionTime time.Time           `json:"transaction_time"`
	Details         []TransactionDetail `gorm:"foreignKey:TransactionID" json:"details"`
}

// TransactionDetail - one line item within a sale
type TransactionDetail struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	TransactionID uint    `json:"transaction_id"`
	ProductID     uint    `json:"product_id"`
	Product       Product `json:"product"`
	Quantity      int     `json:"quantity"`
	PriceAtSale   float64 `json:"price_at_sale"` // Snapshot of price at time of sale
	SubTotal      float64 `json:"sub_total"`
}
