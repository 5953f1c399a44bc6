// Package store holds a small order domain annotated with fixture tags. It is
// manufactured by the factory examples and checked by the CLI tests.
package store

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Product represents an individual item available for sale.
// Prices are kept in cents.
type Product struct {
	ID          int64             `json:"id"`
	SKU         string            `json:"sku"             fixture:"str=SKU-0001"`
	Name        string            `json:"name"            fixture:"len=12"`
	Description string            `json:"description"     fixture:"-"`
	PriceCents  int64             `json:"price_cents"     fixture:"min=100,max=99999"`
	Inventory   int               `json:"inventory_count" fixture:"num=7,comment='units on hand'"`
	Labels      map[string]string `json:"labels"          fixture:"size=2,key=label"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Customer represents the user placing orders.
type Customer struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"     fixture:"strategy=email"`
	FullName string    `json:"full_name"`
	Address  *string   `json:"address"`
	IsActive bool      `json:"is_active"`
	Orders   []*Order  `json:"orders"    fixture:"size=2"`
}

// SetEmail normalizes the address before storing it.
func (c *Customer) SetEmail(email string) {
	c.Email = strings.ToLower(email)
}

// Order represents a transaction made by a customer.
type Order struct {
	ID         int64       `json:"id"`
	Customer   *Customer   `json:"customer"`
	Status     OrderStatus `json:"status"      fixture:"str=PENDING"`
	TotalCents int64       `json:"total_cents" fixture:"min=0"`
	Items      []OrderItem `json:"items"       fixture:"size=3"`
	Notes      []string    `json:"notes"       fixture:"size=2,len=5"`
	OrderedAt  time.Time   `json:"ordered_at"`
}

// OrderItem represents a specific product line within an order.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"   fixture:"min=1,max=10"`
	UnitPrice int64  `json:"unit_price" fixture:"min=100"`
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)
