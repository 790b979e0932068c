package model

import (
	"time"

	"github.com/lib/pq"
)

type PurchasedProduct struct {
	BaseModel
	UserID      string         `db:"user_id" json:"user_id"`
	PurchaseID  string         `db:"purchase_id" json:"purchase_id"`
	ProductID   string         `db:"product_id" json:"product_id"`
	Name        string         `db:"name" json:"name"`
	Tags        pq.StringArray `db:"tags" json:"tags"`
	Price       float64        `db:"price" json:"price"`
	Quantity    float64        `db:"quantity" json:"quantity"`
	PurchasedAt time.Time      `db:"purchased_at" json:"purchased_at"`
}
