package model

import "time"

type Rental struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	PriceType   string    `db:"price_type" json:"price_type"`
	Category    string    `db:"category" json:"category"`
	Image       string    `db:"image" json:"image"`
	Available   bool      `db:"available" json:"available"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
