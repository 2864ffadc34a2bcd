package model

import "time"

// DefaultCategory 未指定分類時使用
const DefaultCategory = "general"

type Food struct {
	ID          int       `db:"id"`
	Name        string    `db:"food_name"`
	Description string    `db:"description"`
	Price       float64   `db:"price"`
	PrepTime    string    `db:"prep_time"`
	Category    string    `db:"category"`
	Image       string    `db:"image"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}
