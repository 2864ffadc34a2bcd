package store

import (
	"context"

	"marketplace-api/internal/database"
	"marketplace-api/internal/model"
)

const foodColumns = `id, food_name, description, price, prep_time, category, image, created_at, updated_at`

// food 欄位常數，供部分更新使用
const (
	FoodName        = "food_name"
	FoodDescription = "description"
	FoodPrice       = "price"
	FoodPrepTime    = "prep_time"
	FoodCategory    = "category"
	FoodImage       = "image"
)

func scanFood(row interface{ Scan(...any) error }, f *model.Food) error {
	return row.Scan(
		&f.ID,
		&f.Name,
		&f.Description,
		&f.Price,
		&f.PrepTime,
		&f.Category,
		&f.Image,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
}

func CreateFood(ctx context.Context, db database.DB, f *model.Food) (*model.Food, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO food (food_name, description, price, prep_time, category, image)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		f.Name,
		f.Description,
		f.Price,
		f.PrepTime,
		f.Category,
		f.Image,
	)
	if err := row.Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, translate("CreateFood", err)
	}
	return f, nil
}

func GetFoodByID(ctx context.Context, db database.DB, id int) (*model.Food, error) {
	row := db.QueryRow(ctx, `SELECT `+foodColumns+` FROM food WHERE id = $1`, id)
	f := &model.Food{}
	if err := scanFood(row, f); err != nil {
		return nil, translate("GetFoodByID", err)
	}
	return f, nil
}

func ListFoods(ctx context.Context, db database.DB) ([]model.Food, error) {
	rows, err := db.Query(ctx, `SELECT `+foodColumns+` FROM food ORDER BY id`)
	if err != nil {
		return nil, translate("ListFoods", err)
	}
	defer rows.Close()

	foods := []model.Food{}
	for rows.Next() {
		var f model.Food
		if err := scanFood(rows, &f); err != nil {
			return nil, translate("ListFoods", err)
		}
		foods = append(foods, f)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("ListFoods", err)
	}
	return foods, nil
}

// UpdateFood 只更新 changes 內的欄位
func UpdateFood(ctx context.Context, db database.DB, id int, changes Changes) error {
	sql, args := buildUpdate("food", id, changes)
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return translate("UpdateFood", err)
	}
	if tag.RowsAffected() == 0 {
		return translate("UpdateFood", ErrNotFound)
	}
	return nil
}

func DeleteFood(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM food WHERE id = $1`, id)
	if err != nil {
		return translate("DeleteFood", err)
	}
	if tag.RowsAffected() == 0 {
		return translate("DeleteFood", ErrNotFound)
	}
	return nil
}

func CountFoods(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(id) FROM food`).Scan(&n); err != nil {
		return 0, translate("CountFoods", err)
	}
	return n, nil
}
