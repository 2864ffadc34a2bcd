package store

import (
	"context"

	"marketplace-api/internal/database"
	"marketplace-api/internal/model"
)

const rentalColumns = `id, title, description, price, price_type, category, image, available, created_at, updated_at`

const (
	RentalTitle       = "title"
	RentalDescription = "description"
	RentalPrice       = "price"
	RentalPriceType   = "price_type"
	RentalCategory    = "category"
	RentalImage       = "image"
	RentalAvailable   = "available"
)

func scanRental(row interface{ Scan(...any) error }, r *model.Rental) error {
	return row.Scan(
		&r.ID,
		&r.Title,
		&r.Description,
		&r.Price,
		&r.PriceType,
		&r.Category,
		&r.Image,
		&r.Available,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
}

func CreateRental(ctx context.Context, db database.DB, r *model.Rental) (*model.Rental, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO rentals (title, description, price, price_type, category, image, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		r.Title,
		r.Description,
		r.Price,
		r.PriceType,
		r.Category,
		r.Image,
		r.Available,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt); err != nil {
		return nil, translate("CreateRental", err)
	}
	return r, nil
}

func GetRentalByID(ctx context.Context, db database.DB, id int) (*model.Rental, error) {
	row := db.QueryRow(ctx, `SELECT `+rentalColumns+` FROM rentals WHERE id = $1`, id)
	r := &model.Rental{}
	if err := scanRental(row, r); err != nil {
		return nil, translate("GetRentalByID", err)
	}
	return r, nil
}

// ListRentals 依 id 由新到舊排序
func ListRentals(ctx context.Context, db database.DB) ([]model.Rental, error) {
	rows, err := db.Query(ctx, `SELECT `+rentalColumns+` FROM rentals ORDER BY id DESC`)
	if err != nil {
		return nil, translate("ListRentals", err)
	}
	defer rows.Close()

	rentals := []model.Rental{}
	for rows.Next() {
		var r model.Rental
		if err := scanRental(rows, &r); err != nil {
			return nil, translate("ListRentals", err)
		}
		rentals = append(rentals, r)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("ListRentals", err)
	}
	return rentals, nil
}

func UpdateRental(ctx context.Context, db database.DB, id int, changes Changes) error {
	sql, args := buildUpdate("rentals", id, changes)
	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return translate("UpdateRental", err)
	}
	if tag.RowsAffected() == 0 {
		return translate("UpdateRental", ErrNotFound)
	}
	return nil
}

func DeleteRental(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	if err != nil {
		return translate("DeleteRental", err)
	}
	if tag.RowsAffected() == 0 {
		return translate("DeleteRental", ErrNotFound)
	}
	return nil
}

func CountRentals(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(id) FROM rentals`).Scan(&n); err != nil {
		return 0, translate("CountRentals", err)
	}
	return n, nil
}

func CountAvailableRentals(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(id) FROM rentals WHERE available = TRUE`).Scan(&n); err != nil {
		return 0, translate("CountAvailableRentals", err)
	}
	return n, nil
}
