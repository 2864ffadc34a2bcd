// Package store holds the SQL for every table. Functions take a database.DB so
// tests can pass a database.FakeDB.
package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// uniqueViolation is the postgres SQLSTATE for a unique constraint failure.
const uniqueViolation = "23505"

func translate(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Change is one column assignment of a partial UPDATE.
type Change struct {
	Column string
	Value  any
}

// Changes keeps assignment order stable so the generated SQL is predictable.
type Changes []Change

func (c Changes) Set(column string, value any) Changes {
	return append(c, Change{Column: column, Value: value})
}

// buildUpdate 產生部分更新 SQL；欄位名稱只來自程式常數，不接受使用者輸入
func buildUpdate(table string, id int, changes Changes) (string, []any) {
	sets := make([]string, 0, len(changes)+1)
	args := make([]any, 0, len(changes)+1)
	for i, ch := range changes {
		sets = append(sets, fmt.Sprintf("%s = $%d", ch.Column, i+1))
		args = append(args, ch.Value)
	}
	sets = append(sets, "updated_at = now()")
	args = append(args, id)
	sql := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d", table, strings.Join(sets, ", "), len(args))
	return sql, args
}
