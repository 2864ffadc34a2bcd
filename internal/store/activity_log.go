package store

import (
	"context"

	"marketplace-api/internal/database"
	"marketplace-api/internal/model"
)

// CreateActivityLog appends one audit row; created_at is assigned by the database.
func CreateActivityLog(ctx context.Context, db database.DB, l *model.ActivityLog) error {
	var itemType *string
	if l.ItemType != nil {
		s := string(*l.ItemType)
		itemType = &s
	}
	row := db.QueryRow(ctx,
		`INSERT INTO activity_logs (action, description, item_id, item_type, created_at)
		 VALUES ($1, $2, $3, $4, now())
		 RETURNING id, created_at`,
		string(l.Action),
		l.Description,
		l.ItemID,
		itemType,
	)
	if err := row.Scan(&l.ID, &l.CreatedAt); err != nil {
		return translate("CreateActivityLog", err)
	}
	return nil
}

// ListRecentActivityLogs 回傳最新的 limit 筆紀錄
func ListRecentActivityLogs(ctx context.Context, db database.DB, limit int) ([]model.ActivityLog, error) {
	rows, err := db.Query(ctx,
		`SELECT id, action, description, item_id, item_type, created_at
		 FROM activity_logs
		 ORDER BY created_at DESC, id DESC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, translate("ListRecentActivityLogs", err)
	}
	defer rows.Close()

	logs := []model.ActivityLog{}
	for rows.Next() {
		var (
			l        model.ActivityLog
			action   string
			itemType *string
		)
		if err := rows.Scan(&l.ID, &action, &l.Description, &l.ItemID, &itemType, &l.CreatedAt); err != nil {
			return nil, translate("ListRecentActivityLogs", err)
		}
		l.Action = model.Action(action)
		if itemType != nil {
			t := model.ItemType(*itemType)
			l.ItemType = &t
		}
		logs = append(logs, l)
	}
	if err := rows.Err(); err != nil {
		return nil, translate("ListRecentActivityLogs", err)
	}
	return logs, nil
}
