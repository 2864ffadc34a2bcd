package service

import (
	"context"
	"fmt"
	"time"

	"marketplace-api/internal/database"
	"marketplace-api/internal/logger"
	"marketplace-api/internal/model"
	"marketplace-api/internal/store"
	"marketplace-api/internal/worker"
)

var (
	createActivityLog      = store.CreateActivityLog
	listRecentActivityLogs = store.ListRecentActivityLogs
)

// asyncAuditTimeout bounds a background audit write once the request is gone.
const asyncAuditTimeout = 5 * time.Second

// Auditor appends activity entries. With a nil pool the write happens inline
// and its error fails the caller; with a pool it is queued and failures are
// only logged.
type Auditor struct {
	db   database.DB
	pool worker.Pool
}

func NewAuditor(db database.DB, pool worker.Pool) *Auditor {
	return &Auditor{db: db, pool: pool}
}

func (a *Auditor) Async() bool { return a.pool != nil }

// Append 寫入一筆稽核紀錄
func (a *Auditor) Append(ctx context.Context, action model.Action, description string, itemID int, itemType model.ItemType) error {
	entry := &model.ActivityLog{
		Action:      action,
		Description: description,
		ItemID:      &itemID,
		ItemType:    &itemType,
	}

	if a.pool == nil {
		if err := createActivityLog(ctx, a.db, entry); err != nil {
			return fmt.Errorf("append activity: %w", err)
		}
		return nil
	}

	bg := context.WithoutCancel(ctx)
	a.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(bg, asyncAuditTimeout)
		defer cancel()
		if err := createActivityLog(ctx, a.db, entry); err != nil {
			logger.Errorf("async audit %s %s#%d failed: %v", action, itemType, itemID, err)
		}
	})
	return nil
}

// Recent returns at most limit entries, newest first.
func (a *Auditor) Recent(ctx context.Context, limit int) ([]model.ActivityLog, error) {
	logs, err := listRecentActivityLogs(ctx, a.db, limit)
	if err != nil {
		return nil, fmt.Errorf("recent activity: %w", err)
	}
	return logs, nil
}
