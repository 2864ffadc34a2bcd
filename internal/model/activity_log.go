package model

import "time"

// Action 為稽核紀錄的動作種類
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// ItemType identifies which catalog table an activity entry points at.
type ItemType string

const (
	ItemFood   ItemType = "food"
	ItemRental ItemType = "rental"
)

// ActivityLog is an append-only audit row. ItemID and ItemType are nullable.
type ActivityLog struct {
	ID          int       `db:"id" json:"id"`
	Action      Action    `db:"action" json:"action"`
	Description string    `db:"description" json:"description"`
	ItemID      *int      `db:"item_id" json:"item_id"`
	ItemType    *ItemType `db:"item_type" json:"item_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
