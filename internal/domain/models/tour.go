package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Tour is a scheduled trip to a single destination.
type Tour struct {
	bun.BaseModel `bun:"table:tours,alias:t"`

	ID              int64        `bun:"id,pk,autoincrement" json:"id"`
	Name            string       `bun:"name,notnull" json:"name"`
	Description     string       `bun:"description" json:"description"`
	StartDate       time.Time    `bun:"start_date,notnull" json:"startDate"`
	EndDate         time.Time    `bun:"end_date,notnull" json:"endDate"`
	Price           float64      `bun:"price,notnull" json:"price"`
	MaxParticipants int          `bun:"max_participants,notnull" json:"maxParticipants"`
	DestinationID   int64        `bun:"destination_id,notnull" json:"destinationId"`
	Destination     *Destination `bun:"rel:belongs-to,join:destination_id=id" json:"destination,omitempty"`
	CreatedBy       string       `bun:"created_by" json:"createdBy"`
	CreatedAt       time.Time    `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	IsActive        bool         `bun:"is_active" json:"isActive"`
	RowVersion      int64        `bun:"row_version,notnull,default:0" json:"rowVersion"`
}

func (t *Tour) PrimaryKey() int64  { return t.ID }
func (t *Tour) Version() int64     { return t.RowVersion }
func (t *Tour) SetVersion(v int64) { t.RowVersion = v }
