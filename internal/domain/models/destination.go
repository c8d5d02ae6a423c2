package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Destination is a place tours can be booked for.
type Destination struct {
	bun.BaseModel `bun:"table:destinations,alias:d"`

	ID          int64     `bun:"id,pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description" json:"description"`
	Country     string    `bun:"country,notnull" json:"country"`
	City        string    `bun:"city,notnull" json:"city"`
	ImageURL    string    `bun:"image_url" json:"imageUrl"`
	CreatedBy   string    `bun:"created_by" json:"createdBy"`
	CreatedAt   time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	IsActive    bool      `bun:"is_active" json:"isActive"`
	RowVersion  int64     `bun:"row_version,notnull,default:0" json:"rowVersion"`
}

func (d *Destination) PrimaryKey() int64  { return d.ID }
func (d *Destination) Version() int64     { return d.RowVersion }
func (d *Destination) SetVersion(v int64) { d.RowVersion = v }
