package models

import (
	"time"

	"github.com/uptrace/bun"
)

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement" json:"id"`
	Name         string    `bun:"name,notnull" json:"name"`
	Email        string    `bun:"email,notnull,unique" json:"email"`
	PasswordHash string    `bun:"password_hash,notnull" json:"-"`
	Role         string    `bun:"role,notnull" json:"role"`
	Status       string    `bun:"status,notnull,default:'active'" json:"status"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"createdAt"`
	IsActive     bool      `bun:"is_active" json:"isActive"`
	RowVersion   int64     `bun:"row_version,notnull,default:0" json:"rowVersion"`
}

func (u *User) PrimaryKey() int64  { return u.ID }
func (u *User) Version() int64     { return u.RowVersion }
func (u *User) SetVersion(v int64) { u.RowVersion = v }
