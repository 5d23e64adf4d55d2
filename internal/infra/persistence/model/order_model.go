package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. BakerID references profiles.id, not users.id.
type OrderModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;index;not null"`
	BakerID     uuid.UUID `gorm:"type:uuid;index;not null"`
	PastryType  string    `gorm:"type:varchar(255);not null"`
	Quantity    int       `gorm:"not null;check:chk_orders_quantity,quantity > 0"`
	TotalAmount float64   `gorm:"type:numeric(10,2);not null;check:chk_orders_total_amount,total_amount > 0"`
	Status      string    `gorm:"type:varchar(32);not null;default:'pending'"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time

	User  *UserModel    `gorm:"foreignKey:UserID"`
	Baker *ProfileModel `gorm:"foreignKey:BakerID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// All lists every model, in dependency order, for AutoMigrate and gorm/gen.
func All() []any {
	return []any{
		&UserModel{},
		&ProfileModel{},
		&EducationEntryModel{},
		&OrderModel{},
	}
}
