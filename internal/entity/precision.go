package entity

import (
	"time"
)

// SymbolPrecision 已确认可用的下单数量精度
type SymbolPrecision struct {
	Symbol    string `gorm:"primaryKey"`
	Precision int
	CreatedAt time.Time
	UpdatedAt time.Time
}
