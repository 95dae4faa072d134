package repo

import (
	"github.com/kynora/aster-agent/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.SymbolPrecision{})
}
