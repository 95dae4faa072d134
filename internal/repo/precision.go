package repo

import (
	"errors"
	"log/slog"

	"github.com/kynora/aster-agent/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PrecisionRepo 精度缓存的数据库实现，满足 precision.Cache
type PrecisionRepo struct {
	db *gorm.DB
}

func NewPrecisionRepo(db *gorm.DB) *PrecisionRepo {
	return &PrecisionRepo{
		db: db,
	}
}

func (repo *PrecisionRepo) Get(symbol string) (int, bool) {
	var e entity.SymbolPrecision
	err := repo.db.Where("symbol = ?", symbol).First(&e).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			slog.Error("fail to query symbol precision", "symbol", symbol, "error", err)
		}
		return 0, false
	}
	return e.Precision, true
}

func (repo *PrecisionRepo) Set(symbol string, precision int) error {
	return repo.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}},
		DoUpdates: clause.AssignmentColumns([]string{"precision", "updated_at"}),
	}).Create(&entity.SymbolPrecision{
		Symbol:    symbol,
		Precision: precision,
	}).Error
}
