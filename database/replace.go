package database

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var idLangConflict = clause.OnConflict{
	Columns:   []clause.Column{{Name: "id"}, {Name: "lang"}},
	UpdateAll: true,
}

// replaceByID makes rows the whole collection of lang: every row is upserted
// on (id, lang), then rows of lang whose id is not in ids are deleted. An
// empty rows slice deletes the whole language.
func replaceByID[T any](ctx context.Context, db *gorm.DB, lang string, rows []T, ids []int64) error {
	var model T
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(rows) == 0 {
			return tx.Where("lang = ?", lang).Delete(&model).Error
		}
		if err := tx.Clauses(idLangConflict).Create(&rows).Error; err != nil {
			return err
		}
		return tx.Where("lang = ? AND id NOT IN ?", lang, ids).Delete(&model).Error
	})
}

func now() time.Time {
	return time.Now().UTC()
}
