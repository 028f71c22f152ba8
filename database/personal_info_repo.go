package database

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type PersonalInfoRepo struct {
	db *gorm.DB
}

func NewPersonalInfoRepo(db *gorm.DB) *PersonalInfoRepo {
	return &PersonalInfoRepo{db}
}

// Find returns the personal info of lang, or nil when no row exists.
func (r *PersonalInfoRepo) Find(ctx context.Context, lang models.Language) (*models.PersonalInfoPatch, error) {
	var records []models.PersonalInfoRecord
	if err := r.db.WithContext(ctx).Where("lang = ?", string(lang)).Limit(1).Find(&records).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "personal info", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	patch := models.PersonalInfoFromRecord(records[0])
	return &patch, nil
}

// Save upserts the row keyed by lang.
func (r *PersonalInfoRepo) Save(ctx context.Context, lang models.Language, info models.PersonalInfo) error {
	record := info.Patch().ToRecord(lang)
	record.UpdatedAt = now()
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lang"}},
		UpdateAll: true,
	}).Create(&record).Error
	if err != nil {
		return errs.NewDatabaseError("save", "personal info", err)
	}
	return nil
}
