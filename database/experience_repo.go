package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type ExperienceRepo struct {
	db *gorm.DB
}

func NewExperienceRepo(db *gorm.DB) *ExperienceRepo {
	return &ExperienceRepo{db}
}

// FindAll returns the experiences of lang ordered by id
func (r *ExperienceRepo) FindAll(ctx context.Context, lang models.Language) ([]models.Experience, error) {
	var records []models.ExperienceRecord
	if err := r.db.WithContext(ctx).Where("lang = ?", string(lang)).Order("id asc").Find(&records).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "experiences", err)
	}
	out := make([]models.Experience, 0, len(records))
	for _, rec := range records {
		out = append(out, models.ExperienceFromRecord(rec))
	}
	return out, nil
}

// SaveAll replaces the experiences of lang
func (r *ExperienceRepo) SaveAll(ctx context.Context, lang models.Language, experiences []models.Experience) error {
	records := make([]models.ExperienceRecord, 0, len(experiences))
	ids := make([]int64, 0, len(experiences))
	for _, e := range experiences {
		records = append(records, e.ToRecord(lang))
		ids = append(ids, e.ID)
	}
	if err := replaceByID(ctx, r.db, string(lang), records, ids); err != nil {
		return errs.NewTransactionFailedError("save experiences", errs.NewDatabaseError("save", "experiences", err))
	}
	return nil
}
