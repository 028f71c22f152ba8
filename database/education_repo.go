package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type EducationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) *EducationRepo {
	return &EducationRepo{db}
}

func (r *EducationRepo) FindAll(ctx context.Context, lang models.Language) ([]models.Education, error) {
	var records []models.EducationRecord
	if err := r.db.WithContext(ctx).Where("lang = ?", string(lang)).Order("id asc").Find(&records).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "education", err)
	}
	out := make([]models.Education, 0, len(records))
	for _, rec := range records {
		out = append(out, models.EducationFromRecord(rec))
	}
	return out, nil
}

func (r *EducationRepo) SaveAll(ctx context.Context, lang models.Language, education []models.Education) error {
	records := make([]models.EducationRecord, 0, len(education))
	ids := make([]int64, 0, len(education))
	for _, e := range education {
		records = append(records, e.ToRecord(lang))
		ids = append(ids, e.ID)
	}
	if err := replaceByID(ctx, r.db, string(lang), records, ids); err != nil {
		return errs.NewTransactionFailedError("save education", errs.NewDatabaseError("save", "education", err))
	}
	return nil
}
