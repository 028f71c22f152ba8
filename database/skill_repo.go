package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

// FindAll returns the skill categories of lang in display order
func (r *SkillRepo) FindAll(ctx context.Context, lang models.Language) ([]models.SkillCategory, error) {
	var records []models.SkillRecord
	err := r.db.WithContext(ctx).
		Where("lang = ?", string(lang)).
		Order("display_order asc").
		Find(&records).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "skills", err)
	}
	out := make([]models.SkillCategory, 0, len(records))
	for _, rec := range records {
		out = append(out, models.SkillCategoryFromRecord(rec))
	}
	return out, nil
}

// SaveAll deletes every skill row of lang and inserts skills with their
// position as display_order. Categories have no identity to diff on.
func (r *SkillRepo) SaveAll(ctx context.Context, lang models.Language, skills []models.SkillCategory) error {
	updatedAt := now()
	records := make([]models.SkillRecord, 0, len(skills))
	for i, s := range skills {
		rec := s.ToRecord(lang, i)
		rec.UpdatedAt = updatedAt
		records = append(records, rec)
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("lang = ?", string(lang)).Delete(&models.SkillRecord{}).Error; err != nil {
			return err
		}
		if len(records) == 0 {
			return nil
		}
		return tx.Create(&records).Error
	})
	if err != nil {
		return errs.NewTransactionFailedError("save skills", errs.NewDatabaseError("save", "skills", err))
	}
	return nil
}
