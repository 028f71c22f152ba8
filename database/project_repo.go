package database

import (
	"context"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns the projects of lang ordered by id
func (r *ProjectRepo) FindAll(ctx context.Context, lang models.Language) ([]models.Project, error) {
	var records []models.ProjectRecord
	if err := r.db.WithContext(ctx).Where("lang = ?", string(lang)).Order("id asc").Find(&records).Error; err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	projects := make([]models.Project, 0, len(records))
	for _, rec := range records {
		projects = append(projects, models.ProjectFromRecord(rec))
	}
	return projects, nil
}

// SaveAll replaces the projects of lang with projects
func (r *ProjectRepo) SaveAll(ctx context.Context, lang models.Language, projects []models.Project) error {
	updatedAt := now()
	records := make([]models.ProjectRecord, 0, len(projects))
	ids := make([]int64, 0, len(projects))
	for _, p := range projects {
		rec := p.ToRecord(lang)
		rec.UpdatedAt = updatedAt
		records = append(records, rec)
		ids = append(ids, p.ID)
	}
	if err := replaceByID(ctx, r.db, string(lang), records, ids); err != nil {
		return errs.NewTransactionFailedError("save projects", errs.NewDatabaseError("save", "projects", err))
	}
	return nil
}
