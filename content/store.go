package content

import (
	"context"

	"github.com/rpupo63/portfolio-backend/models"
)

// RemoteStore is the per-collection backend of the reconciler. Fetches return
// nil (or an empty slice) for collections without rows.
type RemoteStore interface {
	FetchPersonalInfo(ctx context.Context, lang models.Language) (*models.PersonalInfoPatch, error)
	FetchProjects(ctx context.Context, lang models.Language) ([]models.Project, error)
	FetchExperiences(ctx context.Context, lang models.Language) ([]models.Experience, error)
	FetchEducation(ctx context.Context, lang models.Language) ([]models.Education, error)
	FetchSkills(ctx context.Context, lang models.Language) ([]models.SkillCategory, error)

	SavePersonalInfo(ctx context.Context, lang models.Language, info models.PersonalInfo) error
	SaveProjects(ctx context.Context, lang models.Language, projects []models.Project) error
	SaveExperiences(ctx context.Context, lang models.Language, experiences []models.Experience) error
	SaveEducation(ctx context.Context, lang models.Language, education []models.Education) error
	SaveSkills(ctx context.Context, lang models.Language, skills []models.SkillCategory) error
}
