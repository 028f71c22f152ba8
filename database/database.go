package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

type Database struct {
	db             *gorm.DB
	personalInfo   *PersonalInfoRepo
	projectRepo    *ProjectRepo
	experienceRepo *ExperienceRepo
	educationRepo  *EducationRepo
	skillRepo      *SkillRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		db:             db,
		personalInfo:   NewPersonalInfoRepo(db),
		projectRepo:    NewProjectRepo(db),
		experienceRepo: NewExperienceRepo(db),
		educationRepo:  NewEducationRepo(db),
		skillRepo:      NewSkillRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) PersonalInfoRepo() *PersonalInfoRepo {
	return d.personalInfo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ExperienceRepo() *ExperienceRepo {
	return d.experienceRepo
}

func (d Database) EducationRepo() *EducationRepo {
	return d.educationRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

// AllModels lists every table managed by the service.
func AllModels() []any {
	return []any{
		&models.PersonalInfoRecord{},
		&models.ProjectRecord{},
		&models.ExperienceRecord{},
		&models.EducationRecord{},
		&models.SkillRecord{},
	}
}

// Migrate creates or updates the five content tables.
func (d Database) Migrate() error {
	if err := d.db.AutoMigrate(AllModels()...); err != nil {
		return errs.NewDatabaseError("migrate", "content tables", err)
	}
	return nil
}

// Ping checks connectivity.
func (d Database) Ping(ctx context.Context) error {
	var result int
	if err := d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error; err != nil {
		return fmt.Errorf("testing database connection: %w", err)
	}
	return nil
}

// The methods below let Database serve as the reconciler's remote store.

func (d Database) FetchPersonalInfo(ctx context.Context, lang models.Language) (*models.PersonalInfoPatch, error) {
	return d.personalInfo.Find(ctx, lang)
}

func (d Database) FetchProjects(ctx context.Context, lang models.Language) ([]models.Project, error) {
	return d.projectRepo.FindAll(ctx, lang)
}

func (d Database) FetchExperiences(ctx context.Context, lang models.Language) ([]models.Experience, error) {
	return d.experienceRepo.FindAll(ctx, lang)
}

func (d Database) FetchEducation(ctx context.Context, lang models.Language) ([]models.Education, error) {
	return d.educationRepo.FindAll(ctx, lang)
}

func (d Database) FetchSkills(ctx context.Context, lang models.Language) ([]models.SkillCategory, error) {
	return d.skillRepo.FindAll(ctx, lang)
}

func (d Database) SavePersonalInfo(ctx context.Context, lang models.Language, info models.PersonalInfo) error {
	return d.personalInfo.Save(ctx, lang, info)
}

func (d Database) SaveProjects(ctx context.Context, lang models.Language, projects []models.Project) error {
	return d.projectRepo.SaveAll(ctx, lang, projects)
}

func (d Database) SaveExperiences(ctx context.Context, lang models.Language, experiences []models.Experience) error {
	return d.experienceRepo.SaveAll(ctx, lang, experiences)
}

func (d Database) SaveEducation(ctx context.Context, lang models.Language, education []models.Education) error {
	return d.educationRepo.SaveAll(ctx, lang, education)
}

func (d Database) SaveSkills(ctx context.Context, lang models.Language, skills []models.SkillCategory) error {
	return d.skillRepo.SaveAll(ctx, lang, skills)
}
