package models

import (
	"time"

	"gorm.io/datatypes"
)

// Project is a portfolio entry shown in the projects grid.
type Project struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Image       string   `json:"image"`
	Screenshots []string `json:"screenshots,omitempty"`
	Link        string   `json:"link,omitempty"`
	Github      string   `json:"github,omitempty"`
}

// ProjectRecord is the projects row, keyed by (id, lang).
type ProjectRecord struct {
	ID          int64                       `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	Lang        string                      `json:"lang" gorm:"column:lang;type:text;primaryKey"`
	Title       string                      `json:"title" gorm:"column:title;type:text;not null"`
	Description string                      `json:"description" gorm:"column:description;type:text;not null"`
	Image       string                      `json:"image" gorm:"column:image;type:text;not null"`
	Github      *string                     `json:"github" gorm:"column:github;type:text"`
	Link        *string                     `json:"link" gorm:"column:link;type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags" gorm:"column:tags;not null"`
	Screenshots datatypes.JSONSlice[string] `json:"screenshots" gorm:"column:screenshots;not null"`
	UpdatedAt   time.Time                   `json:"updated_at" gorm:"column:updated_at"`
}

func (ProjectRecord) TableName() string { return "projects" }

// ToRecord maps the project onto its row in lang.
func (p Project) ToRecord(lang Language) ProjectRecord {
	tags := cloneStrings(p.Tags)
	if tags == nil {
		tags = []string{}
	}
	return ProjectRecord{
		ID:          p.ID,
		Lang:        string(lang),
		Title:       p.Title,
		Description: p.Description,
		Image:       p.Image,
		Github:      optional(p.Github),
		Link:        optional(p.Link),
		Tags:        tags,
		Screenshots: cloneStrings(p.Screenshots),
	}
}

// ProjectFromRecord maps a row back to the model.
func ProjectFromRecord(r ProjectRecord) Project {
	tags := cloneStrings(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	return Project{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Tags:        tags,
		Image:       r.Image,
		Screenshots: cloneStrings(r.Screenshots),
		Link:        deref(r.Link),
		Github:      deref(r.Github),
	}
}

// CloneProjects returns a deep copy so callers cannot alias reconciler state.
func CloneProjects(in []Project) []Project {
	if in == nil {
		return nil
	}
	out := make([]Project, len(in))
	for i, p := range in {
		p.Tags = cloneStrings(p.Tags)
		p.Screenshots = cloneStrings(p.Screenshots)
		out[i] = p
	}
	return out
}
