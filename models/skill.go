package models

import (
	"time"

	"gorm.io/datatypes"
)

// SkillCategory groups skill names under a title and an icon name.
type SkillCategory struct {
	Title  string   `json:"title"`
	Icon   string   `json:"icon"`
	Skills []string `json:"skills"`
}

// IconKind resolves the stored icon name.
func (s SkillCategory) IconKind() IconKind {
	return ParseIconKind(s.Icon)
}

// SkillRecord is the skills row. Rows have no stable identity; they are
// rewritten on every save and ordered by DisplayOrder.
type SkillRecord struct {
	ID            uint                        `json:"id" gorm:"column:id;primaryKey;autoIncrement"`
	Lang          string                      `json:"lang" gorm:"column:lang;type:text;not null;index:idx_skills_lang_order"`
	CategoryTitle string                      `json:"category_title" gorm:"column:category_title;type:text;not null"`
	CategoryIcon  string                      `json:"category_icon" gorm:"column:category_icon;type:text;not null"`
	Skills        datatypes.JSONSlice[string] `json:"skills" gorm:"column:skills;not null"`
	DisplayOrder  int                         `json:"display_order" gorm:"column:display_order;not null;index:idx_skills_lang_order"`
	UpdatedAt     time.Time                   `json:"updated_at" gorm:"column:updated_at"`
}

func (SkillRecord) TableName() string { return "skills" }

// ToRecord maps the category at position order of lang.
func (s SkillCategory) ToRecord(lang Language, order int) SkillRecord {
	skills := cloneStrings(s.Skills)
	if skills == nil {
		skills = []string{}
	}
	return SkillRecord{
		Lang:          string(lang),
		CategoryTitle: s.Title,
		CategoryIcon:  s.Icon,
		Skills:        skills,
		DisplayOrder:  order,
	}
}

func SkillCategoryFromRecord(r SkillRecord) SkillCategory {
	skills := cloneStrings(r.Skills)
	if skills == nil {
		skills = []string{}
	}
	return SkillCategory{
		Title:  r.CategoryTitle,
		Icon:   r.CategoryIcon,
		Skills: skills,
	}
}

func CloneSkills(in []SkillCategory) []SkillCategory {
	if in == nil {
		return nil
	}
	out := make([]SkillCategory, len(in))
	for i, s := range in {
		s.Skills = cloneStrings(s.Skills)
		out[i] = s
	}
	return out
}
