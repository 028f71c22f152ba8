package models

// Experience is one entry of the work timeline.
type Experience struct {
	ID          int64  `json:"id"`
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// ExperienceRecord is the experiences row, keyed by (id, lang).
type ExperienceRecord struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	Lang        string `json:"lang" gorm:"column:lang;type:text;primaryKey"`
	Role        string `json:"role" gorm:"column:role;type:text;not null"`
	Company     string `json:"company" gorm:"column:company;type:text;not null"`
	Period      string `json:"period" gorm:"column:period;type:text;not null"`
	Description string `json:"description" gorm:"column:description;type:text;not null"`
}

func (ExperienceRecord) TableName() string { return "experiences" }

func (e Experience) ToRecord(lang Language) ExperienceRecord {
	return ExperienceRecord{
		ID:          e.ID,
		Lang:        string(lang),
		Role:        e.Role,
		Company:     e.Company,
		Period:      e.Period,
		Description: e.Description,
	}
}

func ExperienceFromRecord(r ExperienceRecord) Experience {
	return Experience{
		ID:          r.ID,
		Role:        r.Role,
		Company:     r.Company,
		Period:      r.Period,
		Description: r.Description,
	}
}
