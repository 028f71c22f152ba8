package models

// Education is one entry of the education timeline.
type Education struct {
	ID          int64  `json:"id"`
	Degree      string `json:"degree"`
	School      string `json:"school"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// EducationRecord is the education row, keyed by (id, lang).
type EducationRecord struct {
	ID          int64  `json:"id" gorm:"column:id;primaryKey;autoIncrement:false"`
	Lang        string `json:"lang" gorm:"column:lang;type:text;primaryKey"`
	Degree      string `json:"degree" gorm:"column:degree;type:text;not null"`
	School      string `json:"school" gorm:"column:school;type:text;not null"`
	Period      string `json:"period" gorm:"column:period;type:text;not null"`
	Description string `json:"description" gorm:"column:description;type:text;not null"`
}

func (EducationRecord) TableName() string { return "education" }

func (e Education) ToRecord(lang Language) EducationRecord {
	return EducationRecord{
		ID:          e.ID,
		Lang:        string(lang),
		Degree:      e.Degree,
		School:      e.School,
		Period:      e.Period,
		Description: e.Description,
	}
}

func EducationFromRecord(r EducationRecord) Education {
	return Education{
		ID:          r.ID,
		Degree:      r.Degree,
		School:      r.School,
		Period:      r.Period,
		Description: r.Description,
	}
}
