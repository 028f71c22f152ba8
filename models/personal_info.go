package models

import (
	"time"

	"gorm.io/datatypes"
)

// PersonalInfo is the singleton profile record of one language.
type PersonalInfo struct {
	Name           string   `json:"name"`
	Role           string   `json:"role"`
	Title          string   `json:"title"`
	Bio            string   `json:"bio"`
	AboutText      string   `json:"aboutText"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	Location       string   `json:"location"`
	Linkedin       string   `json:"linkedin"`
	Github         string   `json:"github"`
	AvatarURL      string   `json:"avatarUrl,omitempty"`
	TechStackIcons []string `json:"techStackIcons,omitempty"`
	AboutImage     string   `json:"aboutImage,omitempty"`
	ResumeURL      string   `json:"resumeUrl,omitempty"`
}

// PersonalInfoPatch is a partially known PersonalInfo. A nil field means the
// source did not carry a value for it.
type PersonalInfoPatch struct {
	Name           *string  `json:"name,omitempty"`
	Role           *string  `json:"role,omitempty"`
	Title          *string  `json:"title,omitempty"`
	Bio            *string  `json:"bio,omitempty"`
	AboutText      *string  `json:"aboutText,omitempty"`
	Email          *string  `json:"email,omitempty"`
	Phone          *string  `json:"phone,omitempty"`
	Location       *string  `json:"location,omitempty"`
	Linkedin       *string  `json:"linkedin,omitempty"`
	Github         *string  `json:"github,omitempty"`
	AvatarURL      *string  `json:"avatarUrl,omitempty"`
	TechStackIcons []string `json:"techStackIcons,omitempty"`
	AboutImage     *string  `json:"aboutImage,omitempty"`
	ResumeURL      *string  `json:"resumeUrl,omitempty"`
}

// PersonalInfoRecord is the personal_info row. Columns are snake_case and
// nullable so that an unset remote value stays distinguishable from "".
type PersonalInfoRecord struct {
	Lang           string                      `json:"lang" gorm:"column:lang;type:text;primaryKey"`
	Name           *string                     `json:"name" gorm:"column:name;type:text"`
	Role           *string                     `json:"role" gorm:"column:role;type:text"`
	Title          *string                     `json:"title" gorm:"column:title;type:text"`
	Bio            *string                     `json:"bio" gorm:"column:bio;type:text"`
	AboutText      *string                     `json:"about_text" gorm:"column:about_text;type:text"`
	Email          *string                     `json:"email" gorm:"column:email;type:text"`
	Phone          *string                     `json:"phone" gorm:"column:phone;type:text"`
	Location       *string                     `json:"location" gorm:"column:location;type:text"`
	Linkedin       *string                     `json:"linkedin" gorm:"column:linkedin;type:text"`
	Github         *string                     `json:"github" gorm:"column:github;type:text"`
	AvatarURL      *string                     `json:"avatar_url" gorm:"column:avatar_url;type:text"`
	TechStackIcons datatypes.JSONSlice[string] `json:"tech_stack_icons" gorm:"column:tech_stack_icons;not null"`
	AboutImage     *string                     `json:"about_image" gorm:"column:about_image;type:text"`
	ResumeURL      *string                     `json:"resume_url" gorm:"column:resume_url;type:text"`
	UpdatedAt      time.Time                   `json:"updated_at" gorm:"column:updated_at"`
}

func (PersonalInfoRecord) TableName() string { return "personal_info" }

// Patch converts a fully populated PersonalInfo into a patch where every
// required field is set. Optional fields left empty stay nil.
func (p PersonalInfo) Patch() PersonalInfoPatch {
	return PersonalInfoPatch{
		Name:           ptr(p.Name),
		Role:           ptr(p.Role),
		Title:          ptr(p.Title),
		Bio:            ptr(p.Bio),
		AboutText:      ptr(p.AboutText),
		Email:          ptr(p.Email),
		Phone:          ptr(p.Phone),
		Location:       ptr(p.Location),
		Linkedin:       ptr(p.Linkedin),
		Github:         ptr(p.Github),
		AvatarURL:      optional(p.AvatarURL),
		TechStackIcons: cloneStrings(p.TechStackIcons),
		AboutImage:     optional(p.AboutImage),
		ResumeURL:      optional(p.ResumeURL),
	}
}

// ToRecord maps the patch onto the snake_case row of lang.
func (p PersonalInfoPatch) ToRecord(lang Language) PersonalInfoRecord {
	return PersonalInfoRecord{
		Lang:           string(lang),
		Name:           p.Name,
		Role:           p.Role,
		Title:          p.Title,
		Bio:            p.Bio,
		AboutText:      p.AboutText,
		Email:          p.Email,
		Phone:          p.Phone,
		Location:       p.Location,
		Linkedin:       p.Linkedin,
		Github:         p.Github,
		AvatarURL:      p.AvatarURL,
		TechStackIcons: datatypes.JSONSlice[string](cloneStrings(p.TechStackIcons)),
		AboutImage:     p.AboutImage,
		ResumeURL:      p.ResumeURL,
	}
}

// PersonalInfoFromRecord maps a row back to the camelCase model.
func PersonalInfoFromRecord(r PersonalInfoRecord) PersonalInfoPatch {
	return PersonalInfoPatch{
		Name:           r.Name,
		Role:           r.Role,
		Title:          r.Title,
		Bio:            r.Bio,
		AboutText:      r.AboutText,
		Email:          r.Email,
		Phone:          r.Phone,
		Location:       r.Location,
		Linkedin:       r.Linkedin,
		Github:         r.Github,
		AvatarURL:      r.AvatarURL,
		TechStackIcons: cloneStrings(r.TechStackIcons),
		AboutImage:     r.AboutImage,
		ResumeURL:      r.ResumeURL,
	}
}

func ptr(s string) *string {
	return &s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
