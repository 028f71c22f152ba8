package models

import (
	"sync/atomic"
	"time"
)

// Snapshot is the full content of one language.
type Snapshot struct {
	PersonalInfo PersonalInfo    `json:"personalInfo"`
	Projects     []Project       `json:"projects"`
	Experiences  []Experience    `json:"experiences"`
	Education    []Education     `json:"education"`
	Skills       []SkillCategory `json:"skills"`
}

// SnapshotPatch is a snapshot read from a source that may lack parts of it.
// Nil collections mean "not present".
type SnapshotPatch struct {
	PersonalInfo *PersonalInfoPatch `json:"personalInfo,omitempty"`
	Projects     []Project          `json:"projects,omitempty"`
	Experiences  []Experience       `json:"experiences,omitempty"`
	Education    []Education        `json:"education,omitempty"`
	Skills       []SkillCategory    `json:"skills,omitempty"`
}

// Clone returns a deep copy.
func (s Snapshot) Clone() Snapshot {
	info := s.PersonalInfo
	info.TechStackIcons = cloneStrings(info.TechStackIcons)
	out := Snapshot{
		PersonalInfo: info,
		Projects:     CloneProjects(s.Projects),
		Skills:       CloneSkills(s.Skills),
	}
	if s.Experiences != nil {
		out.Experiences = append([]Experience{}, s.Experiences...)
	}
	if s.Education != nil {
		out.Education = append([]Education{}, s.Education...)
	}
	return out
}

// Patch converts a complete snapshot into a patch carrying every part.
func (s Snapshot) Patch() SnapshotPatch {
	info := s.PersonalInfo.Patch()
	c := s.Clone()
	return SnapshotPatch{
		PersonalInfo: &info,
		Projects:     nonNil(c.Projects),
		Experiences:  nonNil(c.Experiences),
		Education:    nonNil(c.Education),
		Skills:       nonNil(c.Skills),
	}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}

var lastEntityID atomic.Int64

// NewEntityID returns a millisecond timestamp id, strictly increasing within
// the process so that two entities added in the same millisecond differ.
func NewEntityID() int64 {
	for {
		now := time.Now().UnixMilli()
		last := lastEntityID.Load()
		if now <= last {
			now = last + 1
		}
		if lastEntityID.CompareAndSwap(last, now) {
			return now
		}
	}
}
