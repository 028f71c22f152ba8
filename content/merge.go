package content

import "github.com/rpupo63/portfolio-backend/models"

// MergePersonalInfo fills every field patch does not carry from base.
func MergePersonalInfo(patch *models.PersonalInfoPatch, base models.PersonalInfo) models.PersonalInfo {
	out := base
	out.TechStackIcons = clone(base.TechStackIcons)
	if patch == nil {
		return out
	}
	pick(&out.Name, patch.Name)
	pick(&out.Role, patch.Role)
	pick(&out.Title, patch.Title)
	pick(&out.Bio, patch.Bio)
	pick(&out.AboutText, patch.AboutText)
	pick(&out.Email, patch.Email)
	pick(&out.Phone, patch.Phone)
	pick(&out.Location, patch.Location)
	pick(&out.Linkedin, patch.Linkedin)
	pick(&out.Github, patch.Github)
	pick(&out.AvatarURL, patch.AvatarURL)
	pick(&out.AboutImage, patch.AboutImage)
	pick(&out.ResumeURL, patch.ResumeURL)
	if patch.TechStackIcons != nil {
		out.TechStackIcons = clone(patch.TechStackIcons)
	}
	return out
}

// MergeSnapshot overlays patch on base. A nil collection in patch keeps the
// base collection; a non-nil one replaces it, even when empty.
func MergeSnapshot(patch *models.SnapshotPatch, base models.Snapshot) models.Snapshot {
	out := base.Clone()
	if patch == nil {
		return out
	}
	out.PersonalInfo = MergePersonalInfo(patch.PersonalInfo, base.PersonalInfo)
	if patch.Projects != nil {
		out.Projects = models.CloneProjects(patch.Projects)
	}
	if patch.Experiences != nil {
		out.Experiences = clone(patch.Experiences)
	}
	if patch.Education != nil {
		out.Education = clone(patch.Education)
	}
	if patch.Skills != nil {
		out.Skills = models.CloneSkills(patch.Skills)
	}
	return out
}

// withoutEmptyCollections marks empty remote collections as absent so a
// table with no rows for the language falls back to the current content.
func withoutEmptyCollections(patch *models.SnapshotPatch) *models.SnapshotPatch {
	if patch == nil {
		return nil
	}
	out := *patch
	if len(out.Projects) == 0 {
		out.Projects = nil
	}
	if len(out.Experiences) == 0 {
		out.Experiences = nil
	}
	if len(out.Education) == 0 {
		out.Education = nil
	}
	if len(out.Skills) == 0 {
		out.Skills = nil
	}
	return &out
}

func pick(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func clone[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}
