package model

// Explicit field-by-field merge functions. Imported/AI-generated documents
// arrive partially filled; each merge is total and defaults missing fields
// instead of dropping them.

// MergeParsed overlays the result of a binary import onto the current
// document. Structured sections replace the existing ones (a fresh import is
// authoritative for them) and every item gets a new local id; the flat string
// lists keep the current values when the import produced nothing.
func MergeParsed(base, parsed Resume) Resume {
	out := base.Normalize()

	out.PersonalInfo = mergePersonalInfo(base.PersonalInfo, parsed.PersonalInfo)

	out.Experience = make([]Experience, 0, len(parsed.Experience))
	for _, e := range parsed.Experience {
		e.ID = NewItemID()
		out.Experience = append(out.Experience, e)
	}

	out.Education = make([]Education, 0, len(parsed.Education))
	for _, e := range parsed.Education {
		e.ID = NewItemID()
		out.Education = append(out.Education, e)
	}

	out.Projects = make([]Project, 0, len(parsed.Projects))
	for _, p := range parsed.Projects {
		p.ID = NewItemID()
		if p.Type == "" {
			p.Type = ProjectTypeKey
		}
		out.Projects = append(out.Projects, p)
	}

	out.SocialLinks = make([]SocialLink, 0, len(parsed.SocialLinks))
	for _, s := range parsed.SocialLinks {
		s.ID = NewItemID()
		out.SocialLinks = append(out.SocialLinks, s)
	}

	if len(parsed.Skills) > 0 {
		out.Skills = parsed.Skills
	}
	if len(parsed.Certifications) > 0 {
		out.Certifications = parsed.Certifications
	}
	if len(parsed.Languages) > 0 {
		out.Languages = parsed.Languages
	}

	return out
}

// MergeOptimized overlays an ATS-optimized rewrite. Only the sections the
// optimizer rewrites (summary, experience descriptions, skills) are taken,
// and only when non-empty; everything else stays as edited by the user.
func MergeOptimized(base, opt Resume) Resume {
	out := base.Normalize()

	if opt.PersonalInfo.Summary != "" {
		out.PersonalInfo.Summary = opt.PersonalInfo.Summary
	}

	if len(opt.Experience) > 0 {
		merged := make([]Experience, 0, len(opt.Experience))
		for i, e := range opt.Experience {
			if i < len(base.Experience) {
				e.ID = base.Experience[i].ID
			}
			if e.ID == "" {
				e.ID = NewItemID()
			}
			merged = append(merged, e)
		}
		out.Experience = merged
	}

	if len(opt.Skills) > 0 {
		out.Skills = opt.Skills
	}

	return out
}

func mergePersonalInfo(base, in PersonalInfo) PersonalInfo {
	if in.FullName != "" {
		base.FullName = in.FullName
	}
	if in.Email != "" {
		base.Email = in.Email
	}
	if in.Phone != "" {
		base.Phone = in.Phone
	}
	if in.Location != "" {
		base.Location = in.Location
	}
	if in.Website != "" {
		base.Website = in.Website
	}
	if in.JobTitle != "" {
		base.JobTitle = in.JobTitle
	}
	if in.Summary != "" {
		base.Summary = in.Summary
	}
	return base
}
