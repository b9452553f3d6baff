package model

// SampleResume returns a filled-in document used by the demo CLI and tests.
func SampleResume() Resume {
	r := NewEmptyResume()
	r.PersonalInfo = PersonalInfo{
		FullName: "John Doe",
		Email:    "john.doe@example.com",
		Phone:    "+1 (555) 123-4567",
		Location: "San Francisco, CA",
		Website:  "johndoe.com",
		JobTitle: "Senior Software Engineer",
		Summary:  "Experienced full-stack developer with 5+ years in building scalable web applications.",
	}
	r.Experience = []Experience{{
		ID:          NewItemID(),
		Company:     "Tech Corp",
		Position:    "Senior Developer",
		StartDate:   "Jan 2021",
		EndDate:     "Present",
		Description: "Led development of microservices architecture using Node.js and React.",
		Current:     true,
	}}
	r.Education = []Education{{
		ID:          NewItemID(),
		School:      "Stanford University",
		Degree:      "BS Computer Science",
		StartDate:   "2016",
		EndDate:     "2020",
		Description: "GPA: 3.8/4.0",
	}}
	r.Projects = []Project{{
		ID:          NewItemID(),
		Name:        "Resume Builder",
		Role:        "Full Stack Developer",
		Link:        "github.com/johndoe/resume-builder",
		Description: "AI-powered resume builder with ATS optimization",
		Type:        ProjectTypeKey,
	}}
	r.SocialLinks = []SocialLink{
		{ID: NewItemID(), Platform: "LinkedIn", URL: "linkedin.com/in/johndoe"},
		{ID: NewItemID(), Platform: "GitHub", URL: "github.com/johndoe"},
	}
	r.Certifications = []string{"AWS Solutions Architect", "Google Cloud Professional"}
	r.Languages = []string{"English", "Spanish"}
	r.Skills = []string{"React", "Node.js", "JavaScript", "Python", "AWS", "Docker"}
	return r
}
