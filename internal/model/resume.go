package model

import (
	"math/rand"
	"strconv"
	"time"
)

// Resume is the single document the whole application edits, previews and
// persists. JSON field names match the wire contract of the REST API, so a
// document can travel editor -> local snapshot -> backend verbatim.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
	JobTitle string `json:"jobTitle"`
	Summary  string `json:"summary"`
}

type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
	Current     bool   `json:"current"`
}

type Education struct {
	ID          string `json:"id"`
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Project types shown in the preview. Projects are partitioned by Type at
// render time, never stored separately.
const (
	ProjectTypeKey      = "Key"
	ProjectTypePersonal = "Personal"
)

type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Link        string `json:"link"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

type SocialLink struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type Resume struct {
	ID             string       `json:"id"`
	PersonalInfo   PersonalInfo `json:"personalInfo"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Projects       []Project    `json:"projects"`
	SocialLinks    []SocialLink `json:"socialLinks"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
	Languages      []string     `json:"languages"`
	CoverLetter    string       `json:"coverLetter"`
	ThemeColor     string       `json:"themeColor"`
	ATSScore       *float64     `json:"atsScore,omitempty"`
}

// DefaultThemeColor is the accent used until the user picks one, and the
// primary that gradient theme literals resolve to.
const DefaultThemeColor = "#4f46e5"

// NewEmptyResume returns a blank document. The id is a client-generated
// timestamp string; a persisted identifier replaces it after the first
// successful backend create.
func NewEmptyResume() Resume {
	return Resume{
		ID:             strconv.FormatInt(time.Now().UnixMilli(), 10),
		Experience:     []Experience{},
		Education:      []Education{},
		Projects:       []Project{},
		SocialLinks:    []SocialLink{},
		Skills:         []string{},
		Certifications: []string{},
		Languages:      []string{},
		ThemeColor:     DefaultThemeColor,
	}
}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewItemID returns a short random id used only for edit/remove addressing
// of list items. It carries no persisted meaning.
func NewItemID() string {
	b := make([]byte, 9)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// Normalize replaces nil collections with empty ones so a document survives
// a JSON round trip unchanged regardless of where it was decoded from.
func (r Resume) Normalize() Resume {
	if r.Experience == nil {
		r.Experience = []Experience{}
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
	if r.SocialLinks == nil {
		r.SocialLinks = []SocialLink{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Certifications == nil {
		r.Certifications = []string{}
	}
	if r.Languages == nil {
		r.Languages = []string{}
	}
	if r.ThemeColor == "" {
		r.ThemeColor = DefaultThemeColor
	}
	return r
}
