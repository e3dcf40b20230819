package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRecord is the persisted shape of a resume: metadata columns plus a
// JSONB content blob holding the section collections.
type ResumeRecord struct {
	ID        uuid.UUID              `json:"id"`
	OwnerID   uuid.UUID              `json:"owner_id"`
	Title     string                 `json:"title"`
	Content   map[string]interface{} `json:"content"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// ResumeDocument is the normalized, render-ready projection of a resume.
// Every optional field is resolved to a deterministic default by the
// normalizer, so renderers never see nil.
type ResumeDocument struct {
	Title          string       `json:"title"`
	JobTitle       string       `json:"job_title"`
	PersonalInfo   PersonalInfo `json:"personal_info"`
	ProfilePicture string       `json:"profile_picture"`
	Strengths      []Strength   `json:"strengths"`
	WorkExperience []WorkEntry  `json:"work_experience"`
	Education      []EduEntry   `json:"education"`
	Courses        []Course     `json:"courses"`
	Interests      []Interest   `json:"interests"`
}

type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	City     string `json:"city"`
	State    string `json:"state"`
	Summary  string `json:"summary"`
	Website  string `json:"website"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type Strength struct {
	SkillName string `json:"skill_name"`
	Rating    int    `json:"rating"`
}

type BulletPoint struct {
	Description string `json:"description"`
}

// WorkEntry is a single employment record. When Current is true the end
// date is ignored and rendered as PRESENT.
type WorkEntry struct {
	Company      string        `json:"company"`
	Position     string        `json:"position"`
	StartDate    string        `json:"start_date"`
	EndDate      string        `json:"end_date"`
	Current      bool          `json:"current"`
	BulletPoints []BulletPoint `json:"bullet_points"`
}

type EduEntry struct {
	School    string   `json:"school"`
	Degree    string   `json:"degree"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Current   bool     `json:"current"`
	GPA       *float64 `json:"gpa,omitempty"`
}

type Course struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Link     string `json:"link"`
}

type Interest struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}
