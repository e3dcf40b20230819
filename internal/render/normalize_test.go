package render

import (
	"testing"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://resumes.example.com"

func record(content map[string]interface{}) *domain.ResumeRecord {
	return &domain.ResumeRecord{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   "My Resume",
		Content: content,
	}
}

func TestNormalizeDefaults(t *testing.T) {
	doc := Normalize(record(nil), testOrigin)

	assert.Equal(t, "My Resume", doc.Title)
	assert.Equal(t, "", doc.JobTitle)
	assert.Equal(t, "", doc.PersonalInfo.Name)
	assert.Equal(t, "", doc.ProfilePicture)
	assert.NotNil(t, doc.Strengths)
	assert.Empty(t, doc.Strengths)
	assert.NotNil(t, doc.WorkExperience)
	assert.Empty(t, doc.WorkExperience)
	assert.NotNil(t, doc.Courses)
}

func TestNormalizeNilRecord(t *testing.T) {
	doc := Normalize(nil, testOrigin)
	assert.Empty(t, doc.Title)
	assert.NotNil(t, doc.WorkExperience)
}

func TestProfilePictureResolution(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "data URI passes through", value: "data:image/png;base64,iVBOR", expected: "data:image/png;base64,iVBOR"},
		{name: "absolute URL passes through", value: "https://cdn.example.com/me.jpg", expected: "https://cdn.example.com/me.jpg"},
		{name: "client storage resolves empty", value: "local-storage:pic-123", expected: ""},
		{name: "uploads path gets origin", value: "/uploads/me.png", expected: testOrigin + "/uploads/me.png"},
		{name: "bare legacy name gets origin and path", value: "me.png", expected: testOrigin + "/uploads/me.png"},
		{name: "missing stays empty", value: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Normalize(record(map[string]interface{}{"profilePicture": tt.value}), testOrigin)
			assert.Equal(t, tt.expected, doc.ProfilePicture)
		})
	}
}

func TestNormalizePersonalInfoAndStrengths(t *testing.T) {
	doc := Normalize(record(map[string]interface{}{
		"jobTitle": "Engineer",
		"personalInfo": map[string]interface{}{
			"name":  "Ada",
			"email": "ada@example.com",
			"city":  "London",
		},
		"strengths": []interface{}{
			map[string]interface{}{"skillName": "Go", "rating": float64(9)},
			map[string]interface{}{"skillName": "SQL", "rating": float64(6)},
		},
	}), testOrigin)

	assert.Equal(t, "Engineer", doc.JobTitle)
	assert.Equal(t, "Ada", doc.PersonalInfo.Name)
	assert.Equal(t, "", doc.PersonalInfo.State)
	require.Len(t, doc.Strengths, 2)
	assert.Equal(t, 9, doc.Strengths[0].Rating)
}

func TestNormalizeCoercesMalformedShapes(t *testing.T) {
	doc := Normalize(record(map[string]interface{}{
		"workExperience": []interface{}{
			map[string]interface{}{
				"company":      "Acme",
				"position":     "Engineer",
				"startDate":    "2022-01-01",
				"endDate":      nil,
				"current":      true,
				"bulletPoints": "not-a-list",
			},
		},
		"education": "not-a-list",
		"courses":   float64(42),
	}), testOrigin)

	require.Len(t, doc.WorkExperience, 1)
	entry := doc.WorkExperience[0]
	assert.Equal(t, "Acme", entry.Company)
	assert.True(t, entry.Current)
	assert.Equal(t, "", entry.EndDate)
	assert.NotNil(t, entry.BulletPoints)
	assert.Empty(t, entry.BulletPoints)
	assert.Empty(t, doc.Education)
	assert.Empty(t, doc.Courses)
}

func TestNormalizeEducationGPA(t *testing.T) {
	doc := Normalize(record(map[string]interface{}{
		"education": []interface{}{
			map[string]interface{}{"school": "MIT", "degree": "BSc", "gpa": float64(3.8)},
			map[string]interface{}{"school": "Otherwise", "degree": "MSc"},
		},
	}), testOrigin)

	require.Len(t, doc.Education, 2)
	require.NotNil(t, doc.Education[0].GPA)
	assert.InDelta(t, 3.8, *doc.Education[0].GPA, 0.001)
	assert.Nil(t, doc.Education[1].GPA)
}
