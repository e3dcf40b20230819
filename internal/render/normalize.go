package render

import (
	"fmt"
	"strings"

	"resume-builder/internal/domain"
)

// clientStoragePrefix marks profile pictures the web client kept in browser
// storage. Those bytes never reach the server, so the value resolves to
// empty instead of producing a broken <img>.
const clientStoragePrefix = "local-storage:"

const uploadPath = "/uploads/"

// Normalize converts a stored resume record into a render-ready document.
// Content blobs are loosely typed JSON: every field may be missing, null or
// the wrong shape, and all of those coerce to deterministic defaults so no
// renderer needs defensive checks. Dates stay strings; the formatters own
// their degradation policy.
func Normalize(rec *domain.ResumeRecord, baseOrigin string) domain.ResumeDocument {
	doc := domain.ResumeDocument{
		Strengths:      []domain.Strength{},
		WorkExperience: []domain.WorkEntry{},
		Education:      []domain.EduEntry{},
		Courses:        []domain.Course{},
		Interests:      []domain.Interest{},
	}
	if rec == nil {
		return doc
	}
	doc.Title = rec.Title

	content := rec.Content
	if content == nil {
		content = map[string]interface{}{}
	}

	doc.JobTitle = asString(content["jobTitle"])
	doc.ProfilePicture = resolveProfilePicture(asString(content["profilePicture"]), baseOrigin)

	if pi := asMap(content["personalInfo"]); pi != nil {
		doc.PersonalInfo = domain.PersonalInfo{
			Name:     asString(pi["name"]),
			Email:    asString(pi["email"]),
			Phone:    asString(pi["phone"]),
			City:     asString(pi["city"]),
			State:    asString(pi["state"]),
			Summary:  asString(pi["summary"]),
			Website:  asString(pi["website"]),
			LinkedIn: asString(pi["linkedin"]),
			GitHub:   asString(pi["github"]),
		}
	}

	for _, item := range asList(content["strengths"]) {
		m := asMap(item)
		if m == nil {
			continue
		}
		doc.Strengths = append(doc.Strengths, domain.Strength{
			SkillName: asString(m["skillName"]),
			Rating:    int(asFloat(m["rating"])),
		})
	}

	for _, item := range asList(content["workExperience"]) {
		m := asMap(item)
		if m == nil {
			continue
		}
		entry := domain.WorkEntry{
			Company:      asString(m["company"]),
			Position:     asString(m["position"]),
			StartDate:    asString(m["startDate"]),
			EndDate:      asString(m["endDate"]),
			Current:      asBool(m["current"]),
			BulletPoints: []domain.BulletPoint{},
		}
		for _, bp := range asList(m["bulletPoints"]) {
			bm := asMap(bp)
			if bm == nil {
				// a bare string bullet still renders
				if s := asString(bp); s != "" {
					entry.BulletPoints = append(entry.BulletPoints, domain.BulletPoint{Description: s})
				}
				continue
			}
			entry.BulletPoints = append(entry.BulletPoints, domain.BulletPoint{Description: asString(bm["description"])})
		}
		doc.WorkExperience = append(doc.WorkExperience, entry)
	}

	for _, item := range asList(content["education"]) {
		m := asMap(item)
		if m == nil {
			continue
		}
		entry := domain.EduEntry{
			School:    asString(m["school"]),
			Degree:    asString(m["degree"]),
			StartDate: asString(m["startDate"]),
			EndDate:   asString(m["endDate"]),
			Current:   asBool(m["current"]),
		}
		if g, ok := m["gpa"]; ok && g != nil {
			if f, numeric := asFloatOK(g); numeric {
				entry.GPA = &f
			}
		}
		doc.Education = append(doc.Education, entry)
	}

	for _, item := range asList(content["courses"]) {
		m := asMap(item)
		if m == nil {
			continue
		}
		doc.Courses = append(doc.Courses, domain.Course{
			Title:    asString(m["title"]),
			Provider: asString(m["provider"]),
			Link:     asString(m["link"]),
		})
	}

	for _, item := range asList(content["interests"]) {
		m := asMap(item)
		if m == nil {
			continue
		}
		doc.Interests = append(doc.Interests, domain.Interest{
			Name: asString(m["name"]),
			Icon: asString(m["icon"]),
		})
	}

	return doc
}

// resolveProfilePicture applies the ordered resolution policy: data URIs and
// absolute URLs pass through, client-only storage resolves to empty, and
// anything else is treated as a legacy relative upload path.
func resolveProfilePicture(v, baseOrigin string) string {
	switch {
	case v == "":
		return ""
	case strings.HasPrefix(v, "data:"):
		return v
	case strings.HasPrefix(v, "http://"), strings.HasPrefix(v, "https://"):
		return v
	case strings.HasPrefix(v, clientStoragePrefix):
		return ""
	case strings.HasPrefix(v, uploadPath):
		return strings.TrimSuffix(baseOrigin, "/") + v
	default:
		return strings.TrimSuffix(baseOrigin, "/") + uploadPath + strings.TrimPrefix(v, "/")
	}
}

func asString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return ""
	}
}

func asBool(v interface{}) bool {
	b, _ := v.(bool)
	return b
}

func asFloat(v interface{}) float64 {
	f, _ := asFloatOK(v)
	return f
}

func asFloatOK(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		var f float64
		if _, err := fmt.Sscanf(t, "%g", &f); err == nil {
			return f, true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asMap(v interface{}) map[string]interface{} {
	m, _ := v.(map[string]interface{})
	return m
}

func asList(v interface{}) []interface{} {
	l, _ := v.([]interface{})
	return l
}
