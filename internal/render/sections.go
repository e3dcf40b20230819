package render

import (
	"fmt"
	"html"
	"strings"

	"resume-builder/internal/domain"
)

// Section renderers map one resume sub-collection to a self-contained HTML
// fragment. Typography comes from CSS variables the composer sets on the
// page root, so fragments stay settings-free and deterministic. An empty
// backing collection renders to an empty string; the composer omits the
// section wrapper entirely.

func esc(s string) string { return html.EscapeString(s) }

// dateRange renders "MM/YYYY - MM/YYYY", substituting PRESENT for ongoing
// entries. A current entry never dereferences its end date.
func dateRange(start, end string, current bool) string {
	from := FormatDate(start)
	if current {
		return from + " - PRESENT"
	}
	to := FormatDate(end)
	if to == "" {
		return from
	}
	return from + " - " + to
}

// RenderHeader renders the name, job title with its decorative underline,
// and the summary paragraph. The whole block is keyed on the job title
// being present; resumes without one get no header at all, which also drops
// the summary. That matches the shipped behavior and stays until product
// confirms the summary should stand alone.
func RenderHeader(doc *domain.ResumeDocument) string {
	if doc.JobTitle == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="header">`)
	b.WriteString(fmt.Sprintf(`<h1 style="font-size:var(--name-size);margin:0;">%s</h1>`, esc(doc.PersonalInfo.Name)))
	b.WriteString(fmt.Sprintf(`<div class="job-title" style="font-size:var(--sub-size);">%s</div>`, esc(doc.JobTitle)))
	b.WriteString(fmt.Sprintf(`<div class="underline" style="width:%dpx;height:3px;background:#2c3e50;margin:4px 0 8px 0;"></div>`, UnderlineWidth(doc.JobTitle)))
	if doc.PersonalInfo.Summary != "" {
		b.WriteString(fmt.Sprintf(`<p class="summary" style="font-size:var(--body-size);margin:0;">%s</p>`, esc(doc.PersonalInfo.Summary)))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func contactRow(icon, text, href string) string {
	body := esc(text)
	if href != "" {
		body = fmt.Sprintf(`<a href="%s" style="color:inherit;text-decoration:none;">%s</a>`, esc(href), body)
	}
	return fmt.Sprintf(`<div class="contact-row" style="font-size:var(--body-size);margin-bottom:4px;">%s %s</div>`, icon, body)
}

// RenderContact renders one icon+text row per populated contact field.
// Location is the comma-joined non-empty parts of city and state.
func RenderContact(info *domain.PersonalInfo) string {
	var rows []string
	if info.Email != "" {
		rows = append(rows, contactRow("&#9993;", info.Email, "mailto:"+info.Email))
	}
	if info.Phone != "" {
		rows = append(rows, contactRow("&#9742;", info.Phone, ""))
	}
	location := joinNonEmpty(", ", info.City, info.State)
	if location != "" {
		rows = append(rows, contactRow("&#9906;", location, ""))
	}
	if info.Website != "" {
		rows = append(rows, contactRow("&#127760;", FormatURLForDisplay(info.Website), EnsureURLHasProtocol(info.Website)))
	}
	if info.LinkedIn != "" {
		rows = append(rows, contactRow("in", FormatURLForDisplay(info.LinkedIn), EnsureURLHasProtocol(info.LinkedIn)))
	}
	if info.GitHub != "" {
		rows = append(rows, contactRow("&#10094;/&#10095;", FormatURLForDisplay(info.GitHub), EnsureURLHasProtocol(info.GitHub)))
	}
	if len(rows) == 0 {
		return ""
	}
	return `<div class="contact">` + strings.Join(rows, "") + `</div>`
}

// RenderSkills renders a label plus a horizontal bar per strength. Ratings
// are pre-clamped to 0..10 upstream; the fill width is rating*10 percent.
func RenderSkills(strengths []domain.Strength) string {
	if len(strengths) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="skills">`)
	for _, s := range strengths {
		b.WriteString(fmt.Sprintf(`<div class="skill" style="margin-bottom:6px;"><div style="font-size:var(--body-size);">%s</div>`, esc(s.SkillName)))
		b.WriteString(fmt.Sprintf(`<div class="skill-track" style="background:#e0e0e0;height:6px;"><div class="skill-fill" style="background:#2c3e50;height:6px;width:%d%%;"></div></div></div>`, s.Rating*10))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// RenderWorkExperience renders position/company/date-range headers with a
// bullet list per entry.
func RenderWorkExperience(entries []domain.WorkEntry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="experience">`)
	for _, e := range entries {
		b.WriteString(`<div class="entry" style="margin-bottom:var(--entry-spacing);">`)
		b.WriteString(fmt.Sprintf(`<div class="entry-title" style="font-size:var(--sub-size);font-weight:bold;">%s</div>`, esc(e.Position)))
		b.WriteString(fmt.Sprintf(`<div class="entry-sub" style="font-size:var(--body-size);">%s | %s</div>`, esc(e.Company), esc(dateRange(e.StartDate, e.EndDate, e.Current))))
		if len(e.BulletPoints) > 0 {
			b.WriteString(`<ul style="font-size:var(--body-size);margin:4px 0 0 0;padding-left:18px;">`)
			for _, bp := range e.BulletPoints {
				b.WriteString(fmt.Sprintf(`<li>%s</li>`, esc(bp.Description)))
			}
			b.WriteString(`</ul>`)
		}
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// RenderEducation follows the same date-range policy as work experience and
// appends the GPA only when one is stored.
func RenderEducation(entries []domain.EduEntry) string {
	if len(entries) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="education">`)
	for _, e := range entries {
		b.WriteString(`<div class="entry" style="margin-bottom:var(--entry-spacing);">`)
		b.WriteString(fmt.Sprintf(`<div class="entry-title" style="font-size:var(--sub-size);font-weight:bold;">%s</div>`, esc(e.Degree)))
		sub := fmt.Sprintf(`%s | %s`, esc(e.School), esc(dateRange(e.StartDate, e.EndDate, e.Current)))
		if e.GPA != nil {
			sub += fmt.Sprintf(` | GPA: %.2f`, *e.GPA)
		}
		b.WriteString(fmt.Sprintf(`<div class="entry-sub" style="font-size:var(--body-size);">%s</div>`, sub))
		b.WriteString(`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

// RenderCourses renders one row per course, linking the title when a link
// is stored and showing the link's registrable domain beside the provider.
func RenderCourses(courses []domain.Course) string {
	if len(courses) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="courses">`)
	for _, c := range courses {
		title := esc(c.Title)
		if c.Link != "" {
			title = fmt.Sprintf(`<a href="%s" style="color:inherit;">%s</a>`, esc(EnsureURLHasProtocol(c.Link)), title)
		}
		sub := esc(c.Provider)
		if c.Link != "" {
			sub = joinNonEmpty(" | ", sub, esc(DomainLabel(c.Link)))
		}
		b.WriteString(fmt.Sprintf(`<div class="entry" style="margin-bottom:var(--entry-spacing);"><div class="entry-title" style="font-size:var(--sub-size);font-weight:bold;">%s</div><div class="entry-sub" style="font-size:var(--body-size);">%s</div></div>`, title, sub))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// RenderInterests renders icon + name rows.
func RenderInterests(interests []domain.Interest) string {
	if len(interests) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="interests">`)
	for _, i := range interests {
		b.WriteString(fmt.Sprintf(`<div class="interest" style="font-size:var(--body-size);margin-bottom:4px;">%s %s</div>`, esc(i.Icon), esc(i.Name)))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func joinNonEmpty(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
