package render

import (
	"fmt"
	"strconv"
	"strings"

	"resume-builder/internal/domain"
)

// px renders a pixel magnitude without trailing zeros so output stays
// byte-stable across calls.
func px(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64) + "px"
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// sectionBlock wraps a fragment with its uppercase header. An empty
// fragment contributes nothing, including no header.
func sectionBlock(title, fragment string) string {
	if fragment == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="section" style="margin-bottom:var(--section-spacing);"><h2 style="font-size:var(--header-size);margin:0 0 6px 0;border-bottom:1px solid #2c3e50;">%s</h2>%s</div>`, title, fragment)
}

// Compose assembles the section fragments into a full self-contained HTML
// document for the selected template. It is a pure function: identical
// document and settings always produce byte-identical output, which is what
// makes preview caching safe.
func Compose(doc *domain.ResumeDocument, settings domain.ExportSettings) string {
	var body string
	if settings.Template == domain.TemplateClassic {
		body = composeClassic(doc)
	} else {
		body = composeModern(doc)
	}

	pw, ph := settings.PageSize.PaperSize()
	align := "left"
	if settings.AlignTextLeftRight {
		align = "justify"
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\"><style>")
	// Headless rendering strips backgrounds unless exact color printing is
	// forced on every element.
	b.WriteString("*{-webkit-print-color-adjust:exact;print-color-adjust:exact;box-sizing:border-box;}")
	b.WriteString(fmt.Sprintf("@page{size:%sin %sin;margin:0;}", num(pw), num(ph)))
	b.WriteString("body{margin:0;}a{color:inherit;}")
	b.WriteString("</style></head>")
	b.WriteString(fmt.Sprintf(
		`<body><div class="page" style="--name-size:%s;--header-size:%s;--sub-size:%s;--body-size:%s;--section-spacing:%s;--entry-spacing:%s;font-family:%s;line-height:%s;text-align:%s;width:%s;min-height:%s;padding:%s %s;background:#ffffff;">`,
		px(settings.NameSize),
		px(settings.SectionHeadersSize),
		px(settings.SubHeadersSize),
		px(settings.BodyTextSize),
		px(settings.SectionSpacing),
		px(settings.EntrySpacing),
		settings.FontFamily,
		num(settings.LineSpacing),
		align,
		px(settings.PageWidth),
		px(settings.PageHeight),
		px(settings.TopBottomMargin),
		px(settings.SideMargins),
	))
	b.WriteString(body)
	b.WriteString(`</div></body></html>`)
	return b.String()
}

// composeModern lays out a fixed-width sidebar (photo, contact, skills,
// interests) beside a flexible main column (header, experience, education,
// courses).
func composeModern(doc *domain.ResumeDocument) string {
	var sidebar strings.Builder
	if doc.ProfilePicture != "" {
		sidebar.WriteString(fmt.Sprintf(`<img src="%s" alt="" style="width:120px;height:120px;border-radius:50%%;object-fit:cover;margin-bottom:12px;">`, esc(doc.ProfilePicture)))
	}
	sidebar.WriteString(sectionBlock("CONTACT", RenderContact(&doc.PersonalInfo)))
	sidebar.WriteString(sectionBlock("SKILLS", RenderSkills(doc.Strengths)))
	sidebar.WriteString(sectionBlock("INTERESTS", RenderInterests(doc.Interests)))

	var main strings.Builder
	main.WriteString(RenderHeader(doc))
	main.WriteString(sectionBlock("WORK EXPERIENCE", RenderWorkExperience(doc.WorkExperience)))
	main.WriteString(sectionBlock("EDUCATION", RenderEducation(doc.Education)))
	main.WriteString(sectionBlock("COURSES", RenderCourses(doc.Courses)))

	return fmt.Sprintf(
		`<div class="columns" style="display:flex;"><div class="sidebar" style="width:240px;flex:0 0 240px;background:#f4f4f4;padding:16px;">%s</div><div class="main" style="flex:1;padding-left:24px;">%s</div></div>`,
		sidebar.String(), main.String(),
	)
}

// composeClassic is the single flowing column used with the compact preset.
func composeClassic(doc *domain.ResumeDocument) string {
	var b strings.Builder
	b.WriteString(RenderHeader(doc))
	b.WriteString(sectionBlock("CONTACT", RenderContact(&doc.PersonalInfo)))
	b.WriteString(sectionBlock("SKILLS", RenderSkills(doc.Strengths)))
	b.WriteString(sectionBlock("WORK EXPERIENCE", RenderWorkExperience(doc.WorkExperience)))
	b.WriteString(sectionBlock("EDUCATION", RenderEducation(doc.Education)))
	b.WriteString(sectionBlock("COURSES", RenderCourses(doc.Courses)))
	b.WriteString(sectionBlock("INTERESTS", RenderInterests(doc.Interests)))
	return b.String()
}
