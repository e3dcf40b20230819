package domain

// Template selects the fixed layout a resume is composed into.
type Template string

const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
)

// PageFormat selects the physical page size for PDF output.
type PageFormat string

const (
	PageLetter PageFormat = "letter"
	PageA4     PageFormat = "a4"
)

// PaperSize returns the page dimensions in inches for the format.
func (f PageFormat) PaperSize() (width, height float64) {
	switch f {
	case PageA4:
		return 8.27, 11.69
	default:
		return 8.5, 11.0
	}
}

// ExportSettings carries the typography and spacing knobs a caller can tune
// per export. Numeric values are pixel magnitudes injected as literal CSS.
type ExportSettings struct {
	Template           Template   `json:"template"`
	PageSize           PageFormat `json:"page_size"`
	FontFamily         string     `json:"font_family"`
	NameSize           float64    `json:"name_size"`
	SectionHeadersSize float64    `json:"section_headers_size"`
	SubHeadersSize     float64    `json:"sub_headers_size"`
	BodyTextSize       float64    `json:"body_text_size"`
	SectionSpacing     float64    `json:"section_spacing"`
	EntrySpacing       float64    `json:"entry_spacing"`
	LineSpacing        float64    `json:"line_spacing"`
	TopBottomMargin    float64    `json:"top_bottom_margin"`
	SideMargins        float64    `json:"side_margins"`
	AlignTextLeftRight bool       `json:"align_text_left_right"`
	PageWidth          float64    `json:"page_width"`
	PageHeight         float64    `json:"page_height"`
}

// StandardSettings is the "modern" template preset and the default applied
// when a caller supplies no settings at all.
func StandardSettings() ExportSettings {
	return ExportSettings{
		Template:           TemplateModern,
		PageSize:           PageLetter,
		FontFamily:         "Arial, Helvetica, sans-serif",
		NameSize:           28,
		SectionHeadersSize: 16,
		SubHeadersSize:     13,
		BodyTextSize:       11,
		SectionSpacing:     18,
		EntrySpacing:       12,
		LineSpacing:        1.4,
		TopBottomMargin:    40,
		SideMargins:        40,
		AlignTextLeftRight: false,
		PageWidth:          816,
		PageHeight:         1056,
	}
}

// CompactSettings is the denser preset paired with the classic template.
func CompactSettings() ExportSettings {
	return ExportSettings{
		Template:           TemplateClassic,
		PageSize:           PageLetter,
		FontFamily:         "Arial, Helvetica, sans-serif",
		NameSize:           24,
		SectionHeadersSize: 14,
		SubHeadersSize:     12,
		BodyTextSize:       10,
		SectionSpacing:     12,
		EntrySpacing:       8,
		LineSpacing:        1.25,
		TopBottomMargin:    28,
		SideMargins:        32,
		AlignTextLeftRight: true,
		PageWidth:          816,
		PageHeight:         1056,
	}
}

// DefaultSettings returns the documented preset for a template.
func DefaultSettings(t Template) ExportSettings {
	if t == TemplateClassic {
		return CompactSettings()
	}
	return StandardSettings()
}
