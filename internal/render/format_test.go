package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "ISO date", input: "2023-06-15", expected: "06/2023"},
		{name: "RFC3339", input: "2022-01-01T00:00:00Z", expected: "01/2022"},
		{name: "millis timestamp", input: "2021-11-30T08:15:00.000Z", expected: "11/2021"},
		{name: "empty stays empty", input: "", expected: ""},
		{name: "garbage unchanged", input: "not-a-date", expected: "not-a-date"},
		{name: "month is zero padded", input: "2024-03-09", expected: "03/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatDate(tt.input))
		})
	}
}

func TestFormatURLForDisplay(t *testing.T) {
	assert.Equal(t, "example.com/x", FormatURLForDisplay("https://www.example.com/x"))
	assert.Equal(t, "example.com", FormatURLForDisplay("http://example.com"))
	assert.Equal(t, "example.com", FormatURLForDisplay("www.example.com"))
	assert.Equal(t, "", FormatURLForDisplay(""))
}

func TestEnsureURLHasProtocol(t *testing.T) {
	assert.Equal(t, "https://example.com", EnsureURLHasProtocol("example.com"))
	assert.Equal(t, "https://example.com", EnsureURLHasProtocol("https://example.com"))
	assert.Equal(t, "http://example.com", EnsureURLHasProtocol("http://example.com"))
	assert.Equal(t, "", EnsureURLHasProtocol(""))
}

func TestUnderlineWidth(t *testing.T) {
	short := UnderlineWidth("Dev")
	longer := UnderlineWidth("Senior Developer")
	assert.Greater(t, longer, short)

	// bounded for absurdly long titles
	huge := UnderlineWidth("Principal Distinguished Staff Software Architect Of Everything Imaginable")
	assert.Equal(t, underlineMaxWidth, huge)
}

func TestDomainLabel(t *testing.T) {
	assert.Equal(t, "coursera.org", DomainLabel("https://www.coursera.org/learn/golang"))
	assert.Equal(t, "udemy.com", DomainLabel("udemy.com/course/go"))
	assert.Equal(t, "", DomainLabel(""))
}
