package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestPage_TitleText(t *testing.T) {
	page := Page{
		ID: "p1",
		Properties: map[string]Property{
			"name":  {Type: "title", Title: []RichText{{PlainText: "Example "}, {PlainText: "Site"}}},
			"empty": {Type: "title"},
			"url":   {Type: "url", URL: strPtr("https://example.com")},
		},
	}

	text, ok := page.TitleText("name")
	assert.True(t, ok)
	assert.Equal(t, "Example Site", text)

	_, ok = page.TitleText("missing")
	assert.False(t, ok)

	_, ok = page.TitleText("empty")
	assert.False(t, ok)

	// A property of the wrong declared type is not a title
	_, ok = page.TitleText("url")
	assert.False(t, ok)
}

func TestPage_RichTextText(t *testing.T) {
	page := Page{
		Properties: map[string]Property{
			"description": {Type: "rich_text", RichText: []RichText{{PlainText: "A test site"}}},
			"name":        {Type: "title", Title: []RichText{{PlainText: "Example"}}},
		},
	}

	text, ok := page.RichTextText("description")
	assert.True(t, ok)
	assert.Equal(t, "A test site", text)

	_, ok = page.RichTextText("missing")
	assert.False(t, ok)

	_, ok = page.RichTextText("name")
	assert.False(t, ok)
}

func TestPage_URLValue(t *testing.T) {
	page := Page{
		Properties: map[string]Property{
			"url":   {Type: "url", URL: strPtr("https://example.com")},
			"blank": {Type: "url", URL: strPtr("")},
			"null":  {Type: "url"},
			"name":  {Type: "title", Title: []RichText{{PlainText: "Example"}}},
		},
	}

	url, ok := page.URLValue("url")
	assert.True(t, ok)
	assert.Equal(t, "https://example.com", url)

	for _, name := range []string{"blank", "null", "name", "missing"} {
		_, ok := page.URLValue(name)
		assert.False(t, ok, "property %q should not resolve", name)
	}
}
