package links

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/evepupil/notion-friends-sync/pkg/logger"
	"github.com/evepupil/notion-friends-sync/pkg/notion"
)

func strPtr(s string) *string { return &s }

func submissionPage(id, name, url, description, avatar string) notion.Page {
	return notion.Page{
		ID: id,
		Properties: map[string]notion.Property{
			"name":        {Type: "title", Title: []notion.RichText{{PlainText: name}}},
			"url":         {Type: "url", URL: strPtr(url)},
			"description": {Type: "rich_text", RichText: []notion.RichText{{PlainText: description}}},
			"avatar":      {Type: "url", URL: strPtr(avatar)},
		},
	}
}

func TestMapPage_AllProperties(t *testing.T) {
	mapper := NewMapper(logger.New())

	entry := mapper.MapPage(submissionPage("p1", "Example Site", "https://example.com", "A test site", "https://example.com/a.png"))

	assert.Equal(t, Entry{
		Name:        "Example Site",
		Avatar:      "https://example.com/a.png",
		Description: "A test site",
		URL:         "https://example.com",
	}, entry)
}

func TestMapPage_Defaults(t *testing.T) {
	mapper := NewMapper(logger.New())

	tests := []struct {
		name string
		page notion.Page
		want Entry
	}{
		{
			name: "no properties at all",
			page: notion.Page{ID: "p1"},
			want: Entry{Name: DefaultName},
		},
		{
			name: "missing name",
			page: notion.Page{
				ID: "p2",
				Properties: map[string]notion.Property{
					"url": {Type: "url", URL: strPtr("https://example.com")},
				},
			},
			want: Entry{Name: DefaultName, URL: "https://example.com"},
		},
		{
			name: "empty title falls back",
			page: notion.Page{
				ID: "p3",
				Properties: map[string]notion.Property{
					"name": {Type: "title"},
				},
			},
			want: Entry{Name: DefaultName},
		},
		{
			name: "wrongly typed properties fall back",
			page: notion.Page{
				ID: "p4",
				Properties: map[string]notion.Property{
					"name":        {Type: "rich_text", RichText: []notion.RichText{{PlainText: "not a title"}}},
					"url":         {Type: "title", Title: []notion.RichText{{PlainText: "not a url"}}},
					"description": {Type: "url", URL: strPtr("https://example.com")},
					"avatar":      {Type: "rich_text"},
				},
			},
			want: Entry{Name: DefaultName},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mapper.MapPage(tt.page))
		})
	}
}

func TestMapPages_PreservesOrderAndDuplicates(t *testing.T) {
	mapper := NewMapper(logger.New())

	pages := []notion.Page{
		submissionPage("p1", "First", "https://one.example", "", ""),
		submissionPage("p2", "Second", "https://two.example", "", ""),
		submissionPage("p3", "First", "https://one.example", "", ""),
	}

	entries := mapper.MapPages(pages)
	assert.Len(t, entries, 3)
	assert.Equal(t, "First", entries[0].Name)
	assert.Equal(t, "Second", entries[1].Name)
	assert.Equal(t, entries[0], entries[2])
}

func TestMapPages_Empty(t *testing.T) {
	mapper := NewMapper(logger.New())
	entries := mapper.MapPages(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
