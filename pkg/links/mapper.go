package links

import (
	"github.com/evepupil/notion-friends-sync/pkg/logger"
	"github.com/evepupil/notion-friends-sync/pkg/notion"
)

// Source property names on the Notion database. A submission is a page
// with these four properties; anything else on the page is ignored.
const (
	propName        = "name"
	propURL         = "url"
	propDescription = "description"
	propAvatar      = "avatar"
)

// Mapper maps Notion pages to link entries
type Mapper struct {
	log *logger.Logger
}

// NewMapper creates a new link mapper
func NewMapper(log *logger.Logger) *Mapper {
	return &Mapper{log: log}
}

// MapPage maps a single page to an Entry. Extraction is total: a
// missing, empty or wrongly-typed property yields the documented
// default instead of an error.
func (m *Mapper) MapPage(page notion.Page) Entry {
	entry := Entry{Name: DefaultName}

	if name, ok := page.TitleText(propName); ok {
		entry.Name = name
	} else {
		m.log.Debugf("Page %s has no resolvable name, using %q", page.ID, DefaultName)
	}
	if url, ok := page.URLValue(propURL); ok {
		entry.URL = url
	}
	if description, ok := page.RichTextText(propDescription); ok {
		entry.Description = description
	}
	if avatar, ok := page.URLValue(propAvatar); ok {
		entry.Avatar = avatar
	}

	return entry
}

// MapPages maps pages to entries, preserving order. Duplicates in the
// source pass through unchanged.
func (m *Mapper) MapPages(pages []notion.Page) []Entry {
	entries := make([]Entry, 0, len(pages))
	for _, page := range pages {
		entries = append(entries, m.MapPage(page))
	}
	return entries
}
