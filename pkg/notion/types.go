package notion

import "strings"

// Page represents a page returned by a database query. Only the
// property bag is interesting here; everything else Notion sends back
// is ignored.
type Page struct {
	ID         string              `json:"id"`
	Properties map[string]Property `json:"properties"`
}

// Property is a page property value. Notion tags every property with
// its declared type and puts the payload under a field of the same
// name, so this is a variant keyed by Type: exactly one of Title,
// RichText or URL is populated for the types this tool reads. Other
// property types decode with all payload fields empty.
type Property struct {
	Type     string     `json:"type"`
	Title    []RichText `json:"title,omitempty"`
	RichText []RichText `json:"rich_text,omitempty"`
	URL      *string    `json:"url,omitempty"`
}

// RichText is a single rich-text fragment. Only the rendered plain
// text matters; annotations and links are dropped.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// TitleText returns the concatenated plain text of a title property.
// The second result is false when the property is absent, not a title,
// or renders to an empty string.
func (p Page) TitleText(name string) (string, bool) {
	prop, ok := p.Properties[name]
	if !ok || prop.Type != "title" {
		return "", false
	}
	text := joinPlainText(prop.Title)
	return text, text != ""
}

// RichTextText returns the concatenated plain text of a rich_text
// property, with the same absence semantics as TitleText.
func (p Page) RichTextText(name string) (string, bool) {
	prop, ok := p.Properties[name]
	if !ok || prop.Type != "rich_text" {
		return "", false
	}
	text := joinPlainText(prop.RichText)
	return text, text != ""
}

// URLValue returns the value of a url property. The second result is
// false when the property is absent, not a url, or empty.
func (p Page) URLValue(name string) (string, bool) {
	prop, ok := p.Properties[name]
	if !ok || prop.Type != "url" || prop.URL == nil || *prop.URL == "" {
		return "", false
	}
	return *prop.URL, true
}

func joinPlainText(fragments []RichText) string {
	if len(fragments) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, fragment := range fragments {
		sb.WriteString(fragment.PlainText)
	}
	return sb.String()
}
