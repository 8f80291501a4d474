package links

// DefaultName is used when a submission has no resolvable name
const DefaultName = "Untitled"

// Entry is one friend link in the generated document. All four fields
// are always present in the output; unresolvable values fall back to
// DefaultName or the empty string, never to null.
type Entry struct {
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Document is the full shape of the generated file
type Document struct {
	Friends []Entry `json:"friends"`
}

// NewDocument wraps entries in a Document, normalizing nil to an empty
// slice so zero results still serialize as a JSON array
func NewDocument(entries []Entry) Document {
	if entries == nil {
		entries = []Entry{}
	}
	return Document{Friends: entries}
}
