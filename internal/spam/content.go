package spam

import "strings"

// Content is the shared scannable shape of user-submitted entities.
// Only the free-text fields matter for scoring; empty fields are treated
// as absent.
type Content struct {
	Title       string
	Description string
	Message     string
	Name        string
	Comments    string
}

// Fields returns the present scannable fields keyed by field name.
func (c Content) Fields() map[string]string {
	fields := make(map[string]string, 5)
	if c.Title != "" {
		fields["title"] = c.Title
	}
	if c.Description != "" {
		fields["description"] = c.Description
	}
	if c.Message != "" {
		fields["message"] = c.Message
	}
	if c.Name != "" {
		fields["name"] = c.Name
	}
	if c.Comments != "" {
		fields["comments"] = c.Comments
	}
	return fields
}

// Blob concatenates all present fields into one text for pattern scans.
func (c Content) Blob() string {
	parts := make([]string, 0, 5)
	for _, v := range []string{c.Title, c.Description, c.Message, c.Name, c.Comments} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return strings.Join(parts, " ")
}
