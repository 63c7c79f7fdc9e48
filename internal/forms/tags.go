package forms

import "strings"

// TagField edits a tag list (skills, used skills) through one comma-separated
// text buffer. The draft text and the committed sequence are kept apart: while
// typing, a trailing comma or stray spaces stay in the buffer untouched; only
// Commit derives the sequence, on blur or submit rather than per keystroke.
type TagField struct {
	draft     string
	committed []string
}

func NewTagField(tags []string) *TagField {
	f := &TagField{committed: append([]string(nil), tags...)}
	f.draft = f.Text()
	return f
}

// SetText replaces the draft buffer without touching the committed value.
func (f *TagField) SetText(text string) {
	f.draft = text
}

// Text returns the committed tags re-joined for editing.
func (f *TagField) Text() string {
	return strings.Join(f.committed, ", ")
}

// Commit splits the draft on commas, trims each segment and drops the empty
// ones. Order and duplicates are preserved exactly as entered.
func (f *TagField) Commit() []string {
	parts := strings.Split(f.draft, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	f.committed = tags
	f.draft = f.Text()
	return append([]string(nil), tags...)
}

// Tags returns the last committed sequence.
func (f *TagField) Tags() []string {
	return append([]string(nil), f.committed...)
}
