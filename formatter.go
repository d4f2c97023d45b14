package wallparse

import "strings"

// FormatRecords formats records for display, separated by blank lines.
func FormatRecords(records []*Record) string {
	if len(records) == 0 {
		return ""
	}

	parts := make([]string, 0, len(records))
	for _, rec := range records {
		parts = append(parts, FormatRecord(rec))
	}

	return strings.Join(parts, "\n\n")
}

// FormatRecord formats one record for display: a header naming the author
// and time, followed by its text, its likes and its comments indented below.
func FormatRecord(rec *Record) string {
	var b strings.Builder
	b.WriteString("## ")
	b.WriteString(rec.Profile)
	b.WriteString(" (")
	b.WriteString(rec.Datetime)
	b.WriteString(")")
	if rec.Type == RecordTypeLink {
		b.WriteString(" [link]")
	}
	if rec.Data != "" {
		b.WriteString("\n")
		b.WriteString(rec.Data)
	}
	if rec.Likes != nil {
		b.WriteString("\nLikes: ")
		b.WriteString(*rec.Likes)
	}
	for _, c := range rec.Comments {
		b.WriteString("\n  > ")
		b.WriteString(c.Profile)
		b.WriteString(" (")
		b.WriteString(c.Datetime)
		b.WriteString("): ")
		// Keep multi-line comments inside the quote block.
		b.WriteString(strings.ReplaceAll(c.Data, "\n", "\n    "))
	}
	return b.String()
}
