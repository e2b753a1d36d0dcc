// Package issue holds normalized representation of schema validation findings.
package issue

import (
	"fmt"
	"strings"
)

// MessageRequired is the reserved message reported when a required property is absent from the document.
const MessageRequired = "Required"

// Path addresses single location inside a document tree.
// Each segment is either a mapping key (string) or a sequence index (int).
type Path []any

// Issue represents single mismatch between document and schema.
type Issue struct {
	// Path points at the mismatched location inside the document.
	Path Path

	// Message is validation engine explanation of the mismatch.
	Message string
}

// New returns Issue addressed by given path segments.
func New(message string, segments ...any) Issue {
	return Issue{Path: segments, Message: message}
}

// IsRequired tells whether issue reports required property absent from the document.
func (i Issue) IsRequired() bool {
	return i.Message == MessageRequired
}

// String renders path as dotted/bracketed accessor, for example: user.roles[2].name
func (p Path) String() string {
	var sb strings.Builder
	for _, segment := range p {
		switch s := segment.(type) {
		case int:
			sb.WriteString(fmt.Sprintf("[%d]", s))
		case string:
			if sb.Len() > 0 {
				sb.WriteString(".")
			}

			sb.WriteString(s)
		default:
			if sb.Len() > 0 {
				sb.WriteString(".")
			}

			sb.WriteString(fmt.Sprintf("%v", s))
		}
	}

	return sb.String()
}
