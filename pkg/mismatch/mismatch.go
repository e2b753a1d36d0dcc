// Package mismatch holds the annotator which rewrites schema validation
// findings into a deep copy of the validated document.
package mismatch

import (
	"fmt"
	"strings"

	"github.com/sclavijosuero/svutils/pkg/datapath"
	"github.com/sclavijosuero/svutils/pkg/issue"
	"github.com/sclavijosuero/svutils/pkg/serializer"
)

const (
	// DefaultIconPropertyError marks values present in document but rejected by schema.
	DefaultIconPropertyError = "⚠️"

	// DefaultIconPropertyMissing marks required properties absent from document.
	DefaultIconPropertyMissing = "❌"
)

const (
	// missingPropertyText follows icon inside marker of absent required property.
	missingPropertyText = "Missing property"

	// undefinedText is rendered in place of value that is absent from document.
	undefinedText = "undefined"
)

// Styles describes icons used while composing mismatch markers.
type Styles struct {
	// IconPropertyError precedes description of value present in document but rejected by schema.
	IconPropertyError string `json:"iconPropertyError"`

	// IconPropertyMissing precedes description of required property absent from document.
	IconPropertyMissing string `json:"iconPropertyMissing"`
}

// Annotator is entity that has ability to rewrite validation issues into
// markers placed inside deep copy of validated document.
type Annotator struct {
	serializer serializer.JSON
}

// DefaultStyles returns Styles with default icons.
func DefaultStyles() Styles {
	return Styles{
		IconPropertyError:   DefaultIconPropertyError,
		IconPropertyMissing: DefaultIconPropertyMissing,
	}
}

// Merge fills unset fields of s with default icons. Fields set by caller win.
func (s Styles) Merge() Styles {
	merged := DefaultStyles()

	if s.IconPropertyError != "" {
		merged.IconPropertyError = s.IconPropertyError
	}

	if s.IconPropertyMissing != "" {
		merged.IconPropertyMissing = s.IconPropertyMissing
	}

	return merged
}

func New() Annotator {
	return Annotator{serializer: serializer.NewJSONFormatter()}
}

// Annotate returns deep copy of data with every issue location overwritten by
// human readable marker describing the mismatch. Original data stays
// untouched. Issues are applied in given order - when two of them point at
// the same location, the later one wins. Issue with empty path is skipped.
func (a Annotator) Annotate(data any, issues []issue.Issue, styles Styles) any {
	annotated := datapath.Clone(data)
	if len(issues) == 0 {
		return annotated
	}

	styles = styles.Merge()

	for _, i := range issues {
		if len(i.Path) == 0 {
			continue
		}

		annotated = datapath.Set(annotated, i.Path, a.marker(data, i, styles))
	}

	return annotated
}

// marker composes marker text for single issue. Offending value is always
// read from the original document, never from the partially annotated copy,
// so overlapping paths do not leak earlier markers into rendered values.
func (a Annotator) marker(data any, i issue.Issue, styles Styles) string {
	if i.IsRequired() {
		return fmt.Sprintf("%s %s", styles.IconPropertyMissing, missingPropertyText)
	}

	value, found := datapath.Get(data, i.Path)

	return fmt.Sprintf(" %s %s %s", styles.IconPropertyError, a.renderValue(value, found), i.Message)
}

// renderValue renders value as compact single-quoted literal, safe to embed
// inside marker string. Value absent from document renders as undefined.
func (a Annotator) renderValue(value any, found bool) string {
	if !found {
		return undefinedText
	}

	bytes, err := a.serializer.Serialize(value)
	if err != nil {
		return strings.ReplaceAll(fmt.Sprintf("%+v", value), `"`, `'`)
	}

	return strings.ReplaceAll(string(bytes), `"`, `'`)
}
