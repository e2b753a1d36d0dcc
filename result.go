package svutils

import (
	"github.com/sclavijosuero/svutils/pkg/issue"
	"github.com/sclavijosuero/svutils/pkg/mismatch"
)

// Result holds outcome of single schema validation call.
type Result struct {
	// Errors holds issues reported by validation engine in their original order.
	// Nil exactly when data matched schema.
	Errors []issue.Issue

	// DataMismatches is deep copy of validated data with every issue location
	// overwritten by human readable marker. When data matched schema it is
	// plain deep copy of data.
	DataMismatches any

	// IssuesStyles holds icons used while composing markers.
	IssuesStyles mismatch.Styles
}

// Failed tells whether validation reported any issue.
func (r Result) Failed() bool {
	return r.Errors != nil
}
