package svutils

import (
	"github.com/sclavijosuero/svutils/pkg/issue"
	"github.com/sclavijosuero/svutils/pkg/mismatch"
	"github.com/sclavijosuero/svutils/pkg/osutils"
	"github.com/sclavijosuero/svutils/pkg/types"
)

// debuggable defines desired debugger behaviour.
type debuggable interface {
	// Print prints provided info.
	Print(info string)

	// IsOn tells whether debugging mode is activated.
	IsOn() bool

	// TurnOn turns on debugging mode.
	TurnOn()

	// TurnOff turns off debugging mode.
	TurnOff()

	// Reset resets debugging mode to init state.
	Reset(isOn bool)
}

// serializable describes ability to serialize and deserialize data
type serializable interface {
	// Deserialize deserializes data on v
	Deserialize(data []byte, v any) error

	// Serialize serializes v
	Serialize(v any) ([]byte, error)
}

// annotator describes ability to rewrite validation issues into markers placed inside copy of validated data.
type annotator interface {
	// Annotate returns deep copy of data with every issue location overwritten by marker.
	Annotate(data any, issues []issue.Issue, styles mismatch.Styles) any
}

// fileRecognizer describes entity that has ability to find file reference in input
type fileRecognizer interface {
	// Recognize recognizes file reference in provided input
	Recognize(input string) (osutils.FileReference, bool)
}

// pathFinder describes ability to obtain node(s) from data in fixed data format
type pathFinder interface {
	// Find obtains data from bytes according to given expression
	Find(expr string, bytes []byte) (any, error)
}

// typeMapper represents entity that has ability to map data's type into corresponding types.DataType of given format.
type typeMapper interface {
	// Map maps data type.
	Map(data any) types.DataType
}
