package svutils

import "errors"

// ErrSchema tells that no valid schema was provided.
var ErrSchema = errors.New("you must provide a valid schema")

// ErrDocument tells that document has invalid or unknown format.
var ErrDocument = errors.New("invalid document format")

// ErrNode tells that there is some kind of error with document node.
var ErrNode = errors.New("invalid document node")
