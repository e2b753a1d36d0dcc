// Package validator holds utilities for validating data.
package validator

import "github.com/sclavijosuero/svutils/pkg/issue"

// Engine describes entity that can validate document data against some kind of schema and report found issues.
type Engine interface {
	// Validate validates data against schema. Nil issues mean data matches schema.
	// Non-nil error signals engine failure, not invalid data.
	Validate(data any, schema string) ([]issue.Issue, error)
}

// Validator describes validator
type Validator interface {
	// Validate validates in
	Validate(in any) error
}
