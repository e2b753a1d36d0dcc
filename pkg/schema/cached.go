package schema

import (
	jschema "github.com/xeipuuv/gojsonschema"

	"github.com/sclavijosuero/svutils/pkg/cache"
	"github.com/sclavijosuero/svutils/pkg/issue"
)

// CachedXGEngine is entity that has ability to validate data against JSON schema passed as string,
// keeping compiled form of every seen schema in cache. Consecutive validations
// against the same schema string skip compilation.
type CachedXGEngine struct {
	cache cache.Cache
}

// NewCachedXGEngine creates new CachedXGEngine storing compiled schemas in c
func NewCachedXGEngine(c cache.Cache) CachedXGEngine {
	return CachedXGEngine{cache: c}
}

// NewDefaultCachedXGEngine creates new CachedXGEngine with cache safe for concurrent use
func NewDefaultCachedXGEngine() CachedXGEngine {
	return NewCachedXGEngine(cache.NewConcurrentCache())
}

// Validate validates data against jsonSchema.
// according to xeipuuv/gojsonschema library it covers JSON Schema, draft v4 v6 & v7
func (e CachedXGEngine) Validate(data any, jsonSchema string) ([]issue.Issue, error) {
	compiled, err := e.compile(jsonSchema)
	if err != nil {
		return nil, err
	}

	result, err := compiled.Validate(jschema.NewGoLoader(data))
	if err != nil {
		return nil, err
	}

	return issuesFromXGResult(result), nil
}

// compile returns compiled form of jsonSchema, reusing cached one when present.
func (e CachedXGEngine) compile(jsonSchema string) (*jschema.Schema, error) {
	saved, err := e.cache.GetSaved(jsonSchema)
	if err == nil {
		if compiled, ok := saved.(*jschema.Schema); ok {
			return compiled, nil
		}
	}

	compiled, err := jschema.NewSchema(jschema.NewStringLoader(jsonSchema))
	if err != nil {
		return nil, err
	}

	e.cache.Save(jsonSchema, compiled)

	return compiled, nil
}
