package svutils

import (
	"github.com/sclavijosuero/svutils/pkg/debugger"
	"github.com/sclavijosuero/svutils/pkg/mismatch"
	"github.com/sclavijosuero/svutils/pkg/osutils"
	"github.com/sclavijosuero/svutils/pkg/pathfinder"
	"github.com/sclavijosuero/svutils/pkg/schema"
	"github.com/sclavijosuero/svutils/pkg/serializer"
	"github.com/sclavijosuero/svutils/pkg/types"
	"github.com/sclavijosuero/svutils/pkg/validator"
)

// ValidationContext holds utility services for validating data against JSON schemas
// and annotating mismatches.
type ValidationContext struct {
	// Debugger represents debugger.
	Debugger debuggable

	// SchemaEngines holds engines available to validate data against schemas.
	SchemaEngines SchemaEngines

	// Annotator is entity that has ability to rewrite validation issues into markers.
	Annotator annotator

	// PathFinders are entities that has ability to obtain data from different data formats.
	PathFinders PathFinders

	// Serializers are entities that has ability to serialize and deserialize data in particular format.
	Serializers Serializers

	// TypeMappers are entities that has ability to map underlying data type into different format data type.
	TypeMappers TypeMappers

	// fileRecognizer is entity that has ability to recognize file reference.
	fileRecognizer fileRecognizer
}

// SchemaEngines is container for JSON schema validation engines.
type SchemaEngines struct {
	// StringEngine represents entity that has ability to validate data against schema passed as string.
	StringEngine validator.Engine

	// ReferenceEngine represents entity that has ability to validate data against string with reference
	// to schema, which may be URL or relative/full OS path for example.
	ReferenceEngine validator.Engine
}

// PathFinders is container for different data types pathfinders.
type PathFinders struct {
	// JSON is entity that has ability to obtain data from bytes in JSON format.
	JSON pathFinder

	// YAML is entity that has ability to obtain data from bytes in YAML format.
	YAML pathFinder
}

// Serializers is container for entities that know how to serialize and deserialize data.
type Serializers struct {
	// JSON is entity that has ability to serialize and deserialize JSON bytes.
	JSON serializable

	// YAML is entity that has ability to serialize and deserialize YAML bytes.
	YAML serializable
}

// TypeMappers is container for different data format mappers
type TypeMappers struct {
	// JSON is entity that has ability to map underlying data type into JSON data type
	JSON typeMapper
}

// NewDefaultValidationContext returns *ValidationContext with default services.
// schemasDir may be empty string or valid full path to directory with JSON schemas.
func NewDefaultValidationContext(isDebug bool, schemasDir string) *ValidationContext {
	schemaEngines := SchemaEngines{
		StringEngine:    schema.NewDefaultCachedXGEngine(),
		ReferenceEngine: schema.NewDefaultJSONSchemaReferenceXGEngine(schemasDir),
	}

	pathFinders := PathFinders{
		JSON: pathfinder.NewDynamicJSONPathFinder(
			pathfinder.NewQJSONFinder(),
			pathfinder.NewGJSONFinder(),
			pathfinder.NewOliveagleJSONFinder(),
			pathfinder.NewAntchfxJSONQueryFinder(),
		),
		YAML: pathfinder.NewGoccyGoYamlFinder(),
	}

	serializers := Serializers{
		JSON: serializer.NewJSONFormatter(),
		YAML: serializer.NewYAMLFormatter(),
	}

	typeMappers := TypeMappers{
		JSON: types.NewJSONTypeMapper(),
	}

	return NewValidationContext(schemaEngines, pathFinders, serializers, typeMappers, mismatch.New(), debugger.NewDefault(isDebug))
}

// NewValidationContext returns *ValidationContext
func NewValidationContext(se SchemaEngines, p PathFinders, s Serializers, t TypeMappers, a annotator, d debuggable) *ValidationContext {
	return &ValidationContext{
		Debugger:       d,
		SchemaEngines:  se,
		Annotator:      a,
		PathFinders:    p,
		Serializers:    s,
		TypeMappers:    t,
		fileRecognizer: osutils.NewOSFileRecognizer("file://", osutils.NewFileValidator()),
	}
}

// SetDebugger sets new debugger for ValidationContext.
func (vc *ValidationContext) SetDebugger(d debuggable) {
	vc.Debugger = d
}

// SetStringEngine sets new schema StringEngine for ValidationContext.
func (vc *ValidationContext) SetStringEngine(e validator.Engine) {
	vc.SchemaEngines.StringEngine = e
}

// SetReferenceEngine sets new schema ReferenceEngine for ValidationContext.
func (vc *ValidationContext) SetReferenceEngine(e validator.Engine) {
	vc.SchemaEngines.ReferenceEngine = e
}

// SetAnnotator sets new annotator for ValidationContext.
func (vc *ValidationContext) SetAnnotator(a annotator) {
	vc.Annotator = a
}

// SetJSONPathFinder sets new JSON pathfinder for ValidationContext.
func (vc *ValidationContext) SetJSONPathFinder(r pathFinder) {
	vc.PathFinders.JSON = r
}

// SetYAMLPathFinder sets new YAML pathfinder for ValidationContext.
func (vc *ValidationContext) SetYAMLPathFinder(r pathFinder) {
	vc.PathFinders.YAML = r
}

// SetJSONSerializer sets new JSON serializer for ValidationContext.
func (vc *ValidationContext) SetJSONSerializer(s serializable) {
	vc.Serializers.JSON = s
}

// SetYAMLSerializer sets new YAML serializer for ValidationContext.
func (vc *ValidationContext) SetYAMLSerializer(s serializable) {
	vc.Serializers.YAML = s
}

// SetJSONTypeMapper sets new type mapper for JSON.
func (vc *ValidationContext) SetJSONTypeMapper(t typeMapper) {
	vc.TypeMappers.JSON = t
}
