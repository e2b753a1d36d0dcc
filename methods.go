package svutils

import (
	"fmt"
	"net/http"

	"github.com/moul/http2curl"

	"github.com/sclavijosuero/svutils/pkg/datapath"
	"github.com/sclavijosuero/svutils/pkg/format"
	"github.com/sclavijosuero/svutils/pkg/httpctx"
	"github.com/sclavijosuero/svutils/pkg/issue"
	"github.com/sclavijosuero/svutils/pkg/mismatch"
	"github.com/sclavijosuero/svutils/pkg/osutils"
	"github.com/sclavijosuero/svutils/pkg/validator"
)

// ValidateSchema validates data against jsonSchema and annotates every mismatch
// inside deep copy of data. jsonSchema may also be reference to file with
// schema on user OS, prefixed with file://. Zero-value styles fields fall back
// to default icons. Original data is never mutated.
func (vc *ValidationContext) ValidateSchema(data any, jsonSchema string, styles mismatch.Styles) (Result, error) {
	if jsonSchema == "" {
		return Result{}, fmt.Errorf("%w: schema should not be empty string", ErrSchema)
	}

	if reference, found := vc.fileRecognizer.Recognize(jsonSchema); found && reference.Reference.Type == osutils.ReferenceTypeOSPath {
		return vc.validate(vc.SchemaEngines.ReferenceEngine, data, reference.Reference.Value, styles)
	}

	return vc.validate(vc.SchemaEngines.StringEngine, data, jsonSchema, styles)
}

// ValidateSchemaByReference validates data against schema located in reference.
// reference may be URL or relative/full path to schema on user OS.
func (vc *ValidationContext) ValidateSchemaByReference(data any, reference string, styles mismatch.Styles) (Result, error) {
	if reference == "" {
		return Result{}, fmt.Errorf("%w: schema reference should not be empty string", ErrSchema)
	}

	return vc.validate(vc.SchemaEngines.ReferenceEngine, data, reference, styles)
}

// ValidateSchemaBytes deserializes document in JSON or YAML format - recognizing
// format on its own - and validates obtained data against jsonSchema.
func (vc *ValidationContext) ValidateSchemaBytes(document []byte, jsonSchema string, styles mismatch.Styles) (Result, error) {
	if jsonSchema == "" {
		return Result{}, fmt.Errorf("%w: schema should not be empty string", ErrSchema)
	}

	data, err := vc.deserializeDocument(document)
	if err != nil {
		return Result{}, err
	}

	return vc.ValidateSchema(data, jsonSchema, styles)
}

// ValidateNodeSchema finds node under expr inside document and validates only
// that node against jsonSchema. expr should be valid with pathfinder of given
// data format.
func (vc *ValidationContext) ValidateNodeSchema(df format.DataFormat, document []byte, expr, jsonSchema string, styles mismatch.Styles) (Result, error) {
	if jsonSchema == "" {
		return Result{}, fmt.Errorf("%w: schema should not be empty string", ErrSchema)
	}

	finder, err := vc.pathFinder(df)
	if err != nil {
		return Result{}, err
	}

	node, err := finder.Find(expr, document)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %s", ErrNode, err.Error())
	}

	return vc.ValidateSchema(datapath.Normalize(node), jsonSchema, styles)
}

// ValidateResponse validates body of resp against jsonSchema. Body is restored
// afterwards, so it may be read again by caller. When debug mode is on and
// validation failed, originating request is printed as curl command.
func (vc *ValidationContext) ValidateResponse(resp *http.Response, jsonSchema string, styles mismatch.Styles) (Result, error) {
	if jsonSchema == "" {
		return Result{}, fmt.Errorf("%w: schema should not be empty string", ErrSchema)
	}

	body, err := httpctx.ResponseBody(resp)
	if err != nil {
		return Result{}, err
	}

	result, err := vc.ValidateSchemaBytes(body, jsonSchema, styles)
	if err != nil {
		return Result{}, err
	}

	if result.Failed() && vc.Debugger.IsOn() && resp.Request != nil {
		command, cmdErr := http2curl.GetCurlCommand(resp.Request)
		if cmdErr == nil {
			vc.Debugger.Print(command.String())
		}
	}

	return result, nil
}

// MismatchAt returns value under expr from res.DataMismatches. expr should be
// valid with JSON pathfinder.
func (vc *ValidationContext) MismatchAt(res Result, expr string) (any, error) {
	bytes, err := vc.Serializers.JSON.Serialize(res.DataMismatches)
	if err != nil {
		return nil, err
	}

	node, err := vc.PathFinders.JSON.Find(expr, bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNode, err.Error())
	}

	return node, nil
}

// ValidateSchema validates data against jsonSchema using default services.
func ValidateSchema(data any, jsonSchema string, styles mismatch.Styles) (Result, error) {
	return NewDefaultValidationContext(false, "").ValidateSchema(data, jsonSchema, styles)
}

// validate runs engine on data and schema, annotates found issues and assembles Result.
func (vc *ValidationContext) validate(engine validator.Engine, data any, schema string, styles mismatch.Styles) (Result, error) {
	issues, err := engine.Validate(data, schema)
	if err != nil {
		return Result{}, err
	}

	mergedStyles := styles.Merge()
	annotated := vc.Annotator.Annotate(data, issues, mergedStyles)

	result := Result{Errors: issues, DataMismatches: annotated, IssuesStyles: mergedStyles}

	if result.Failed() && vc.Debugger.IsOn() {
		vc.debugIssues(data, issues)
		vc.debugMismatches(annotated)
	}

	return result, nil
}

// deserializeDocument deserializes document in JSON or YAML format,
// normalizing YAML mappings into JSON compatible form.
func (vc *ValidationContext) deserializeDocument(document []byte) (any, error) {
	var data any

	if format.IsJSON(document) {
		if err := vc.Serializers.JSON.Deserialize(document, &data); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDocument, err.Error())
		}

		return data, nil
	}

	if format.IsYAML(document) {
		if err := vc.Serializers.YAML.Deserialize(document, &data); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrDocument, err.Error())
		}

		return datapath.Normalize(data), nil
	}

	return nil, fmt.Errorf("%w: document is neither JSON nor YAML", ErrDocument)
}

// pathFinder picks pathfinder of given data format.
func (vc *ValidationContext) pathFinder(df format.DataFormat) (pathFinder, error) {
	switch df {
	case format.JSON:
		return vc.PathFinders.JSON, nil
	case format.YAML:
		return vc.PathFinders.YAML, nil
	default:
		return nil, fmt.Errorf("%w: unknown data format %s", ErrDocument, df)
	}
}

// debugIssues prints one line summary per issue together with JSON data type of offending value.
func (vc *ValidationContext) debugIssues(data any, issues []issue.Issue) {
	for _, i := range issues {
		value, found := datapath.Get(data, i.Path)
		if !found {
			vc.Debugger.Print(fmt.Sprintf("issue at %s: %s", i.Path.String(), i.Message))
			continue
		}

		vc.Debugger.Print(fmt.Sprintf("issue at %s (%s): %s", i.Path.String(), vc.TypeMappers.JSON.Map(value), i.Message))
	}
}

// debugMismatches prints whole annotated data mismatches tree.
func (vc *ValidationContext) debugMismatches(annotated any) {
	bytes, err := vc.Serializers.JSON.Serialize(annotated)
	if err != nil {
		return
	}

	vc.Debugger.Print(string(bytes))
}
