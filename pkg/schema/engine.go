// Package schema holds engines that validate document data against a JSON schema.
//
// Package contains two types of engines:
//
// raw - which accepts JSON schema string,
// reference - which accepts reference to JSON schema,
//
//	JSONSchemaRawXGEngine has ability to validate data against JSON schema string written with draft v4 v6 or v7.
//	JSONSchemaReferenceXGEngine has ability to validate data against JSON schema passed as URL or OS path written with draft v4 v6 or v7.
//
// By default, gojsonschema will try to detect the draft of a schema by using the $schema keyword and parse it
// in a strict draft-04, draft-06 or draft-07 mode. If $schema is missing, or the draft version is not explicitely set,
// a hybrid mode is used which merges together functionality of all drafts into one mode.
//
//	JSONSchemaRawQIEngine has ability to validate data against JSON schema string written with draft 7 & 2019-09
//
// Every engine normalizes library specific output into ordered sequence of issue.Issue,
// where required property absent from document is reported with reserved
// issue.MessageRequired message and path pointing at the absent property itself.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/qri-io/jsonpointer"
	qrischema "github.com/qri-io/jsonschema"
	jschema "github.com/xeipuuv/gojsonschema"

	"github.com/sclavijosuero/svutils/pkg/httpctx"
	"github.com/sclavijosuero/svutils/pkg/issue"
	"github.com/sclavijosuero/svutils/pkg/osutils"
	v "github.com/sclavijosuero/svutils/pkg/validator"
)

// requiredMessageSuffix closes qri-io/jsonschema message reporting absent required property.
const requiredMessageSuffix = "value is required"

// JSONSchemaReferenceXGEngine is entity that has ability to validate data against JSON schema passed as reference.
// xeipuuv/gojsonschema is used under the hood.
type JSONSchemaReferenceXGEngine struct {
	fileValidator v.Validator
	urlValidator  v.Validator

	// schemasDir represents absolute path to JSON schemas directory.
	schemasDir string
}

// JSONSchemaRawXGEngine is entity that has ability to validate data against JSON schema passed as string.
// xeipuuv/gojsonschema is used under the hood
type JSONSchemaRawXGEngine struct{}

// JSONSchemaRawQIEngine is entity that has ability to validate data against JSON schema passed as string
// qri-io/jsonschema is used under the hood
type JSONSchemaRawQIEngine struct{}

// NewDefaultJSONSchemaReferenceXGEngine creates new JSONSchemaReferenceXGEngine with fixed services
func NewDefaultJSONSchemaReferenceXGEngine(schemasDir string) JSONSchemaReferenceXGEngine {
	return NewJSONSchemaReferenceXGEngine(schemasDir, osutils.NewFileValidator(), httpctx.NewURLValidator())
}

// NewJSONSchemaReferenceXGEngine creates new JSONSchemaReferenceXGEngine with provided services
func NewJSONSchemaReferenceXGEngine(schemasDir string, fileValidator v.Validator, urlValidator v.Validator) JSONSchemaReferenceXGEngine {
	return JSONSchemaReferenceXGEngine{
		fileValidator: fileValidator,
		urlValidator:  urlValidator,
		schemasDir:    schemasDir,
	}
}

// NewJSONSchemaRawXGEngine creates new JSONSchemaRawXGEngine
func NewJSONSchemaRawXGEngine() JSONSchemaRawXGEngine {
	return JSONSchemaRawXGEngine{}
}

// NewJSONSchemaRawQIEngine creates new JSONSchemaRawQIEngine
func NewJSONSchemaRawQIEngine() JSONSchemaRawQIEngine {
	return JSONSchemaRawQIEngine{}
}

// Validate validates data against JSON schema located in schemaPath.
// schemaPath may be URL or relative/full path to json schema on user OS
// according to xeipuuv/gojsonschema library it covers JSON Schema, draft v4 v6 & v7
func (e JSONSchemaReferenceXGEngine) Validate(data any, schemaPath string) ([]issue.Issue, error) {
	source, err := getSource(e.urlValidator, e.fileValidator, e.schemasDir, schemaPath)
	if err != nil {
		return nil, err
	}

	result, err := jschema.Validate(jschema.NewReferenceLoader(source), jschema.NewGoLoader(data))
	if err != nil {
		return nil, err
	}

	return issuesFromXGResult(result), nil
}

// Validate validates data against jsonSchema.
// according to xeipuuv/gojsonschema library it covers JSON Schema, draft v4 v6 & v7
func (e JSONSchemaRawXGEngine) Validate(data any, jsonSchema string) ([]issue.Issue, error) {
	result, err := jschema.Validate(jschema.NewStringLoader(jsonSchema), jschema.NewGoLoader(data))
	if err != nil {
		return nil, err
	}

	return issuesFromXGResult(result), nil
}

// Validate validates data against json schema.
// according to library documentation it covers https://json-schema.org drafts 7 & 2019-09
func (e JSONSchemaRawQIEngine) Validate(data any, jsonSchema string) ([]issue.Issue, error) {
	rs := &qrischema.Schema{}
	if err := json.Unmarshal([]byte(jsonSchema), rs); err != nil {
		return nil, err
	}

	document, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	keyErrs, err := rs.ValidateBytes(context.Background(), document)
	if err != nil {
		return nil, err
	}

	if len(keyErrs) == 0 {
		return nil, nil
	}

	issues := make([]issue.Issue, 0, len(keyErrs))
	for _, keyErr := range keyErrs {
		issues = append(issues, issueFromQIError(keyErr))
	}

	return issues, nil
}

// issuesFromXGResult maps gojsonschema result errors into ordered issues, preserving engine order.
func issuesFromXGResult(result *jschema.Result) []issue.Issue {
	if result.Valid() {
		return nil
	}

	issues := make([]issue.Issue, 0, len(result.Errors()))
	for _, resultError := range result.Errors() {
		issues = append(issues, issueFromXGError(resultError))
	}

	return issues
}

// issueFromXGError normalizes single gojsonschema result error. Absent required
// property is addressed by the property itself, not by its parent context.
func issueFromXGError(re jschema.ResultError) issue.Issue {
	p := pathFromField(re.Field())

	if re.Type() == "required" {
		if property, ok := re.Details()["property"].(string); ok {
			p = append(p, property)
		}

		return issue.Issue{Path: p, Message: issue.MessageRequired}
	}

	return issue.Issue{Path: p, Message: re.Description()}
}

// issueFromQIError normalizes single qri-io/jsonschema key error.
func issueFromQIError(ke qrischema.KeyError) issue.Issue {
	p := pathFromPointer(ke.PropertyPath)
	message := ke.Message

	if strings.HasSuffix(message, requiredMessageSuffix) {
		property := strings.Trim(strings.TrimSuffix(message, requiredMessageSuffix), ` "`)
		if property != "" && (len(p) == 0 || p[len(p)-1] != any(property)) {
			p = append(p, property)
		}

		return issue.Issue{Path: p, Message: issue.MessageRequired}
	}

	return issue.Issue{Path: p, Message: message}
}

// pathFromField splits gojsonschema field - for example user.roles.2.name -
// into path segments. Number becomes sequence index.
func pathFromField(field string) issue.Path {
	if field == "" || field == "(root)" {
		return issue.Path{}
	}

	parts := strings.Split(field, ".")
	p := make(issue.Path, 0, len(parts))
	for _, part := range parts {
		if index, err := strconv.Atoi(part); err == nil {
			p = append(p, index)
			continue
		}

		p = append(p, part)
	}

	return p
}

// pathFromPointer parses JSON pointer - for example /user/roles/2 - into path segments.
func pathFromPointer(pointer string) issue.Path {
	ptr, err := jsonpointer.Parse(pointer)
	if err != nil {
		return issue.Path{}
	}

	p := make(issue.Path, 0, len(ptr))
	for _, token := range ptr {
		if token == "" {
			continue
		}

		if index, err := strconv.Atoi(token); err == nil {
			p = append(p, index)
			continue
		}

		p = append(p, token)
	}

	return p
}

// getSource accepts rawSource, validate it and returns valid source
// available sources are: file system os path and URL
func getSource(urlValidator, fileValidator v.Validator, schemasDir, rawSource string) (string, error) {
	if rawSource == "" {
		return rawSource, errors.New("provided rawSource should not be empty string")
	}

	errURL := urlValidator.Validate(rawSource)
	if errURL == nil { // is valid URL
		return rawSource, nil
	}

	var pth string

	if path.IsAbs(rawSource) { // rawSource is valid absolute path
		pth = rawSource
	} else {
		pth = path.Clean(path.Join(schemasDir, rawSource))
	}

	errPath := fileValidator.Validate(pth)
	if errPath == nil { // pth points at some resource in user OS
		return fmt.Sprintf("%s%s", "file://", pth), nil
	}

	return "", fmt.Errorf("%s isn't valid path to any resource on your OS, nor valid URL", rawSource)
}
