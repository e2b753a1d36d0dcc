// Package svutils provides ValidationContext struct with methods that validate data
// against JSON schema and annotate every mismatch inside a copy of the validated data.
//
// Besides raw list of found issues, every validation produces data mismatches tree:
// deep copy of validated data in which every failing location is overwritten by
// human readable marker. Required property absent from data is marked with
//
//	❌ Missing property
//
// and value present in data but rejected by schema is marked with
//
//	 ⚠️ 'offending value' engine message
//
// Icons may be overridden per call through mismatch.Styles.
//
// ValidationContext may be initialized by two ways:
//
// First, returns *ValidationContext with default services:
//
//	func NewDefaultValidationContext(isDebug bool, schemasDir string) *ValidationContext
//
// Second, more customisable returns *ValidationContext with provided services:
//
//	func NewValidationContext(se SchemaEngines, p PathFinders, s Serializers, t TypeMappers, a annotator, d debuggable) *ValidationContext
//
// No matter which way you choose, you can inject your custom services afterwards
// with one of available setters:
//
//	func (vc *ValidationContext) SetDebugger(d debuggable)
//	func (vc *ValidationContext) SetStringEngine(e validator.Engine)
//	func (vc *ValidationContext) SetReferenceEngine(e validator.Engine)
//	func (vc *ValidationContext) SetAnnotator(a annotator)
//	func (vc *ValidationContext) SetJSONPathFinder(r pathFinder)
//	func (vc *ValidationContext) SetYAMLPathFinder(r pathFinder)
//	func (vc *ValidationContext) SetJSONSerializer(s serializable)
//	func (vc *ValidationContext) SetYAMLSerializer(s serializable)
//	func (vc *ValidationContext) SetJSONTypeMapper(t typeMapper)
//
// Validation methods:
//
//	func (vc *ValidationContext) ValidateSchema(data any, jsonSchema string, styles mismatch.Styles) (Result, error)
//	func (vc *ValidationContext) ValidateSchemaByReference(data any, reference string, styles mismatch.Styles) (Result, error)
//	func (vc *ValidationContext) ValidateSchemaBytes(document []byte, jsonSchema string, styles mismatch.Styles) (Result, error)
//	func (vc *ValidationContext) ValidateNodeSchema(df format.DataFormat, document []byte, expr, jsonSchema string, styles mismatch.Styles) (Result, error)
//	func (vc *ValidationContext) ValidateResponse(resp *http.Response, jsonSchema string, styles mismatch.Styles) (Result, error)
//
// Looking up single marker inside data mismatches tree:
//
//	func (vc *ValidationContext) MismatchAt(res Result, expr string) (any, error)
package svutils
