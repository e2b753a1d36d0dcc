package schema

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/sclavijosuero/svutils/pkg/issue"
)

type mockedFileValidator struct {
	mock.Mock
}

type mockedUrlValidator struct {
	mock.Mock
}

func (m *mockedFileValidator) Validate(in any) error {
	args := m.Called(in)

	return args.Error(0)
}

func (m *mockedUrlValidator) Validate(in any) error {
	args := m.Called(in)

	return args.Error(0)
}

const userSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "number"},
		"name": {"type": "string"}
	},
	"required": ["id", "name"]
}`

func TestGetSource(t *testing.T) {
	type fields struct {
		schemasDir string
		mockFunc   func()
	}
	type args struct {
		rawSource string
	}

	mFileValidator := new(mockedFileValidator)
	mUrlValidator := new(mockedUrlValidator)

	tests := []struct {
		name    string
		fields  fields
		args    args
		want    string
		wantErr bool
	}{
		{name: "is empty string", fields: fields{
			schemasDir: "",
			mockFunc:   func() {},
		}, args: args{rawSource: ""}, want: "", wantErr: true},
		{name: "is not valid URL and is not valid path", fields: fields{
			schemasDir: "",
			mockFunc: func() {
				mUrlValidator.On("Validate", "/json_schema").Return(errors.New("a")).Once()
				mFileValidator.On("Validate", "/json_schema").Return(errors.New("b")).Once()
			},
		}, args: args{rawSource: "/json_schema"}, want: "", wantErr: true},
		{name: "is valid URL", fields: fields{
			schemasDir: "",
			mockFunc: func() {
				mUrlValidator.On("Validate", "www.json-schema.org/user.json").Return(nil).Once()
			},
		}, args: args{rawSource: "www.json-schema.org/user.json"}, want: "www.json-schema.org/user.json", wantErr: false},
		{name: "is valid absolute path on user OS", fields: fields{
			schemasDir: "",
			mockFunc: func() {
				mUrlValidator.On("Validate", "/jsons/user.json").Return(errors.New("a")).Once()
				mFileValidator.On("Validate", "/jsons/user.json").Return(nil).Once()
			},
		}, args: args{rawSource: "/jsons/user.json"}, want: "file:///jsons/user.json", wantErr: false},
		{name: "is valid path relative to schemas dir", fields: fields{
			schemasDir: "/jsons",
			mockFunc: func() {
				mUrlValidator.On("Validate", "user.json").Return(errors.New("a")).Once()
				mFileValidator.On("Validate", "/jsons/user.json").Return(nil).Once()
			},
		}, args: args{rawSource: "user.json"}, want: "file:///jsons/user.json", wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.fields.mockFunc()

			got, err := getSource(mUrlValidator, mFileValidator, tt.fields.schemasDir, tt.args.rawSource)
			if (err != nil) != tt.wantErr {
				t.Errorf("getSource() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("getSource() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJSONSchemaRawXGEngine_Validate(t *testing.T) {
	engine := NewJSONSchemaRawXGEngine()

	t.Run("matching data reports no issues", func(t *testing.T) {
		issues, err := engine.Validate(map[string]any{"id": float64(1), "name": "john"}, userSchema)
		if err != nil {
			t.Fatalf("Validate() unexpected error = %v", err)
		}

		if issues != nil {
			t.Errorf("Validate() issues = %v, want nil", issues)
		}
	})

	t.Run("missing required property is normalized", func(t *testing.T) {
		issues, err := engine.Validate(map[string]any{"id": float64(1)}, userSchema)
		if err != nil {
			t.Fatalf("Validate() unexpected error = %v", err)
		}

		if len(issues) != 1 {
			t.Fatalf("Validate() issues = %v, want exactly one", issues)
		}

		want := issue.Issue{Path: issue.Path{"name"}, Message: issue.MessageRequired}
		if !reflect.DeepEqual(issues[0], want) {
			t.Errorf("Validate() issue = %v, want %v", issues[0], want)
		}
	})

	t.Run("invalid value keeps engine message", func(t *testing.T) {
		issues, err := engine.Validate(map[string]any{"id": "x", "name": "john"}, userSchema)
		if err != nil {
			t.Fatalf("Validate() unexpected error = %v", err)
		}

		if len(issues) != 1 {
			t.Fatalf("Validate() issues = %v, want exactly one", issues)
		}

		if !reflect.DeepEqual(issues[0].Path, issue.Path{"id"}) {
			t.Errorf("Validate() path = %v, want [id]", issues[0].Path)
		}

		if issues[0].Message == "" || issues[0].Message == issue.MessageRequired {
			t.Errorf("Validate() message = %v, want engine explanation", issues[0].Message)
		}
	})

	t.Run("missing required property inside nested object", func(t *testing.T) {
		schema := `{
			"type": "object",
			"properties": {
				"user": {
					"type": "object",
					"properties": {"name": {"type": "string"}},
					"required": ["name"]
				}
			},
			"required": ["user"]
		}`

		issues, err := engine.Validate(map[string]any{"user": map[string]any{}}, schema)
		if err != nil {
			t.Fatalf("Validate() unexpected error = %v", err)
		}

		if len(issues) != 1 {
			t.Fatalf("Validate() issues = %v, want exactly one", issues)
		}

		want := issue.Issue{Path: issue.Path{"user", "name"}, Message: issue.MessageRequired}
		if !reflect.DeepEqual(issues[0], want) {
			t.Errorf("Validate() issue = %v, want %v", issues[0], want)
		}
	})

	t.Run("sequence element is addressed by index", func(t *testing.T) {
		schema := `{"type": "array", "items": {"type": "string"}}`

		issues, err := engine.Validate([]any{"a", float64(7)}, schema)
		if err != nil {
			t.Fatalf("Validate() unexpected error = %v", err)
		}

		if len(issues) != 1 {
			t.Fatalf("Validate() issues = %v, want exactly one", issues)
		}

		if !reflect.DeepEqual(issues[0].Path, issue.Path{1}) {
			t.Errorf("Validate() path = %v, want [1]", issues[0].Path)
		}
	})

	t.Run("malformed schema reports engine failure", func(t *testing.T) {
		_, err := engine.Validate(map[string]any{}, `{"type":`)
		if err == nil {
			t.Errorf("Validate() expected error on malformed schema")
		}
	})
}

func TestJSONSchemaRawQIEngine_Validate(t *testing.T) {
	engine := NewJSONSchemaRawQIEngine()

	t.Run("matching data reports no issues", func(t *testing.T) {
		issues, err := engine.Validate(map[string]any{"id": float64(1), "name": "john"}, userSchema)
		if err != nil {
			t.Fatalf("Validate() unexpected error = %v", err)
		}

		if issues != nil {
			t.Errorf("Validate() issues = %v, want nil", issues)
		}
	})

	t.Run("missing required property is normalized", func(t *testing.T) {
		issues, err := engine.Validate(map[string]any{"id": float64(1)}, userSchema)
		if err != nil {
			t.Fatalf("Validate() unexpected error = %v", err)
		}

		if len(issues) != 1 {
			t.Fatalf("Validate() issues = %v, want exactly one", issues)
		}

		if issues[0].Message != issue.MessageRequired {
			t.Errorf("Validate() message = %v, want %v", issues[0].Message, issue.MessageRequired)
		}

		if len(issues[0].Path) == 0 || issues[0].Path[len(issues[0].Path)-1] != any("name") {
			t.Errorf("Validate() path = %v, want path ending with name", issues[0].Path)
		}
	})

	t.Run("invalid value keeps engine message", func(t *testing.T) {
		issues, err := engine.Validate(map[string]any{"id": "x", "name": "john"}, userSchema)
		if err != nil {
			t.Fatalf("Validate() unexpected error = %v", err)
		}

		if len(issues) != 1 {
			t.Fatalf("Validate() issues = %v, want exactly one", issues)
		}

		if !reflect.DeepEqual(issues[0].Path, issue.Path{"id"}) {
			t.Errorf("Validate() path = %v, want [id]", issues[0].Path)
		}

		if issues[0].Message == "" || issues[0].Message == issue.MessageRequired {
			t.Errorf("Validate() message = %v, want engine explanation", issues[0].Message)
		}
	})

	t.Run("malformed schema reports engine failure", func(t *testing.T) {
		_, err := engine.Validate(map[string]any{}, `{"type":`)
		if err == nil {
			t.Errorf("Validate() expected error on malformed schema")
		}
	})
}

func TestPathFromField(t *testing.T) {
	type args struct {
		field string
	}
	tests := []struct {
		name string
		args args
		want issue.Path
	}{
		{name: "root", args: args{field: "(root)"}, want: issue.Path{}},
		{name: "empty", args: args{field: ""}, want: issue.Path{}},
		{name: "single property", args: args{field: "name"}, want: issue.Path{"name"}},
		{name: "nested property", args: args{field: "user.address.city"}, want: issue.Path{"user", "address", "city"}},
		{name: "sequence index", args: args{field: "roles.2"}, want: issue.Path{"roles", 2}},
		{name: "index only", args: args{field: "1"}, want: issue.Path{1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathFromField(tt.args.field); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pathFromField() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPathFromPointer(t *testing.T) {
	type args struct {
		pointer string
	}
	tests := []struct {
		name string
		args args
		want issue.Path
	}{
		{name: "root", args: args{pointer: "/"}, want: issue.Path{}},
		{name: "single property", args: args{pointer: "/name"}, want: issue.Path{"name"}},
		{name: "nested with index", args: args{pointer: "/user/roles/2"}, want: issue.Path{"user", "roles", 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pathFromPointer(tt.args.pointer); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("pathFromPointer() got = %v, want %v", got, tt.want)
			}
		})
	}
}
