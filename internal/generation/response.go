package generation

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/gemini-studio/internal/domain"
	"github.com/tidwall/gjson"
	"google.golang.org/genai"
)

var validate = validator.New()

// ParseDashboard converts the raw text of a structured generation call into
// a DashboardSpec.
//
// The text must be valid JSON, every key listed as required by schema must be
// present and non-null, and enum fields must hold an allowed value. Any
// violation returns ErrMalformedResponse and no partial value. Nothing is
// repaired or coerced. A nil schema skips the presence check.
func ParseDashboard(text string, schema *genai.Schema) (*domain.DashboardSpec, error) {
	if !gjson.Valid(text) {
		return nil, fmt.Errorf("%w: response is not valid JSON", ErrMalformedResponse)
	}

	if schema != nil {
		if err := checkRequired(gjson.Parse(text), schema, ""); err != nil {
			return nil, err
		}
	}

	var spec domain.DashboardSpec
	if err := json.Unmarshal([]byte(text), &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if err := validate.Struct(spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	return &spec, nil
}

// checkRequired walks value alongside schema and reports the first required
// key that is absent or null.
func checkRequired(value gjson.Result, schema *genai.Schema, path string) error {
	switch schema.Type {
	case genai.TypeObject:
		if !value.IsObject() {
			return fmt.Errorf("%w: %s is not an object", ErrMalformedResponse, displayPath(path))
		}
		for _, name := range schema.Required {
			field := value.Get(name)
			if !field.Exists() || field.Type == gjson.Null {
				return fmt.Errorf("%w: missing required field %s", ErrMalformedResponse, joinPath(path, name))
			}
		}
		for name, sub := range schema.Properties {
			field := value.Get(name)
			if !field.Exists() || field.Type == gjson.Null || sub == nil {
				continue
			}
			if err := checkRequired(field, sub, joinPath(path, name)); err != nil {
				return err
			}
		}
	case genai.TypeArray:
		if !value.IsArray() {
			return fmt.Errorf("%w: %s is not an array", ErrMalformedResponse, displayPath(path))
		}
		if schema.Items == nil {
			return nil
		}
		for i, item := range value.Array() {
			if err := checkRequired(item, schema.Items, joinPath(path, strconv.Itoa(i))); err != nil {
				return err
			}
		}
	}
	return nil
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "." + child
}

func displayPath(path string) string {
	if path == "" {
		return "response"
	}
	return path
}
