package viewer

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/termview/resample"
)

// ErrInvalidConfig indicates a configuration file that cannot be read or
// does not match [FileSchema].
var ErrInvalidConfig = errors.New("invalid config file")

// File is the content of a YAML configuration file:
//
//	par: 0.45
//	kernel: lanczos
//	border: clamp
//
// All keys are optional.
type File struct {
	PAR    *float64 `json:"par,omitempty"`
	Kernel string   `json:"kernel,omitempty"`
	Border string   `json:"border,omitempty"`
}

// FileSchema returns the JSON Schema configuration files are validated
// against.
func FileSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "object",
		Title:       "termview configuration",
		Description: "Defaults for termview; command-line flags take precedence.",
		Properties: map[string]*jsonschema.Schema{
			"par": {
				Type:             "number",
				Description:      "Pixel aspect ratio (width:height) of a terminal cell.",
				ExclusiveMinimum: jsonschema.Ptr(0.0),
			},
			"kernel": {
				Type:        "string",
				Description: "Interpolation kernel.",
				Enum:        toAny(resample.AllKernelStrings()),
			},
			"border": {
				Type:        "string",
				Description: "Fill for cells outside the image.",
				Enum:        toAny(resample.AllBorderStrings()),
			},
		},
		AdditionalProperties: &jsonschema.Schema{Not: &jsonschema.Schema{}},
	}
}

// LoadFile reads and validates the YAML configuration file at path. An
// empty file yields an empty [File]. Errors wrap [ErrInvalidConfig].
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Config path from CLI flag is expected.
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return ParseFile(data)
}

// ParseFile parses and validates YAML configuration data.
// Errors wrap [ErrInvalidConfig].
func ParseFile(data []byte) (*File, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return &File{}, nil
	}

	js, err := yaml.YAMLToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var instance any

	err = json.Unmarshal(js, &instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if instance == nil {
		return &File{}, nil
	}

	resolved, err := FileSchema().Resolve(nil)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving schema: %w", ErrInvalidConfig, err)
	}

	err = resolved.Validate(instance)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var f File

	err = json.Unmarshal(js, &f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &f, nil
}

func toAny(ss []string) []any {
	out := make([]any, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}

	return out
}
