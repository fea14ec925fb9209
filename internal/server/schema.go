// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// convertRequestSchema describes the body of POST /api/convert. Unknown
// conversion types pass the schema so the dispatcher can reject them.
const convertRequestSchema = `{
	"type": "object",
	"required": ["type", "content"],
	"properties": {
		"type": {"type": "string", "minLength": 1},
		"content": {"type": "string"},
		"filename": {"type": "string"}
	}
}`

// requestValidator checks request bodies against a compiled JSON schema.
type requestValidator struct {
	schema *gojsonschema.Schema
}

func newRequestValidator(schemaJSON string) (*requestValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("compiling request schema: %w", err)
	}
	return &requestValidator{schema: schema}, nil
}

// validate returns the schema violations in body, or an error when body is
// not JSON at all.
func (v *requestValidator) validate(body []byte) ([]string, error) {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}
