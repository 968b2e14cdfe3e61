package model

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/resume.schema.json
var resumeSchema []byte

// ErrSchema is returned (wrapped) when a data file does not match the schema.
var ErrSchema = errors.New("schema validation failed")

// ValidateMap validates a generic decoded document against the embedded
// resume data schema.
func ValidateMap(m map[string]interface{}) error {
	schemaLoader := gojsonschema.NewBytesLoader(resumeSchema)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
}
