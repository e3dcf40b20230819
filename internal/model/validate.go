package model

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// ValidateContent validates a resume content blob against the embedded
// schema before it is persisted.
func ValidateContent(m map[string]interface{}) error {
	schemaLoader := gojsonschema.NewStringLoader(contentSchema)
	docLoader := gojsonschema.NewGoLoader(m)

	res, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	// collect errors
	msgs := ""
	for _, e := range res.Errors() {
		msgs += fmt.Sprintf("%s; ", e.String())
	}
	return fmt.Errorf("schema validation failed: %s", msgs)
}
