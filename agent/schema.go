package agent

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/rpupo63/devdash-console/errs"
)

// analysisSchema is the contract for the analyze-project response. The
// model behind the endpoint occasionally drifts; rejecting malformed
// payloads here beats rendering half an analysis.
const analysisSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["success", "required_skills", "project_categories", "analysis", "model"],
  "properties": {
    "success": {"type": "boolean"},
    "required_skills": {"type": "array", "items": {"type": "string"}},
    "project_categories": {"type": "array", "items": {"type": "string"}},
    "total_developers_analyzed": {"type": "integer", "minimum": 0},
    "analysis": {"type": "string"},
    "model": {"type": "string"}
  }
}`

func validateAnalysis(body []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(analysisSchema)
	docLoader := gojsonschema.NewBytesLoader(body)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return errs.NewInternalErrorWithCause("analysis schema validation failed to run", err)
	}
	if result.Valid() {
		return nil
	}

	problems := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return errs.NewInternalError("analysis response does not match schema: " + strings.Join(problems, "; "))
}
