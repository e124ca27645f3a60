// Package schema validates structured-output payloads against the embedded
// schema set. Only single-mode runs may request structured output.
package schema

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Supported structured-output schema ids.
const (
	ArticleSummaryV1        = "article_summary_v1"
	OrchestrationDecisionV1 = "orchestration_decision_v1"
	AgentReviewVerdictV1    = "agent_review_verdict_v1"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	compileOnce sync.Once
	compiled    map[string]*jsonschema.Schema
	compileErr  error
)

// IDs returns the supported schema ids.
func IDs() []string {
	return []string{ArticleSummaryV1, OrchestrationDecisionV1, AgentReviewVerdictV1}
}

// Valid reports whether id names a supported schema.
func Valid(id string) bool {
	for _, known := range IDs() {
		if known == id {
			return true
		}
	}
	return false
}

func compile() (map[string]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[string]*jsonschema.Schema, len(IDs()))
		compiler := jsonschema.NewCompiler()
		for _, id := range IDs() {
			raw, err := schemaFS.ReadFile("schemas/" + id + ".json")
			if err != nil {
				compileErr = fmt.Errorf("read schema %s: %w", id, err)
				return
			}
			doc, err := jsonschema.UnmarshalJSON(strings.NewReader(string(raw)))
			if err != nil {
				compileErr = fmt.Errorf("parse schema %s: %w", id, err)
				return
			}
			resource := id + ".json"
			if err := compiler.AddResource(resource, doc); err != nil {
				compileErr = fmt.Errorf("register schema %s: %w", id, err)
				return
			}
			sch, err := compiler.Compile(resource)
			if err != nil {
				compileErr = fmt.Errorf("compile schema %s: %w", id, err)
				return
			}
			compiled[id] = sch
		}
	})
	return compiled, compileErr
}

// Validate checks a decoded JSON value against the named schema.
func Validate(id string, payload any) error {
	schemas, err := compile()
	if err != nil {
		return err
	}
	sch, ok := schemas[id]
	if !ok {
		return fmt.Errorf("unknown structured-output schema %q", id)
	}
	if err := sch.Validate(payload); err != nil {
		return fmt.Errorf("structured output does not match %s: %w", id, err)
	}
	return nil
}

// ExtractStructured pulls the JSON object out of a model's final text and
// validates it. Models often wrap the object in prose or a code fence; the
// outermost braces delimit the candidate payload.
func ExtractStructured(id, text string) (map[string]any, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found in output for schema %s", id)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(text[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("structured output is not valid JSON: %w", err)
	}
	if err := Validate(id, payload); err != nil {
		return nil, err
	}
	return payload, nil
}
