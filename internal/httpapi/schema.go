package httpapi

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed task_write.schema.json
var taskWriteSchemaJSON string

var taskWriteSchema = jsonschema.MustCompileString("task_write.schema.json", taskWriteSchemaJSON)

// decodeTaskWrite checks body against the TaskWrite schema before decoding
// it into v.
func decodeTaskWrite(body []byte, v any) error {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := taskWriteSchema.Validate(doc); err != nil {
		return schemaError(err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func schemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("invalid request body: %w", err)
	}

	var msgs []string
	collectLeaves(ve, &msgs)
	sort.Strings(msgs)
	return errors.New("invalid request body: " + strings.Join(msgs, "; "))
}

func collectLeaves(ve *jsonschema.ValidationError, out *[]string) {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*out = append(*out, loc+": "+ve.Message)
		return
	}
	for _, c := range ve.Causes {
		collectLeaves(c, out)
	}
}
