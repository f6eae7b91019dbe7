package ai

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/invopop/jsonschema"
	"github.com/kaptinlin/jsonrepair"
)

// Some models emit a doubled opening brace at the start of structured output.
func stripDuplicateLeadingBrace(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "{") {
		rest := strings.TrimSpace(s[1:])
		if strings.HasPrefix(rest, "{") {
			return rest
		}
	}
	return s
}

// GenerateSchema reflects a JSON Schema from a Go struct for use as a
// structured-output format. Pointer types are dereferenced so callers can
// pass the same value they later unmarshal into.
func GenerateSchema(value any) any {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	t := reflect.TypeOf(value)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return r.Reflect(reflect.New(t).Interface())
}

// UnmarshalFlexible parses model output that is supposed to be JSON but
// often is not quite. It tries a strict parse first, then unwraps
// stringified JSON, and finally runs jsonrepair over the input before
// giving up.
//
// All of these inputs decode into the same annotation:
//
//	{"summary": "Strike at plant"}
//	"{\"summary\": \"Strike at plant\"}"
//	{summary: "Strike at plant"}
func UnmarshalFlexible(input string, out any) error {
	input = strings.TrimSpace(input)

	if err := json.Unmarshal([]byte(input), out); err == nil {
		return nil
	}

	var unwrapped string
	if err := json.Unmarshal([]byte(input), &unwrapped); err == nil {
		unwrapped = strings.TrimSpace(unwrapped)
		if err := json.Unmarshal([]byte(unwrapped), out); err == nil {
			return nil
		}
		input = unwrapped
	}

	input = stripDuplicateLeadingBrace(input)
	repaired, err := jsonrepair.JSONRepair(input)
	if err != nil {
		return fmt.Errorf("repairing model output failed: %w (input: %s)", err, input)
	}

	if err := json.Unmarshal([]byte(repaired), out); err == nil {
		return nil
	}

	return fmt.Errorf(
		"model output unparseable after repair: input=%s repaired=%s",
		input, repaired,
	)
}
