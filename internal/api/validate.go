package api

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"grantflow/internal/util"
)

const textUploadSchema = `{
  "type": "object",
  "properties": {
    "text": {"type": ["string", "null"]}
  }
}`

var textUpload = gojsonschema.NewStringLoader(textUploadSchema)

type textUploadBody struct {
	Text *string `json:"text"`
}

// decodeTextUpload checks a JSON upload body against textUploadSchema and returns its text.
// A missing or null "text" yields "", which the intake rejects as empty.
func decodeTextUpload(body []byte) (string, error) {
	result, err := gojsonschema.Validate(textUpload, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, util.ErrInvalidJSON)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return "", fmt.Errorf("%s: %w", strings.Join(msgs, "; "), util.ErrInvalidJSON)
	}
	var in textUploadBody
	if err := json.Unmarshal(body, &in); err != nil {
		return "", fmt.Errorf("%v: %w", err, util.ErrInvalidJSON)
	}
	if in.Text == nil {
		return "", nil
	}
	return *in.Text, nil
}
