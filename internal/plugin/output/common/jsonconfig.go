package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/tailscale/hujson"

	"github.com/jmylchreest/scalar-themes/internal/plugin/output"
)

// pointerEscaper escapes an object key for use in a JSON pointer (RFC 6901).
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

type patchOp struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value any    `json:"value"`
}

// UpdateJSONConfig sets key on the top-level object of a JSON (or JSONC)
// config file. Existing members keep their order and a new key is appended.
// Standard JSON is written back with 2-space indentation. Files with
// comments or trailing commas keep their comments and are reformatted by
// hujson. The original file is kept alongside as <path>.backup.
func UpdateJSONConfig(path, key string, value any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	root, err := hujson.Parse(raw)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if _, ok := root.Value.(*hujson.Object); !ok {
		return fmt.Errorf("failed to parse %s: top-level value is not an object", path)
	}
	standard := root.IsStandard()

	patch, err := json.Marshal([]patchOp{{Op: "add", Path: "/" + pointerEscaper.Replace(key), Value: value}})
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := root.Patch(patch); err != nil {
		return fmt.Errorf("failed to set %s in %s: %w", key, path, err)
	}

	var content []byte
	if standard {
		var buf bytes.Buffer
		if err := json.Indent(&buf, bytes.TrimSpace(root.Pack()), "", "  "); err != nil {
			return fmt.Errorf("failed to format %s: %w", path, err)
		}
		buf.WriteByte('\n')
		content = buf.Bytes()
	} else {
		root.Format()
		content = root.Pack()
	}

	if _, err := output.BackupFile(path); err != nil {
		return err
	}
	return output.WriteFile(path, content)
}

// EncodeJSON encodes v with 2-space indentation and a trailing newline,
// leaving HTML characters unescaped.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode JSON: %w", err)
	}
	return buf.Bytes(), nil
}
