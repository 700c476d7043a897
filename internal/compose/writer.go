package compose

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// header is prepended to every generated manifest. Hand-edits do not
// survive a re-run.
const header = "# Generated by openclaw-install. Re-running the installer overwrites this file.\n"

// Marshal renders the manifest as plain UTF-8 YAML with no byte-order
// mark. Compose chokes on a leading BOM, so none is ever written.
func Marshal(m *Manifest) ([]byte, error) {
	body, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(header)
	sb.Write(body)
	return []byte(sb.String()), nil
}

// Write serializes the manifest to path, unconditionally replacing any
// existing file.
func Write(m *Manifest, path string) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", path, err)
	}
	return nil
}
