package prerequisites

import (
	"strings"
	"testing"
)

func TestCheck_ToolFound(t *testing.T) {
	t.Parallel()
	// `go` is guaranteed to exist wherever the tests run.
	results := Check([]Tool{{Name: "go", Required: true}})

	if len(results.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results.Results))
	}
	if !results.Results[0].Found {
		t.Error("expected go binary to be found")
	}
	if results.Results[0].Path == "" {
		t.Error("expected a resolved path")
	}
	if results.HasErrors() {
		t.Error("no errors expected when the tool is present")
	}
}

func TestCheck_RequiredToolMissing(t *testing.T) {
	t.Parallel()
	results := Check([]Tool{{
		Name:       "definitely-not-a-real-binary-xyz",
		Required:   true,
		InstallURL: "https://example.com/install",
	}})

	if !results.HasErrors() {
		t.Fatal("expected errors for missing required tool")
	}

	err := results.Error()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "https://example.com/install") {
		t.Errorf("error should carry the install URL, got: %v", err)
	}
}

func TestCheck_OptionalToolMissing(t *testing.T) {
	t.Parallel()
	results := Check([]Tool{{Name: "definitely-not-a-real-binary-xyz", Required: false}})

	if results.HasErrors() {
		t.Error("optional tools must not produce errors")
	}
	if results.Error() != nil {
		t.Error("optional tools must not produce an error value")
	}
	if len(results.Missing) != 1 {
		t.Errorf("missing list should still record the tool, got %d entries", len(results.Missing))
	}
}

func TestDefaultTools(t *testing.T) {
	t.Parallel()
	tools := DefaultTools()
	if len(tools) == 0 {
		t.Fatal("expected at least one default tool")
	}
	if tools[0].Name != "docker" {
		t.Errorf("docker must be the first default tool, got %s", tools[0].Name)
	}
	if !tools[0].Required {
		t.Error("docker must be required")
	}
}
