package manifest

import (
	"path/filepath"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	for _, dir := range []string{"valid", "scoped"} {
		t.Run(dir, func(t *testing.T) {
			result, err := ValidateFile(filepath.Join(testdataDir, dir, FileName))
			if err != nil {
				t.Fatalf("ValidateFile(%s) error: %v", dir, err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got invalid with %d issues:", len(result.Issues))
				for _, issue := range result.Issues {
					t.Errorf("  path=%s keyword=%s message=%s", issue.Path, issue.Keyword, issue.Message)
				}
			}
		})
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := Validate([]byte(`{"name": "ok", "devDependencies": {"x": false}}`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}
	var issue *ValidationIssue
	for i := range result.Issues {
		if result.Issues[i].Path == "/devDependencies/x" {
			issue = &result.Issues[i]
		}
	}
	if issue == nil {
		t.Fatalf("expected an issue at /devDependencies/x, got %+v", result.Issues)
	}
	if issue.Keyword != "type" {
		t.Errorf("Keyword = %q, want %q", issue.Keyword, "type")
	}
	if issue.Message == "" {
		t.Error("expected a non-empty message")
	}
}

func TestValidate_NamePattern(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"simple", true},
		{"@scope/pkg", true},
		{"has space", false},
		{"nested/path", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(`{"name": "` + tt.name + `"}`))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues: %+v)", result.Valid, tt.valid, result.Issues)
			}
		})
	}
}

func TestValidate_MalformedJSON(t *testing.T) {
	if _, err := Validate([]byte(`{"name":`)); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}
