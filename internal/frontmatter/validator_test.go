package frontmatter

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidateDefaults(t *testing.T) {
	doc, err := Render(DefaultValues())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	result, err := Validate([]byte(doc))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("default scaffold should be valid, issues: %v", result.Issues)
	}
}

func TestValidateMissingRequired(t *testing.T) {
	doc := []byte("---\nauthors: [jane]\n---\n")

	result, err := Validate(doc)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("block without layout/title should be invalid")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestValidateWrongType(t *testing.T) {
	doc := []byte("---\nlayout: post\ntitle: hi\ntags: not-a-list\n---\n")

	result, err := Validate(doc)
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("scalar tags should be invalid")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/tags" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an issue at /tags, got: %v", result.Issues)
	}
}

func TestValidateNotFrontMatter(t *testing.T) {
	if _, err := Validate([]byte("plain text, no block\n")); err == nil {
		t.Error("expected error for document without front matter")
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "post.md")

	doc, err := Render(DefaultValues())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	result, err := ValidateFile(path)
	if err != nil {
		t.Fatalf("ValidateFile() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid, issues: %v", result.Issues)
	}

	if _, err := ValidateFile(filepath.Join(dir, "missing.md")); err == nil {
		t.Error("expected error for missing file")
	}
}
