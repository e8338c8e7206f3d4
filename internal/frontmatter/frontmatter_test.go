package frontmatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wantDefault = `---
authors: [<author>]
layout: post
title: <title>
categories: [<categories>]
tags: [<tag>]
---
`

func TestRenderDefaults(t *testing.T) {
	got, err := Render(DefaultValues())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if got != wantDefault {
		t.Errorf("Render() mismatch:\n--- got ---\n%s--- want ---\n%s", got, wantDefault)
	}
}

func TestRenderValues(t *testing.T) {
	got, err := Render(Values{
		Author:     "jane",
		Title:      "Hello World",
		Categories: "go",
		Tags:       "tooling",
	})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, want := range []string{
		"authors: [jane]",
		"layout: post",
		"title: Hello World",
		"categories: [go]",
		"tags: [tooling]",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered output does not contain %q:\n%s", want, got)
		}
	}
}

func TestExtract(t *testing.T) {
	doc := []byte("---\ntitle: hi\n---\n\nBody text.\n")
	block, err := Extract(doc)
	if err != nil {
		t.Fatalf("Extract() error: %v", err)
	}
	if got := string(block); got != "title: hi\n" {
		t.Errorf("Extract() = %q, want %q", got, "title: hi\n")
	}
}

func TestExtractErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"no front matter", "just a body\n"},
		{"unclosed block", "---\ntitle: hi\n"},
		{"empty document", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Extract([]byte(tt.doc)); err == nil {
				t.Errorf("Extract(%q) expected error, got nil", tt.doc)
			}
		})
	}
}

func TestParseRenderedDefaults(t *testing.T) {
	doc, err := Render(DefaultValues())
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	fm, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if len(fm.Authors) != 1 || fm.Authors[0] != "<author>" {
		t.Errorf("Authors = %v, want [<author>]", fm.Authors)
	}
	if fm.Layout != "post" {
		t.Errorf("Layout = %q, want %q", fm.Layout, "post")
	}
	if fm.Title != "<title>" {
		t.Errorf("Title = %q, want %q", fm.Title, "<title>")
	}
	if len(fm.Tags) != 1 || fm.Tags[0] != "<tag>" {
		t.Errorf("Tags = %v, want [<tag>]", fm.Tags)
	}
}

func TestParseWithBody(t *testing.T) {
	doc := wantDefault + "\nSome body paragraph.\n"
	fm, err := Parse([]byte(doc))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if fm.Layout != "post" {
		t.Errorf("Layout = %q, want %q", fm.Layout, "post")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2024-03-15-hello.md")
	if err := os.WriteFile(path, []byte(wantDefault), 0644); err != nil {
		t.Fatalf("writing test file: %v", err)
	}

	fm, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile() error: %v", err)
	}
	if fm.Title != "<title>" {
		t.Errorf("Title = %q, want %q", fm.Title, "<title>")
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.md")); err == nil {
		t.Error("expected error for missing file")
	}
}
