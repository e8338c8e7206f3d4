package frontmatter

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"

	"go.yaml.in/yaml/v3"
)

// rawTemplate is the scaffold front-matter block. With DefaultValues the
// angle-bracket placeholders render verbatim, ready for hand-editing.
const rawTemplate = `---
authors: [{{.Author}}]
layout: post
title: {{.Title}}
categories: [{{.Categories}}]
tags: [{{.Tags}}]
---
`

var tmpl = template.Must(template.New("frontmatter").Parse(rawTemplate))

// Values holds the front-matter fields available to the template.
type Values struct {
	Author     string
	Title      string
	Categories string
	Tags       string
}

// DefaultValues returns the placeholder tokens emitted when the caller
// supplies no real values.
func DefaultValues() Values {
	return Values{
		Author:     "<author>",
		Title:      "<title>",
		Categories: "<categories>",
		Tags:       "<tag>",
	}
}

// Render executes the front-matter template with the given values.
func Render(v Values) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, v); err != nil {
		return "", fmt.Errorf("rendering front matter: %w", err)
	}
	return buf.String(), nil
}

// delimiter opens and closes the front-matter block.
const delimiter = "---"

// Extract returns the raw YAML between the leading pair of --- delimiters.
func Extract(doc []byte) ([]byte, error) {
	s := string(doc)
	if !strings.HasPrefix(s, delimiter+"\n") {
		return nil, fmt.Errorf("document does not start with a front-matter block")
	}
	rest := s[len(delimiter)+1:]
	end := strings.Index(rest, "\n"+delimiter)
	if end == -1 {
		return nil, fmt.Errorf("front-matter block is not closed")
	}
	return []byte(rest[:end+1]), nil
}

// FrontMatter is the decoded form of a scaffolded front-matter block.
type FrontMatter struct {
	Authors    []string `yaml:"authors"`
	Layout     string   `yaml:"layout"`
	Title      string   `yaml:"title"`
	Categories []string `yaml:"categories"`
	Tags       []string `yaml:"tags"`
}

// Parse decodes the front-matter block at the top of a document.
func Parse(doc []byte) (*FrontMatter, error) {
	block, err := Extract(doc)
	if err != nil {
		return nil, err
	}

	var fm FrontMatter
	if err := yaml.Unmarshal(block, &fm); err != nil {
		return nil, fmt.Errorf("parsing front matter: %w", err)
	}
	return &fm, nil
}

// ParseFile reads a file and decodes its front-matter block.
func ParseFile(path string) (*FrontMatter, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data)
}
