package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/postkit-labs/postkit/internal/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind selects which base directory a scaffolded file lands in.
type Kind int

const (
	Post Kind = iota
	Draft
)

// BaseDir returns the conventional directory name for the kind.
func (k Kind) BaseDir() string {
	if k == Draft {
		return "_drafts"
	}
	return "_posts"
}

func (k Kind) String() string {
	if k == Draft {
		return "draft"
	}
	return "post"
}

// defaultExt is appended when the caller supplies no extension.
const defaultExt = ".md"

var lower = cases.Lower(language.Und)

// FileName builds the dated file name: the ISO date, then each word
// lower-cased, all joined with dashes, then the extension. Words that are
// empty or contain path separators are rejected rather than propagated
// into a filesystem path.
func FileName(words []string, ext string, date time.Time) (string, error) {
	if len(words) == 0 {
		return "", fmt.Errorf("at least one filename word is required")
	}

	parts := make([]string, 0, len(words)+1)
	parts = append(parts, date.Format("2006-01-02"))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			return "", fmt.Errorf("filename words must not be empty")
		}
		if strings.ContainsAny(w, "/\\\x00") {
			return "", fmt.Errorf("filename word %q contains a path separator", w)
		}
		parts = append(parts, lower.String(w))
	}

	if ext == "" {
		ext = defaultExt
	}
	return strings.Join(parts, "-") + ext, nil
}

// DestDir resolves the destination directory for a kind under the site
// root, with an optional relative subpath appended. No filesystem access
// occurs here. Subpaths that would escape the base directory (absolute,
// or climbing through ..) are rejected.
func DestDir(siteRoot string, kind Kind, subpath string) (string, error) {
	dir := filepath.Join(siteRoot, kind.BaseDir())
	if subpath == "" {
		return dir, nil
	}
	if !filepath.IsLocal(subpath) {
		return "", fmt.Errorf("destination subpath %q escapes the %s directory", subpath, kind.BaseDir())
	}
	return filepath.Join(dir, subpath), nil
}

// Create writes content to path, creating missing parent directories and
// truncating any existing file. Filesystem errors propagate to the caller
// unretried.
func Create(path, content string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// Params carries everything Generate needs to scaffold one file.
type Params struct {
	Words    []string           // filename words, at least one
	Ext      string             // file extension, defaults to .md
	Kind     Kind               // post or draft
	Subpath  string             // optional subpath under the base directory
	SiteRoot string             // site repository root
	Values   frontmatter.Values // front-matter field values
	Date     time.Time          // date stamped into the file name
}

// Result holds the outcome of a scaffold generation.
type Result struct {
	Path     string
	Warnings []string
}

// Generate scaffolds one post or draft file and returns its path.
// Running it twice with the same params overwrites the file with
// identical content. The written front matter is checked against the
// schema afterwards; problems surface as warnings, never as errors.
func Generate(p Params) (*Result, error) {
	name, err := FileName(p.Words, p.Ext, p.Date)
	if err != nil {
		return nil, err
	}

	dir, err := DestDir(p.SiteRoot, p.Kind, p.Subpath)
	if err != nil {
		return nil, err
	}

	content, err := frontmatter.Render(p.Values)
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, name)
	if err := Create(path, content); err != nil {
		return nil, err
	}

	result := &Result{Path: path}

	valResult, valErr := frontmatter.ValidateFile(path)
	if valErr != nil {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Could not validate front matter: %v", valErr))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}
