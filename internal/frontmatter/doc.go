// Package frontmatter renders, parses, and validates the YAML metadata
// block at the top of a post file. Rendering produces the fixed scaffold
// template (placeholder tokens unless real values are supplied);
// validation checks the block against an embedded JSON Schema.
package frontmatter
