package datapkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrNoPackage is returned when the package glob matches nothing.
var ErrNoPackage = errors.New("no data package found")

// Package is a loaded data-package descriptor, positioned at one schema node.
// Resolve moves the position; FieldTable documents the properties at the
// current position.
type Package struct {
	// Path is the file the descriptor was loaded from.
	Path string

	doc  []byte          // full document, kept for validation
	node json.RawMessage // current schema node
}

// Load reads the first data-package descriptor matching pattern. The pattern
// may contain a leading "**/" to search recursively, matching the doc-site
// convention of keeping the descriptor next to the schemas it references.
func Load(pattern string) (*Package, error) {
	match, err := findFirst(pattern)
	if err != nil {
		return nil, err
	}

	doc, err := os.ReadFile(match)
	if err != nil {
		return nil, fmt.Errorf("read data package %s: %w", match, err)
	}

	if !json.Valid(doc) {
		return nil, fmt.Errorf("data package %s is not valid JSON", match)
	}

	return &Package{Path: match, doc: doc, node: doc}, nil
}

// Resolve drills into the named sub-schema, looking first under properties,
// then under $defs. An array schema is replaced by its items so the table
// documents the element type. An unknown name leaves the position unchanged,
// mirroring how the site documents the top-level package by default.
func (p *Package) Resolve(sub string) error {
	if sub == "" {
		return nil
	}

	var node struct {
		Properties map[string]json.RawMessage `json:"properties"`
		Defs       map[string]json.RawMessage `json:"$defs"`
	}
	if err := json.Unmarshal(p.node, &node); err != nil {
		return fmt.Errorf("parse data package %s: %w", p.Path, err)
	}

	target, ok := node.Properties[sub]
	if !ok {
		target, ok = node.Defs[sub]
	}
	if !ok {
		return nil
	}

	var schema struct {
		Type  string          `json:"type"`
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(target, &schema); err != nil {
		return fmt.Errorf("parse sub-schema %s: %w", sub, err)
	}
	if schema.Type == "array" && len(schema.Items) > 0 {
		target = schema.Items
	}

	p.node = target
	return nil
}

// findFirst expands a glob that may start with "**/" into the first matching
// file, walking lexically so the result is deterministic.
func findFirst(pattern string) (string, error) {
	pattern = filepath.ToSlash(pattern)

	rest, recursive := strings.CutPrefix(pattern, "**/")
	if !recursive {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return "", fmt.Errorf("bad package glob %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return "", fmt.Errorf("%w: glob %q", ErrNoPackage, pattern)
		}
		return matches[0], nil
	}

	var found string
	err := filepath.WalkDir(".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel := filepath.ToSlash(p)
		if matchTail(rest, rel) {
			found = p
			return fs.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("search for %q: %w", pattern, err)
	}
	if found == "" {
		return "", fmt.Errorf("%w: glob %q", ErrNoPackage, pattern)
	}
	return found, nil
}

// matchTail reports whether the trailing segments of rel match pattern.
func matchTail(pattern, rel string) bool {
	pparts := strings.Split(pattern, "/")
	rparts := strings.Split(rel, "/")
	if len(rparts) < len(pparts) {
		return false
	}
	rparts = rparts[len(rparts)-len(pparts):]
	ok, err := path.Match(pattern, strings.Join(rparts, "/"))
	return err == nil && ok
}
