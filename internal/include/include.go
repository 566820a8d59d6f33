package include

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"docmill/internal/config"
	"docmill/internal/gitinfo"
	"docmill/internal/markdown"
)

// Includer splices files (or slices of them) into documentation pages,
// applying the site's link rewrites and branch substitution on the way in.
type Includer struct {
	root        string
	links       map[string]string
	placeholder string
	branch      func() (string, error)
}

// Options control how a file is included.
type Options struct {
	// DownshiftHeadings pushes every heading one level deeper so the
	// included content nests under the host page's own heading.
	DownshiftHeadings bool
	// StartLine/EndLine slice the file by line before any other transform.
	// EndLine < 0 means end of file.
	StartLine int
	EndLine   int
	// CodeType wraps the snippet in a fenced code block when non-empty.
	CodeType string
}

// DefaultOptions matches the common case: whole file, headings downshifted.
func DefaultOptions() Options {
	return Options{DownshiftHeadings: true, EndLine: -1}
}

func NewIncluder(cfg *config.Config, root string) *Includer {
	return &Includer{
		root:        root,
		links:       cfg.Links,
		placeholder: cfg.GitHub.BranchPlaceholder,
		branch:      gitinfo.Branch,
	}
}

// File reads name relative to the includer root and returns its content with
// the include transforms applied.
func (inc *Includer) File(name string, opts Options) (string, error) {
	raw, err := os.ReadFile(filepath.Join(inc.root, name))
	if err != nil {
		return "", fmt.Errorf("include %s: %w", name, err)
	}

	text := sliceLines(string(raw), opts.StartLine, opts.EndLine)
	if opts.DownshiftHeadings {
		text = markdown.DownshiftHeadings(text)
	}
	text = markdown.RewriteLinkDefs(text, inc.links)

	if inc.placeholder != "" && strings.Contains(text, inc.placeholder) {
		branch, err := inc.branch()
		if err != nil {
			return "", fmt.Errorf("include %s: %w", name, err)
		}
		text = strings.ReplaceAll(text, inc.placeholder, branch)
	}

	if opts.CodeType != "" {
		return fmt.Sprintf("```%s title='%s'\n%s\n```", opts.CodeType, name, text), nil
	}
	return text, nil
}

// Sections includes a file and keeps only the sections passing the
// include/exclude title filters.
func (inc *Includer) Sections(name string, includeTitles, excludeTitles []string, opts Options) (string, error) {
	text, err := inc.File(name, opts)
	if err != nil {
		return "", err
	}
	return markdown.ExtractSections(text, includeTitles, excludeTitles)
}

func sliceLines(text string, start, end int) string {
	lines := strings.Split(text, "\n")
	if start < 0 {
		start = 0
	}
	if start > len(lines) {
		start = len(lines)
	}
	if end < 0 || end > len(lines) {
		end = len(lines)
	}
	if end < start {
		end = start
	}
	return strings.Join(lines[start:end], "\n")
}

// ListFiles expands each input into concrete file paths. Files are taken
// as-is; directories contribute their direct children matching pattern.
// Unknown paths are logged and skipped rather than failing the build.
func ListFiles(inputs []string, pattern string) []string {
	var paths []string
	for _, item := range inputs {
		info, err := os.Stat(item)
		switch {
		case err != nil:
			slog.Warn("skipping unknown path", "path", item)
		case !info.IsDir():
			paths = append(paths, item)
		default:
			entries, err := os.ReadDir(item)
			if err != nil {
				slog.Warn("skipping unreadable directory", "path", item, "error", err)
				continue
			}
			for _, entry := range entries {
				if entry.IsDir() || isIgnored(entry.Name()) {
					continue
				}
				matched, _ := filepath.Match(pattern, entry.Name())
				if matched {
					paths = append(paths, filepath.Join(item, entry.Name()))
				}
			}
		}
	}
	return paths
}

var ignoredDirs = []string{".git", "vendor", "node_modules"}

func isIgnored(name string) bool {
	for _, ign := range ignoredDirs {
		if name == ign {
			return true
		}
	}
	return false
}

// PageURL converts a source path under docs/ to the URL the site serves it
// at: docs/a/b.md -> /a/b/. Non-markdown assets keep their extension.
func PageURL(path string) string {
	rel := strings.TrimPrefix(filepath.ToSlash(path), "docs/")
	if strings.HasSuffix(rel, ".md") {
		return "/" + strings.TrimSuffix(rel, ".md") + "/"
	}
	return "/" + rel
}
