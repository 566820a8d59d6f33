package markdown

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	// Heading separator is intra-line whitespace only; \s would cross the
	// newline on a heading with an empty title and swallow the next line.
	headingRegex = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.*)$`)
	linkDefRegex = regexp.MustCompile(`(?m)^(\[[^\]]+\]):\s*(.+)$`)
)

// Section is one heading-delimited slice of a markdown document.
type Section struct {
	Level int    // number of '#' characters, 1..6
	Title string // trimmed heading text, original case
	Body  string // trimmed text up to the next heading or EOF
}

// LinkDef is a markdown link-reference definition line, `[label]: target`.
type LinkDef struct {
	Label  string // includes the surrounding brackets
	Target string
}

// FilterConflictError reports titles requested as both included and excluded.
type FilterConflictError struct {
	Titles []string
}

func (e *FilterConflictError) Error() string {
	return fmt.Sprintf("cannot both include and exclude sections: %s", strings.Join(e.Titles, ", "))
}

// SplitSections scans text for ATX headings and cuts it into sections.
// Text before the first heading is discarded. A document without headings
// yields no sections.
func SplitSections(text string) []Section {
	matches := headingRegex.FindAllStringSubmatchIndex(text, -1)
	sections := make([]Section, 0, len(matches))

	for i, m := range matches {
		bodyStart := m[1]
		bodyEnd := len(text)
		if i+1 < len(matches) {
			bodyEnd = matches[i+1][0]
		}

		sections = append(sections, Section{
			Level: m[3] - m[2],
			Title: strings.TrimSpace(text[m[4]:m[5]]),
			Body:  strings.TrimSpace(text[bodyStart:bodyEnd]),
		})
	}

	return sections
}

// LinkDefs collects every link-reference definition in text, in scan order,
// regardless of which section the line falls in.
func LinkDefs(text string) []LinkDef {
	var defs []LinkDef
	for _, m := range linkDefRegex.FindAllStringSubmatch(text, -1) {
		defs = append(defs, LinkDef{Label: m[1], Target: m[2]})
	}
	return defs
}

// ExtractSections filters the document's sections by title and reassembles
// the survivors as markdown. Titles are matched case-insensitively after
// trimming. An empty include list keeps everything not excluded. Link
// definitions found anywhere in the source are re-appended after the kept
// sections so references keep resolving once sections are dropped.
func ExtractSections(text string, include, exclude []string) (string, error) {
	inc := titleSet(include)
	exc := titleSet(exclude)

	// Report conflicts with the caller's original casing so the offending
	// title can be grepped for in source pages.
	var conflicts []string
	seen := make(map[string]bool)
	for _, title := range include {
		title = strings.TrimSpace(title)
		key := strings.ToLower(title)
		if exc[key] && !seen[key] {
			seen[key] = true
			conflicts = append(conflicts, title)
		}
	}
	if len(conflicts) > 0 {
		sort.Strings(conflicts)
		return "", &FilterConflictError{Titles: conflicts}
	}

	var parts []string
	for _, sec := range SplitSections(text) {
		key := strings.ToLower(sec.Title)
		if (len(inc) == 0 || inc[key]) && !exc[key] {
			parts = append(parts, sec.Render())
		}
	}

	for _, def := range LinkDefs(text) {
		parts = append(parts, fmt.Sprintf("%s: %s", def.Label, def.Target))
	}

	return strings.Join(parts, "\n\n"), nil
}

// Render reproduces the section as markdown, heading line first.
func (s Section) Render() string {
	return fmt.Sprintf("%s %s\n\n%s", strings.Repeat("#", s.Level), s.Title, s.Body)
}

func titleSet(titles []string) map[string]bool {
	set := make(map[string]bool, len(titles))
	for _, t := range titles {
		set[strings.ToLower(strings.TrimSpace(t))] = true
	}
	return set
}
