package actions

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

// Action is one governance/changelog entry: a markdown file whose
// front-matter carries the metadata and whose body is the announcement text.
type Action struct {
	Title string
	Date  time.Time
	Via   string // e.g. "Board vote 2024-05-01"
	Loc   string // link to the full document
	Body  string
}

type envelope struct {
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Via   string `yaml:"via"`
	Loc   string `yaml:"loc"`
}

// Load reads each file, splits its front-matter, and parses the metadata.
// A file without front-matter or with an unparseable date fails the build
// with the file named.
func Load(files []string) ([]Action, error) {
	acts := make([]Action, 0, len(files))
	for _, path := range files {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read action %s: %w", path, err)
		}

		var meta envelope
		body, err := frontmatter.MustParse(bytes.NewReader(raw), &meta)
		if err != nil {
			return nil, fmt.Errorf("parse front-matter of %s: %w", path, err)
		}

		date, err := parseDate(meta.Date)
		if err != nil {
			return nil, fmt.Errorf("action %s: %w", path, err)
		}

		acts = append(acts, Action{
			Title: meta.Title,
			Date:  date,
			Via:   meta.Via,
			Loc:   meta.Loc,
			Body:  strings.TrimSpace(string(body)),
		})
	}
	return acts, nil
}

// Sort orders actions newest first, keeping input order for equal dates.
func Sort(acts []Action) {
	sort.SliceStable(acts, func(i, j int) bool {
		return acts[i].Date.After(acts[j].Date)
	})
}

// Render produces the collapsible admonition list the site embeds on its
// changelog page.
func Render(acts []Action) string {
	entries := make([]string, 0, len(acts))
	for _, act := range acts {
		var b strings.Builder
		fmt.Fprintf(&b, "??? abstract \"%s %s\"\n", act.Date.Format("2006-01-02"), act.Title)
		if act.Via != "" {
			fmt.Fprintf(&b, "\n    :material-file-check: %s", act.Via)
		}
		if act.Loc != "" {
			fmt.Fprintf(&b, "\n    :material-folder-open: [full document](%s)", act.Loc)
		}
		fmt.Fprintf(&b, "\n    %s", indentLines(act.Body))
		entries = append(entries, b.String())
	}
	return strings.Join(entries, "\n\n")
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q (want YYYY-MM-DD)", value)
}

func indentLines(text string) string {
	return strings.ReplaceAll(text, "\n", "\n    ")
}
