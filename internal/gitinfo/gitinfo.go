package gitinfo

import (
	"bufio"
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	branchOnce sync.Once
	branchName string
	branchErr  error
)

// ChangedDoc is a markdown file touched since the base ref, with a count of
// changed lines in the new version.
type ChangedDoc struct {
	Path         string
	ChangedLines int
}

// Branch returns the current git branch name. The lookup shells out once and
// caches the answer for the process lifetime, since every included file may
// substitute the branch placeholder.
func Branch() (string, error) {
	branchOnce.Do(func() {
		cmd := exec.Command("git", "rev-parse", "--abbrev-ref", "HEAD")
		output, err := cmd.Output()
		if err != nil {
			branchErr = fmt.Errorf("git rev-parse failed: %w", err)
			return
		}
		branchName = strings.TrimSpace(string(output))
	})
	return branchName, branchErr
}

// ChangedDocs runs git diff against baseRef and returns the changed markdown
// files under docsDir, so a build can rebuild only affected pages.
func ChangedDocs(baseRef, docsDir string) ([]ChangedDoc, error) {
	cmd := exec.Command("git", "diff", "-U0", baseRef)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git diff failed: %w", err)
	}

	return parseDiff(output, docsDir), nil
}

// Regex for chunk header: @@ -oldStart,oldLen +newStart,newLen @@
// Only the + side matters, that is the new version of the file.
var chunkHeader = regexp.MustCompile(`^@@ \-\d+(?:,\d+)? \+(\d+)(?:,(\d+))? @@`)

func parseDiff(output []byte, docsDir string) []ChangedDoc {
	prefix := filepath.ToSlash(docsDir)
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	var docs []ChangedDoc
	var current *ChangedDoc

	flush := func() {
		if current != nil {
			docs = append(docs, *current)
			current = nil
		}
	}

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, "diff --git") {
			flush()

			// a/path/to/file b/path/to/file, keep the b/ (new) path
			parts := strings.Fields(line)
			if len(parts) < 4 {
				continue
			}
			path := strings.TrimPrefix(parts[3], "b/")
			if !strings.HasSuffix(path, ".md") {
				continue
			}
			if prefix != "" && !strings.HasPrefix(path, prefix) {
				continue
			}
			current = &ChangedDoc{Path: path}
			continue
		}

		if current == nil {
			continue
		}

		if strings.HasPrefix(line, "@@") {
			matches := chunkHeader.FindStringSubmatch(line)
			if len(matches) > 1 {
				count := 1 // length omitted means a single line
				if matches[2] != "" {
					count, _ = strconv.Atoi(matches[2])
				}
				current.ChangedLines += count
			}
		}
	}
	flush()

	return docs
}
