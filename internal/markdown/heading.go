package markdown

// DownshiftHeadings pushes every ATX heading down one level, so a page can
// embed an included document under its own title. Level-6 headings stay at
// level 6 since markdown has nothing deeper.
func DownshiftHeadings(text string) string {
	return headingRegex.ReplaceAllStringFunc(text, func(match string) string {
		m := headingRegex.FindStringSubmatch(match)
		hashes, title := m[1], m[2]
		if len(hashes) < 6 {
			hashes = "#" + hashes
		}
		return hashes + " " + title
	})
}
