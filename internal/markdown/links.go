package markdown

// RewriteLinkDefs replaces the target of every link-reference definition
// whose label appears in links. Labels keep their brackets, so a map key
// looks like "[architecture]". Lines with unknown labels pass through
// untouched.
func RewriteLinkDefs(text string, links map[string]string) string {
	if len(links) == 0 {
		return text
	}
	return linkDefRegex.ReplaceAllStringFunc(text, func(match string) string {
		m := linkDefRegex.FindStringSubmatch(match)
		if target, ok := links[m[1]]; ok {
			return m[1] + ": " + target
		}
		return match
	})
}
