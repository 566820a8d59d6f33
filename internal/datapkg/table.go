package datapkg

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Level selects which requirement tiers a field table documents.
type Level string

const (
	LevelRequired    Level = "required"
	LevelRecommended Level = "recommended"
	LevelAll         Level = "all"
)

// ParseLevel validates a user-supplied level name.
func ParseLevel(s string) (Level, error) {
	switch Level(strings.ToLower(strings.TrimSpace(s))) {
	case LevelRequired:
		return LevelRequired, nil
	case LevelRecommended:
		return LevelRecommended, nil
	case LevelAll:
		return LevelAll, nil
	}
	return "", fmt.Errorf("unknown requirement level %q (want required, recommended, or all)", s)
}

// Field is one row of a schema documentation table.
type Field struct {
	Name        string
	Description string
	Type        string
	Requirement string
}

type property struct {
	Description string `json:"description"`
	Type        string `json:"type"`
	Enum        []any  `json:"enum"`
	Examples    []any  `json:"examples"`
}

// Fields returns the documented fields at the current schema position,
// filtered by level, in schema declaration order.
func (p *Package) Fields(include Level) ([]Field, error) {
	var node struct {
		Properties  map[string]property `json:"properties"`
		Required    []string            `json:"required"`
		Recommended []string            `json:"recommended"`
	}
	if err := json.Unmarshal(p.node, &node); err != nil {
		return nil, fmt.Errorf("parse schema properties in %s: %w", p.Path, err)
	}

	required := toSet(node.Required)
	recommended := toSet(node.Recommended)

	names, err := propertyOrder(p.node)
	if err != nil {
		return nil, err
	}

	var fields []Field
	for _, name := range names {
		switch include {
		case LevelRequired:
			if !required[name] {
				continue
			}
		case LevelRecommended:
			if !required[name] && !recommended[name] {
				continue
			}
		}

		prop := node.Properties[name]
		requirement := "-"
		if required[name] {
			requirement = "required"
		} else if recommended[name] {
			requirement = "recommended"
		}

		fields = append(fields, Field{
			Name:        name,
			Description: describe(prop),
			Type:        prop.Type,
			Requirement: requirement,
		})
	}
	return fields, nil
}

// FieldTable renders the selected fields as a GFM table.
func (p *Package) FieldTable(include Level) (string, error) {
	fields, err := p.Fields(include)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("| name | description | type | requirement |\n")
	b.WriteString("| --- | --- | --- | --- |\n")
	for _, f := range fields {
		fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
			f.Name, escapeCell(f.Description), f.Type, f.Requirement)
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

// describe builds the description cell: the schema description, allowed enum
// values as an HTML list, and the first example.
func describe(prop property) string {
	desc := prop.Description
	if len(prop.Enum) > 0 {
		vals := make([]string, 0, len(prop.Enum))
		for _, v := range prop.Enum {
			vals = append(vals, fmt.Sprintf("%v", v))
		}
		desc += fmt.Sprintf("<br>**Must be one of:**<ul><li>%s</li></ul>", strings.Join(vals, "</li><li>"))
	}
	if len(prop.Examples) > 0 {
		desc += fmt.Sprintf("<br>**Example:** `%v`", prop.Examples[0])
	}
	return desc
}

// propertyOrder reads the keys of the node's properties object in document
// order. encoding/json maps lose ordering, so the key sequence is pulled from
// the token stream instead; the table should match the schema author's layout.
func propertyOrder(node json.RawMessage) ([]string, error) {
	dec := json.NewDecoder(bytes.NewReader(node))

	// Expect the opening brace of the node itself.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("scan schema node: %w", err)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("scan schema node: %w", err)
		}
		key, _ := tok.(string)
		if key != "properties" {
			// Skip this key's value entirely.
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}

		open, err := dec.Token()
		if err != nil {
			return nil, err
		}
		if delim, ok := open.(json.Delim); !ok || delim != '{' {
			return nil, nil
		}

		var names []string
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			name, _ := tok.(string)
			names = append(names, name)
			if err := skipValue(dec); err != nil {
				return nil, err
			}
		}
		return names, nil
	}
	return nil, nil
}

func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || (delim != '{' && delim != '[') {
		return nil
	}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		if d, ok := tok.(json.Delim); ok {
			switch d {
			case '{', '[':
				depth++
			case '}', ']':
				depth--
			}
		}
	}
	return nil
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", "<br>")
}
