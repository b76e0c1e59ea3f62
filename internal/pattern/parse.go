package pattern

import "strings"

// Parse parses a pattern into its nodes and the variables it uses.
//
// Transform names and arguments are not validated here; unknown transforms
// and bad arguments surface in Render.
func Parse(input string) (*Parsed, error) {
	var nodes []Node
	var used []string
	seen := make(map[string]bool)

	var literal strings.Builder
	flush := func() {
		if literal.Len() > 0 {
			nodes = append(nodes, Literal{Value: literal.String()})
			literal.Reset()
		}
	}

	i := 0
	for i < len(input) {
		open := strings.IndexByte(input[i:], '{')
		if open < 0 {
			literal.WriteString(input[i:])
			break
		}
		open += i
		literal.WriteString(input[i:open])
		flush()

		end := strings.IndexByte(input[open+1:], '}')
		if end < 0 {
			return nil, &GrammarError{Pos: open, Reason: ErrMissingClosingBrace}
		}
		end += open + 1

		v, err := parseBlock(input[open+1:end], open)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, v)
		if !seen[v.Name] {
			seen[v.Name] = true
			used = append(used, v.Name)
		}

		i = end + 1
	}
	flush()

	return &Parsed{Nodes: nodes, VariablesUsed: used}, nil
}

// parseBlock parses the text between "{" and "}". pos is the offset of the
// opening brace, for error reporting.
func parseBlock(body string, pos int) (Variable, error) {
	inside := strings.TrimSpace(body)
	if strings.Contains(inside, "{") {
		return Variable{}, &GrammarError{Pos: pos, Reason: ErrNestedBrace}
	}
	if inside == "" {
		return Variable{}, &GrammarError{Pos: pos, Reason: ErrEmptyBlock}
	}

	rawName, section, _ := strings.Cut(inside, ":")
	name := strings.TrimSpace(rawName)
	if name == "" {
		return Variable{}, &GrammarError{Pos: pos, Reason: ErrMissingName}
	}

	v := Variable{Name: name}
	section = strings.TrimSpace(section)
	if section == "" {
		return v, nil
	}

	for _, seg := range strings.Split(section, ";") {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		call, err := parseCall(seg, pos)
		if err != nil {
			return Variable{}, err
		}
		v.Transforms = append(v.Transforms, call)
	}
	return v, nil
}

// parseCall parses "name" or "name:arg1:arg2".
func parseCall(segment string, pos int) (Call, error) {
	parts := strings.Split(segment, ":")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if parts[0] == "" {
		return Call{}, &GrammarError{Pos: pos, Reason: ErrInvalidTransform, Segment: segment}
	}
	call := Call{Name: parts[0]}
	if len(parts) > 1 {
		call.Args = parts[1:]
	}
	return call, nil
}
