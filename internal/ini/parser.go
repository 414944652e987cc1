package ini

import "strings"

const (
	commentPrefix = ";"
	sectionOpen   = "["
	sectionClose  = "]"
	fieldSep      = "="
)

type lineKind int

const (
	lineUnknown lineKind = iota
	lineComment
	lineField
	lineSection
	lineBlank
)

// Parse converts text into a [Config]. It never fails: lines that do not match
// any known shape are skipped.
//
// Duplicate section headers reset the section, so only fields following the
// last header of a given name survive.
func Parse(text string) *Config {
	cfg := NewConfig()

	var (
		current string
		active  bool
	)

	for _, line := range splitLines(text) {
		kind, name, value := classify(line)

		switch kind {
		case lineField:
			if active {
				cfg.Sections[current][name] = value
			} else {
				cfg.Globals[name] = value
			}
		case lineSection:
			cfg.Sections[name] = make(map[string]string)
			current, active = name, true
		case lineBlank:
			current, active = "", false
		}
	}

	return cfg
}

// splitLines splits on \r\n, \n and \r. Every terminator closes exactly one
// line, so consecutive terminators produce blank lines.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return strings.Split(text, "\n")
}

// classify applies the comment > field > section > blank precedence and
// returns the kind of line together with its key/value or section name.
func classify(line string) (kind lineKind, name, value string) {
	trimmed := strings.TrimSpace(line)

	if strings.HasPrefix(trimmed, commentPrefix) {
		return lineComment, "", ""
	}

	if key, val, ok := strings.Cut(trimmed, fieldSep); ok {
		if key = strings.TrimSpace(key); key != "" {
			return lineField, key, strings.TrimSpace(val)
		}
	}

	if strings.HasPrefix(trimmed, sectionOpen) && strings.HasSuffix(trimmed, sectionClose) && len(trimmed) >= 2 {
		inner := trimmed[1 : len(trimmed)-1]
		if !strings.Contains(inner, sectionClose) {
			return lineSection, strings.TrimSpace(inner), ""
		}
	}

	// Only a truly empty line closes a section; whitespace-only lines are noise.
	if line == "" {
		return lineBlank, "", ""
	}

	return lineUnknown, "", ""
}
