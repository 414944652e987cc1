package ini

import (
	"maps"
	"slices"
	"strings"
)

// Encode renders cfg in canonical form: globals first, then every section as
// a `[name]` header followed by its `key=value` lines, all in key order.
//
// For any Config produced by [Parse], Parse(Encode(cfg)) yields an equal
// Config.
func Encode(cfg *Config) string {
	var b strings.Builder

	for _, key := range slices.Sorted(maps.Keys(cfg.Globals)) {
		writeField(&b, key, cfg.Globals[key])
	}

	for _, name := range slices.Sorted(maps.Keys(cfg.Sections)) {
		b.WriteString(sectionOpen)
		b.WriteString(name)
		b.WriteString(sectionClose)
		b.WriteByte('\n')

		fields := cfg.Sections[name]
		for _, key := range slices.Sorted(maps.Keys(fields)) {
			writeField(&b, key, fields[key])
		}
	}

	return b.String()
}

func writeField(b *strings.Builder, key, value string) {
	b.WriteString(key)
	b.WriteString(fieldSep)
	b.WriteString(value)
	b.WriteByte('\n')
}
