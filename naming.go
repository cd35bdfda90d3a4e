package main

import (
	"path/filepath"
	"strings"
)

// baseName is the input file name without directory or extension:
// "maps/TimerUnit.txt" -> "TimerUnit".
func baseName(path string) string {
	b := filepath.Base(path)
	if n := strings.TrimSuffix(b, filepath.Ext(b)); n != "" {
		return n
	}
	return b
}

// snakeCase converts a camel-case name for use in file names: an
// underscore goes before every upper-case ASCII letter except a
// leading one, then everything is lower-cased.  "TimerUnit" ->
// "timer_unit", "ADC" -> "a_d_c".
func snakeCase(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte('_')
		}
		b.WriteRune(r)
	}
	return strings.ToLower(b.String())
}
