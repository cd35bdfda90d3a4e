package regmap

import "fmt"

// Composite folds field reset values into one register reset word:
// the OR of every field's Reset shifted left by its low bit, in
// declaration order.  A field whose low bit is beyond 63 contributes
// nothing.
func Composite(fields []Field) uint64 {
	var total uint64
	for _, f := range fields {
		if f.Position.Lo > 63 {
			continue
		}
		total |= f.Reset << uint(f.Position.Lo)
	}
	return total
}

// overflow explains why a field's reset value does not fit where it is
// declared, or returns "" if it does.  Bare legacy positions carry no
// width, so only the shift is checked for them.
func overflow(f Field) string {
	if f.Position.Lo > 63 {
		return fmt.Sprintf("low bit %d is beyond 63", f.Position.Lo)
	}
	w := f.Position.Width()
	if w > 0 && w < 64 && f.Reset>>uint(w) != 0 {
		return fmt.Sprintf("reset 0x%x does not fit in %d bit(s) at %s", f.Reset, w, f.Position)
	}
	if f.Reset != 0 && f.Position.Lo > 0 && f.Reset>>uint(64-f.Position.Lo) != 0 {
		return fmt.Sprintf("reset 0x%x shifted by %d loses bits", f.Reset, f.Position.Lo)
	}
	return ""
}
