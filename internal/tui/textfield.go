package tui

// TextField is a cursor-addressable single-line text buffer backing the
// search box. It is rune-indexed, never byte-indexed, so multi-byte input
// cannot split a character or push the cursor out of bounds.
//
// Invariant: 0 <= cursor <= len(runes), maintained by construction — every
// operation clamps rather than erroring.
type TextField struct {
	runes  []rune
	cursor int
}

// NewTextField creates an empty field with the cursor at 0.
func NewTextField() *TextField {
	return &TextField{}
}

// Text returns the current contents.
func (f *TextField) Text() string {
	return string(f.runes)
}

// Cursor returns the rune index of the insertion point.
func (f *TextField) Cursor() int {
	return f.cursor
}

// Len returns the number of runes.
func (f *TextField) Len() int {
	return len(f.runes)
}

// IsEmpty reports whether the field holds no text.
func (f *TextField) IsEmpty() bool {
	return len(f.runes) == 0
}

// InsertRune inserts one rune at the cursor and advances past it.
func (f *TextField) InsertRune(r rune) {
	f.runes = append(f.runes, 0)
	copy(f.runes[f.cursor+1:], f.runes[f.cursor:])
	f.runes[f.cursor] = r
	f.cursor++
}

// InsertString inserts s at the cursor and advances past it.
func (f *TextField) InsertString(s string) {
	ins := []rune(s)
	if len(ins) == 0 {
		return
	}
	out := make([]rune, 0, len(f.runes)+len(ins))
	out = append(out, f.runes[:f.cursor]...)
	out = append(out, ins...)
	out = append(out, f.runes[f.cursor:]...)
	f.runes = out
	f.cursor += len(ins)
}

// Delete removes the rune at the cursor, if any. The cursor stays put.
func (f *TextField) Delete() {
	if f.cursor >= len(f.runes) {
		return
	}
	f.runes = append(f.runes[:f.cursor], f.runes[f.cursor+1:]...)
}

// Backspace removes the rune before the cursor, if any.
func (f *TextField) Backspace() {
	if f.cursor == 0 {
		return
	}
	f.Left()
	f.Delete()
}

// Left moves the cursor one rune left, clamped at 0.
func (f *TextField) Left() {
	if f.cursor > 0 {
		f.cursor--
	}
}

// Right moves the cursor one rune right, clamped at the end.
func (f *TextField) Right() {
	if f.cursor < len(f.runes) {
		f.cursor++
	}
}

// Home moves the cursor to the start.
func (f *TextField) Home() {
	f.cursor = 0
}

// End moves the cursor past the last rune.
func (f *TextField) End() {
	f.cursor = len(f.runes)
}

// SetText replaces the contents and puts the cursor at the end.
func (f *TextField) SetText(s string) {
	f.runes = []rune(s)
	f.cursor = len(f.runes)
}

// Clear empties the field and resets the cursor.
func (f *TextField) Clear() {
	f.runes = nil
	f.cursor = 0
}
