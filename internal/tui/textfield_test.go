package tui

import "testing"

func assertField(t *testing.T, f *TextField, text string, cursor int) {
	t.Helper()
	if f.Text() != text {
		t.Errorf("text = %q, want %q", f.Text(), text)
	}
	if f.Cursor() != cursor {
		t.Errorf("cursor = %d, want %d", f.Cursor(), cursor)
	}
	if f.Cursor() < 0 || f.Cursor() > f.Len() {
		t.Errorf("cursor %d out of bounds [0,%d]", f.Cursor(), f.Len())
	}
}

func TestTextField_EditingScenario(t *testing.T) {
	f := NewTextField()
	assertField(t, f, "", 0)
	if !f.IsEmpty() {
		t.Error("new field should be empty")
	}

	f.SetText("Some")
	assertField(t, f, "Some", 4)

	f.Home()
	assertField(t, f, "Some", 0)

	f.End()
	assertField(t, f, "Some", 4)

	f.InsertRune(' ')
	assertField(t, f, "Some ", 5)

	f.InsertString("text")
	assertField(t, f, "Some text", 9)

	f.Backspace()
	assertField(t, f, "Some tex", 8)

	f.Left()
	f.Left()
	f.Left()
	assertField(t, f, "Some tex", 5)

	f.Delete()
	assertField(t, f, "Some ex", 5)

	f.Home()
	f.InsertString("You are ")
	assertField(t, f, "You are Some ex", 8)
}

func TestTextField_InsertBackspaceRoundTrip(t *testing.T) {
	f := NewTextField()
	f.SetText("abc")
	f.Left() // cursor 2

	f.InsertRune('x')
	assertField(t, f, "abxc", 3)
	f.Backspace()
	assertField(t, f, "abc", 2)
}

func TestTextField_CursorClamping(t *testing.T) {
	f := NewTextField()

	f.Left()
	assertField(t, f, "", 0)
	f.Right()
	assertField(t, f, "", 0)
	f.Backspace()
	assertField(t, f, "", 0)
	f.Delete()
	assertField(t, f, "", 0)

	f.SetText("ab")
	f.Right()
	assertField(t, f, "ab", 2)

	f.End()
	f.Delete() // nothing at the cursor when it sits past the last rune
	assertField(t, f, "ab", 2)
}

func TestTextField_MultiByteRunes(t *testing.T) {
	f := NewTextField()
	f.SetText("héllo")
	assertField(t, f, "héllo", 5)

	f.Home()
	f.Right()
	f.Right() // past 'é'
	f.Backspace()
	assertField(t, f, "hllo", 1)

	f.InsertRune('日')
	assertField(t, f, "h日llo", 2)

	f.InsertString("本語")
	assertField(t, f, "h日本語llo", 4)
}

func TestTextField_ClearAndSetText(t *testing.T) {
	f := NewTextField()
	f.SetText("something")
	f.Clear()
	assertField(t, f, "", 0)

	f.SetText("replaced")
	assertField(t, f, "replaced", 8)
}
