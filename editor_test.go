package mdedit

import (
	"errors"
	"testing"
)

func TestSessionApply(t *testing.T) {
	t.Parallel()

	s := NewSession("hello world")
	res, err := s.Apply(FormatBold, Selection{Start: 0, End: 5})
	if err != nil {
		t.Fatalf("Apply() error = %v, want nil", err)
	}

	expected := "**hello** world"
	if res.Text != expected {
		t.Errorf("Apply() text = %q, want %q", res.Text, expected)
	}
	if s.Text() != expected {
		t.Errorf("Text() = %q, want %q", s.Text(), expected)
	}
	if s.Version() != 1 {
		t.Errorf("Version() = %d, want 1", s.Version())
	}
}

func TestSessionApplyError(t *testing.T) {
	t.Parallel()

	s := NewSession("hello")
	_, err := s.Apply(FormatBold, Selection{Start: 3, End: 99})
	if !errors.Is(err, ErrInvalidSelection) {
		t.Fatalf("Apply() error = %v, want ErrInvalidSelection", err)
	}

	if s.Text() != "hello" {
		t.Errorf("Text() = %q, want %q after failed apply", s.Text(), "hello")
	}
	if s.Version() != 0 {
		t.Errorf("Version() = %d, want 0 after failed apply", s.Version())
	}
	if _, ok := s.TakePendingCursor(); ok {
		t.Error("TakePendingCursor() reported pending cursor after failed apply")
	}
}

func TestSessionPendingCursor(t *testing.T) {
	t.Parallel()

	s := NewSession("hello")
	res, err := s.Apply(FormatBold, Selection{Start: 0, End: 5})
	if err != nil {
		t.Fatalf("Apply() error = %v, want nil", err)
	}

	cursor, ok := s.TakePendingCursor()
	if !ok {
		t.Fatal("TakePendingCursor() = false, want true after Apply")
	}
	if cursor != res.Cursor {
		t.Errorf("TakePendingCursor() = %d, want %d", cursor, res.Cursor)
	}

	if _, ok := s.TakePendingCursor(); ok {
		t.Error("TakePendingCursor() returned a cursor twice")
	}
}

func TestSessionSetTextDropsPendingCursor(t *testing.T) {
	t.Parallel()

	s := NewSession("hello")
	if _, err := s.Apply(FormatBold, Selection{Start: 0, End: 5}); err != nil {
		t.Fatalf("Apply() error = %v, want nil", err)
	}

	version := s.SetText("typed over it")
	if version != 2 {
		t.Errorf("SetText() version = %d, want 2", version)
	}
	if _, ok := s.TakePendingCursor(); ok {
		t.Error("TakePendingCursor() reported pending cursor after SetText")
	}
}

func TestSessionApplyReplacesPendingCursor(t *testing.T) {
	t.Parallel()

	s := NewSession("one two")
	if _, err := s.Apply(FormatBold, Selection{Start: 0, End: 3}); err != nil {
		t.Fatalf("first Apply() error = %v, want nil", err)
	}
	res, err := s.Apply(FormatItalic, Selection{Start: 8, End: 11})
	if err != nil {
		t.Fatalf("second Apply() error = %v, want nil", err)
	}

	cursor, ok := s.TakePendingCursor()
	if !ok {
		t.Fatal("TakePendingCursor() = false, want true")
	}
	if cursor != res.Cursor {
		t.Errorf("TakePendingCursor() = %d, want %d from latest apply", cursor, res.Cursor)
	}
}
