package errors

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestFormatError_IsErrFormat(t *testing.T) {
	err := NewFormatError("bad id", nil)
	if !errors.Is(err, ErrFormat) {
		t.Fatalf("expected errors.Is(err, ErrFormat) to be true")
	}
	if errors.Is(err, ErrStoreIO) {
		t.Errorf("FormatError must not match ErrStoreIO")
	}
}

func TestFormatError_UnwrapsCause(t *testing.T) {
	_, cause := strconv.Atoi("x")
	err := NewFormatError("bad id", cause)

	var numErr *strconv.NumError
	if !errors.As(err, &numErr) {
		t.Fatalf("expected FormatError to unwrap to *strconv.NumError")
	}
}

func TestFormatError_AtLine(t *testing.T) {
	base := NewFormatError("wrong field count", nil)
	withLine := base.AtLine(7)

	if base.Line != 0 {
		t.Errorf("AtLine must not modify the receiver, got line %d", base.Line)
	}
	if withLine.Line != 7 {
		t.Errorf("expected line 7, got %d", withLine.Line)
	}
	if !strings.Contains(withLine.Error(), "line 7") {
		t.Errorf("expected message to mention line 7, got %q", withLine.Error())
	}

	wrapped := errors.Join(errors.New("loading students"), withLine)
	var ferr *FormatError
	if !errors.As(wrapped, &ferr) || ferr.Line != 7 {
		t.Errorf("expected to recover FormatError with line 7 from wrapped error")
	}
}
