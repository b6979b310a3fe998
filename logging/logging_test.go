package logging

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogWithColorsDisabledWritesPlainLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewColorLogger(&buf, false)

	l.Log("ERROR: something broke")

	got := buf.String()
	if !strings.Contains(got, "ERROR: something broke") {
		t.Fatalf("got %q, want it to contain the plain line", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("got %q, want no ANSI escape codes with colors disabled", got)
	}
}

func TestLogWithColorsEnabledWritesLine(t *testing.T) {
	var buf bytes.Buffer
	l := NewColorLogger(&buf, true)

	l.Log("LLDPDU(...)")

	if !strings.Contains(buf.String(), "LLDPDU(...)") {
		t.Fatalf("got %q, want it to contain the logged line", buf.String())
	}
}

func TestNewDefaultLoggerWritesToStdout(t *testing.T) {
	l := NewDefaultLogger()
	if l == nil {
		t.Fatal("NewDefaultLogger returned nil")
	}
	if l.out != os.Stdout {
		t.Fatalf("NewDefaultLogger writes to %v, want os.Stdout", l.out)
	}
}
