package output

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSpinner_StartStop(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Signing in")

	s.Start()
	time.Sleep(150 * time.Millisecond)
	s.Stop()
	time.Sleep(50 * time.Millisecond)

	if !strings.Contains(buf.String(), "Signing in") {
		t.Error("spinner output missing message")
	}
	if !strings.Contains(buf.String(), "\r") {
		t.Error("spinner output should rewrite the line")
	}
}

func TestSpinner_Success(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Loading")

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Success("Signed in")
	time.Sleep(50 * time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "✓") || !strings.Contains(out, "Signed in") {
		t.Errorf("Success output = %q", out)
	}
}

func TestSpinner_Fail(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Loading")

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Fail("Invalid email or password")
	time.Sleep(50 * time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "✗") || !strings.Contains(out, "Invalid email or password") {
		t.Errorf("Fail output = %q", out)
	}
}

func TestSpinner_StopWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner(&buf, "Idle")

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Stop without Start panicked: %v", r)
		}
	}()
	s.Stop()
}
