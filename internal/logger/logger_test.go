package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func reset() {
	SetVerbose(false)
	_ = SetLevel("warn")
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer reset()

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if !strings.Contains(buf.String(), "test message arg") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("info message")

	if buf.Len() > 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestWarn_AlwaysWritten(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Warn("translit failed: %v", "boom")
	Error("flush failed")

	out := buf.String()
	if !strings.Contains(out, "translit failed: boom") {
		t.Errorf("missing warning in %q", out)
	}
	if !strings.Contains(out, "flush failed") {
		t.Errorf("missing error in %q", out)
	}
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Pipeline")

	if !strings.Contains(buf.String(), "=== Pipeline ===") {
		t.Errorf("unexpected section output: %q", buf.String())
	}
}

func TestSetLevel(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	if err := SetLevel("info"); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	Info("info message %d", 42)
	if !strings.Contains(buf.String(), "info message 42") {
		t.Errorf("expected info output, got %q", buf.String())
	}

	if err := SetLevel("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestOpenFile(t *testing.T) {
	defer reset()

	path := filepath.Join(t.TempDir(), "zuc.log")
	closeFn, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	Warn("written to file")
	closeFn()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file missing message: %q", string(data))
	}
}

func TestConcurrentAccess(t *testing.T) {
	defer reset()

	var buf safeBuffer
	SetOutput(&buf)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}
