package logger

import (
	"bytes"
	"io"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func()
		want    string
	}{
		{"debug verbose", true, func() { Debug("parsed %s", "2025-03-01.md") }, "[DEBUG] parsed 2025-03-01.md\n"},
		{"debug quiet", false, func() { Debug("parsed") }, ""},
		{"info verbose", true, func() { Info("routed %d segments", 3) }, "[INFO] routed 3 segments\n"},
		{"info quiet", false, func() { Info("hidden") }, ""},
		{"section verbose", true, func() { Section("Compaction") }, "\n=== Compaction ===\n"},
		{"section quiet", false, func() { Section("Compaction") }, ""},
		{"warn quiet", false, func() { Warn("skipped %s", "inbox/bad.md") }, "[WARN] skipped inbox/bad.md\n"},
		{"error quiet", false, func() { Error("archive unreadable") }, "[ERROR] archive unreadable\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, tt.verbose)
			tt.log()
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestConcurrentAccess(t *testing.T) {
	capture(t, false)
	SetOutput(io.Discard)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(i%2 == 0)
			Debug("entry %d", i)
			Warn("entry %d", i)
			_ = IsVerbose()
		}()
	}
	wg.Wait()
}
