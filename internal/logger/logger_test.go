package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reset() {
	SetDevelopment(false)
	SetOutput(os.Stderr)
}

func TestSetDevelopment(t *testing.T) {
	defer reset()

	SetDevelopment(false)
	assert.False(t, IsDevelopment())

	SetDevelopment(true)
	assert.True(t, IsDevelopment())

	SetDevelopment(false)
	assert.False(t, IsDevelopment())
}

func TestLevels_InDevelopment(t *testing.T) {
	defer reset()

	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] hits=3\n"},
		{"info", Info, "[INFO] hits=3\n"},
		{"warn", Warn, "[WARN] hits=3\n"},
		{"error", Error, "[ERROR] hits=3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetOutput(&buf)
			SetDevelopment(true)

			tt.log("hits=%d", 3)

			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_Silent(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetDevelopment(false)

	Debug("a")
	Info("b")
	Warn("c")
	Error("d")
	Section("e")

	assert.Empty(t, buf.String())
}

func TestSection(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetDevelopment(true)

	Section("Query")

	assert.Equal(t, "\n=== Query ===\n", buf.String())
}

func TestOutput(t *testing.T) {
	defer reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	assert.Equal(t, &buf, Output())
}
