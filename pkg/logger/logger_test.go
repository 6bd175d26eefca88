package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, parseLevel(c.in), "nivel %q", c.in)
	}
}

func TestNew_AplicaNivel(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn", Service: "catalogo-api"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}
