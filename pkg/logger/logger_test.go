package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("verbose"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
}

func TestNewWithWriter_JSONConCampos(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, Config{Env: "production", Level: "info", App: "stock"})

	l.Debug().Msg("oculto")
	l.Info().Str("product_id", "p1").Msg("visible")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "visible", line["message"])
	assert.Equal(t, "stock", line["app"])
	assert.Equal(t, "p1", line["product_id"])
}
