package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONConNivel(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Env: "production", Level: "warn", Service: "inventario", Out: &buf})

	l.Info().Msg("no aparece")
	c := l.Component("ledger")
	c.Warn().Str("product_id", "p1").Msg("movimiento rechazado")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "inventario", entry["service"])
	assert.Equal(t, "ledger", entry["component"])
	assert.Equal(t, "p1", entry["product_id"])
}

func TestParseLevel_PorDefectoInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "info", parseLevel("ruidoso").String())
	assert.Equal(t, "debug", parseLevel("debug").String())
}
