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
	log := New(Config{Env: "production", Level: "warn", Output: &buf})

	log.Info().Msg("descartado")
	log.Named("movements").Warn().Int64("qty", 5).Msg("stock negativo")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "movements", entry["component"])
	assert.Equal(t, "stock negativo", entry["message"])
	assert.EqualValues(t, 5, entry["qty"])
}

func TestParseLevel_DefaultInfo(t *testing.T) {
	assert.Equal(t, "info", parseLevel("desconocido").String())
	assert.Equal(t, "debug", parseLevel("debug").String())
}
