package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zerolog.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestSetup_TagsSession(t *testing.T) {
	prev, lvl := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prev
		zerolog.SetGlobalLevel(lvl)
	})

	var buf bytes.Buffer
	session := Setup("info", &buf)
	log.Info().Msg("controller connected")
	log.Debug().Msg("hidden")

	out := buf.String()
	assert.NotEmpty(t, session)
	assert.Contains(t, out, "controller connected")
	assert.Contains(t, out, session)
	assert.NotContains(t, out, "hidden")
}
