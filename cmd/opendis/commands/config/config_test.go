package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marmos91/opendis/pkg/config"
)

func TestSchemaUsesFileKeys(t *testing.T) {
	s := Schema()
	require.NotNil(t, s.Properties)

	for _, key := range []string{"logging", "transport", "dis", "recorder", "archive", "api", "shutdown_timeout"} {
		_, ok := s.Properties.Get(key)
		assert.True(t, ok, key)
	}
	_, ok := s.Properties.Get("Transport")
	assert.False(t, ok)
}

func TestWarnings(t *testing.T) {
	cfg := config.GetDefaultConfig()
	cfg.Transport.Broadcast = ""
	cfg.Transport.MulticastGroup = ""
	cfg.Archive.Bucket = ""
	w := warnings(cfg)
	assert.Len(t, w, 2)

	cfg.Transport.Broadcast = "255.255.255.255:3000"
	cfg.Archive.Bucket = "dis"
	assert.Empty(t, warnings(cfg))
}
