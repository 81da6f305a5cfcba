package store

import (
	"context"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestOpenMemoryBackend(t *testing.T) {
	viper.Set("store.backend", BackendMemory)
	defer viper.Set("store.backend", "")

	s, err := Open(context.Background())
	assert.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)
	assert.NoError(t, s.Ping())
	s.Close()
}

func TestOpenUnknownBackend(t *testing.T) {
	viper.Set("store.backend", "sqlite")
	defer viper.Set("store.backend", "")

	_, err := Open(context.Background())
	assert.EqualError(t, err, "unknown store backend: sqlite")
}
