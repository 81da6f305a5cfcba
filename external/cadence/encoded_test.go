package cadence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMsgPackDataConverterWorkflowArgs(t *testing.T) {
	c := NewMsgPackDataConverter()

	data, err := c.ToData("8f0f2f48-5d4a-4a53-a3c4-8d0bd9d3a0c1", 30*time.Minute)
	assert.NoError(t, err)

	var helpID string
	var window time.Duration
	assert.NoError(t, c.FromData(data, &helpID, &window))
	assert.Equal(t, "8f0f2f48-5d4a-4a53-a3c4-8d0bd9d3a0c1", helpID)
	assert.Equal(t, 30*time.Minute, window)
}

func TestMsgPackDataConverterMissingArgs(t *testing.T) {
	c := NewMsgPackDataConverter()

	data, err := c.ToData("only-one")
	assert.NoError(t, err)

	var helpID string
	var window time.Duration
	err = c.FromData(data, &helpID, &window)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable to decode argument: 1")
}
