package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEventProducer(t *testing.T) {
	p, err := NewEventProducer(KafkaConfig{Brokers: []string{"localhost:9092"}})
	require.NoError(t, err)
	defer p.Close()
	// topic falls back to the default when unset
	assert.Equal(t, DefaultClubEventTopic, p.topic)

	named, err := NewEventProducer(KafkaConfig{Brokers: []string{"localhost:9092"}, Topic: "audit"})
	require.NoError(t, err)
	defer named.Close()
	assert.Equal(t, "audit", named.topic)

	_, err = NewEventProducer(KafkaConfig{})
	require.Error(t, err)
}
