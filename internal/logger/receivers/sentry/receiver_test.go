package sentry

import (
	"testing"

	"github.com/getsentry/raven-go"
	"github.com/mono83/slf"
	"github.com/stretchr/testify/assert"
)

func TestNewReceiverUnknownLevel(t *testing.T) {
	client, _ := raven.New("")
	_, err := NewReceiver(client, "loud")
	assert.EqualError(t, err, "unknown level loud")
}

func TestNewReceiver(t *testing.T) {
	client, _ := raven.New("")
	r, err := NewReceiver(client, "warn", "apiKey")
	assert.NoError(t, err)
	assert.NotNil(t, r)
}

func TestSeverity(t *testing.T) {
	assert.Equal(t, raven.WARNING, severity(slf.TypeWarning))
	assert.Equal(t, raven.FATAL, severity(slf.TypeEmergency))
	assert.Equal(t, raven.ERROR, severity(0xff))
}
