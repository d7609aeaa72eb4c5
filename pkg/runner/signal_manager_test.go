package runner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSignalManager_Lifecycle(t *testing.T) {
	sm := NewSignalManager()

	ctx := sm.Context()
	assert.NotNil(t, ctx)
	assert.NoError(t, ctx.Err())
	assert.Nil(t, sm.Signal())

	sm.Stop()
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
	assert.Nil(t, sm.Signal(), "Stop is not a signal")
}

func TestSignalManager_CheckRace(t *testing.T) {
	sm := NewSignalManager()
	defer sm.Stop()

	start := time.Now()
	sm.CheckRace()
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 500*time.Millisecond, "CheckRace took too long")
}

func TestSignalManager_CheckRaceAfterStop(t *testing.T) {
	sm := NewSignalManager()
	sm.Stop()

	start := time.Now()
	sm.CheckRace()
	assert.Less(t, time.Since(start), 50*time.Millisecond)
}
