package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountdownRunsToExpiry(t *testing.T) {
	c := New()
	c.Start(3)
	assert.Equal(t, Running, c.Phase())

	assert.False(t, c.Tick())
	assert.Equal(t, 2, c.Remaining())
	assert.False(t, c.Tick())
	assert.True(t, c.Tick())
	assert.Equal(t, 0, c.Remaining())
	assert.Equal(t, Expired, c.Phase())
}

func TestExpiryFiresExactlyOnce(t *testing.T) {
	c := New()
	c.Start(1)

	assert.True(t, c.Tick())
	for i := 0; i < 5; i++ {
		assert.False(t, c.Tick())
	}
	assert.Equal(t, 0, c.Remaining())
}

func TestStartWithNoTimeExpiresOnFirstTick(t *testing.T) {
	c := New()
	c.Start(0)

	assert.True(t, c.Tick())
	assert.False(t, c.Tick())
	assert.Equal(t, Expired, c.Phase())
}

func TestPauseHoldsValueAcrossTicks(t *testing.T) {
	c := New()
	c.Start(10)
	c.Tick()
	c.Pause()

	for i := 0; i < 3; i++ {
		assert.False(t, c.Tick())
	}
	assert.Equal(t, 9, c.Remaining())
	assert.Equal(t, Paused, c.Phase())

	c.Resume()
	assert.False(t, c.Tick())
	assert.Equal(t, 8, c.Remaining())
}

func TestPauseResumeIgnoredOutsideTheirPhases(t *testing.T) {
	c := New()
	c.Pause()
	assert.Equal(t, Idle, c.Phase())
	c.Resume()
	assert.Equal(t, Idle, c.Phase())

	c.Start(1)
	c.Tick()
	c.Resume()
	assert.Equal(t, Expired, c.Phase())
}

func TestResetReturnsToIdleAndRearmsExpiry(t *testing.T) {
	c := New()
	c.Start(1)
	assert.True(t, c.Tick())

	c.Reset()
	assert.Equal(t, Idle, c.Phase())
	assert.False(t, c.Tick())

	c.Start(1)
	assert.True(t, c.Tick())
}
