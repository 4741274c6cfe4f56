package cli

import (
	"context"
	"log/slog"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalContext(t *testing.T) {
	t.Run("Records the signal", func(t *testing.T) {
		ch := make(chan os.Signal, 1)
		sc := watchSignals(context.Background(), ch)
		defer sc.Cancel()

		ch <- syscall.SIGTERM
		select {
		case <-sc.Done():
		case <-time.After(time.Second):
			t.Fatal("context not cancelled by signal")
		}

		assert.Equal(t, syscall.SIGTERM, sc.Signal())
		assert.ErrorIs(t, sc.Err(), context.Canceled)
		assert.EqualError(t, context.Cause(sc), "received signal terminated")
	})

	t.Run("Manual cancel has no signal", func(t *testing.T) {
		sc := watchSignals(context.Background(), make(chan os.Signal))
		sc.Cancel()

		<-sc.Done()
		assert.Nil(t, sc.Signal())
	})

	t.Run("Parent cancel", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		sc := NewSignalContext(parent)
		cancel()

		<-sc.Done()
		assert.Nil(t, sc.Signal())
	})
}

func TestCreateLogger(t *testing.T) {
	logger, err := CreateLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Enabled(context.Background(), slog.LevelDebug))

	_, err = CreateLogger("loud")
	assert.Error(t, err)
}
