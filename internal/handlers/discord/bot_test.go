package discord

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/KirkDiggler/jetlag/internal/services/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginStartAllowsOneStartAtATime(t *testing.T) {
	b := &Bot{}

	release, err := b.beginStart()
	require.NoError(t, err)

	_, err = b.beginStart()
	assert.ErrorIs(t, err, game.ErrGameAlreadyRunning)

	release()

	release, err = b.beginStart()
	require.NoError(t, err)
	release()
}

func TestBeginStartConcurrentConfirmations(t *testing.T) {
	b := &Bot{}

	var (
		wg       sync.WaitGroup
		won      atomic.Int32
		releases = make(chan func(), 20)
	)
	for n := 0; n < 20; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release, err := b.beginStart()
			if err != nil {
				assert.ErrorIs(t, err, game.ErrGameAlreadyRunning)
				return
			}
			won.Add(1)
			releases <- release
		}()
	}
	wg.Wait()
	close(releases)

	assert.Equal(t, int32(1), won.Load())
	for release := range releases {
		release()
	}
	assert.False(t, b.starting.Load())
}

func TestArchivedFileName(t *testing.T) {
	assert.Equal(t, "123.png", archivedFileName("123", []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")))
	assert.Equal(t, "456", archivedFileName("456", []byte{0x00, 0x01, 0x02}))
}
