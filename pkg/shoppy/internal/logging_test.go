package internal

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Image workers call GetInternalLogger concurrently; run with -race.
func TestGetInternalLoggerConcurrentWithBrokenLogPath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	SetLogPath(filepath.Join(blocker, "shoppy.log"))

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NotNil(t, GetInternalLogger())
		}()
	}
	wg.Wait()

	assert.Error(t, outputErr, "log file could not be opened")
	assert.Nil(t, logFile)
	assert.Same(t, GetInternalLogger(), GetInternalLogger())
}
