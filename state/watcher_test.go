package state

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/grovetools/rolodex/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string) <-chan []records.Record {
	t.Helper()
	changes := make(chan []records.Record, 8)

	w, err := NewWatcher(path, 100*time.Millisecond, func(recs []records.Record) {
		changes <- recs
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})
	return changes
}

func TestWatcherReportsExternalWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yml")
	require.NoError(t, Save(path, sample()[:1]))

	changes := startWatcher(t, path)
	require.NoError(t, Save(path, sample()))

	select {
	case recs := <-changes:
		assert.Equal(t, sample(), recs)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot change")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yml")
	require.NoError(t, Save(path, nil))

	changes := startWatcher(t, path)
	for i := 0; i < 5; i++ {
		require.NoError(t, Save(path, sample()))
	}

	select {
	case recs := <-changes:
		assert.Equal(t, sample(), recs)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for snapshot change")
	}

	select {
	case <-changes:
		t.Fatal("burst of writes produced more than one reload")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "records.yml")
	require.NoError(t, Save(path, nil))

	changes := startWatcher(t, path)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0644))

	select {
	case <-changes:
		t.Fatal("unexpected reload for unrelated file")
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcherReloadsDoNotOverlap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.yml")
	require.NoError(t, Save(path, sample()))

	var inFlight, overlaps, calls int32
	w, err := NewWatcher(path, 0, func([]records.Record) {
		if atomic.AddInt32(&inFlight, 1) > 1 {
			atomic.AddInt32(&overlaps, 1)
		}
		time.Sleep(10 * time.Millisecond)
		atomic.AddInt32(&inFlight, -1)
		atomic.AddInt32(&calls, 1)
	})
	require.NoError(t, err)
	t.Cleanup(func() { w.Close() })

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.reload()
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))
	assert.Zero(t, atomic.LoadInt32(&overlaps))
}
