package lock_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"stackit.dev/scribe/internal/lock"
)

func TestManagerSerializesPerKey(t *testing.T) {
	manager := lock.NewManager()

	var wg sync.WaitGroup
	counter := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := manager.Acquire("repo-a")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	require.Equal(t, 50, counter)
}

func TestManagerKeysAreIndependent(t *testing.T) {
	manager := lock.NewManager()

	unlockA := manager.Acquire("repo-a")
	defer unlockA()

	// a different repository must not block
	done := make(chan struct{})
	go func() {
		unlockB := manager.Acquire("repo-b")
		unlockB()
		close(done)
	}()
	<-done
}
