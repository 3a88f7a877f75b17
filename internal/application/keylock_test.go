package application

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutexSerializesSameKey(t *testing.T) {
	var km keyedMutex
	counter := 0

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := km.lock("id-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
}

func TestKeyedMutexReleasesEntries(t *testing.T) {
	var km keyedMutex

	unlock := km.lock("id-1")
	unlock()
	unlock2 := km.lock("id-2")
	unlock2()

	km.mu.Lock()
	defer km.mu.Unlock()
	assert.Empty(t, km.entries, "released keys must not accumulate")
}
