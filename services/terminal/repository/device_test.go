package repository

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeviceRepository_EmptyByDefault(t *testing.T) {
	repo := NewDeviceRepository()
	assert.Empty(t, repo.GetDeviceID())
}

func TestDeviceRepository_SetReplaces(t *testing.T) {
	repo := NewDeviceRepository()

	repo.SetDeviceID("device-1")
	assert.Equal(t, "device-1", repo.GetDeviceID())

	repo.SetDeviceID("device-2")
	assert.Equal(t, "device-2", repo.GetDeviceID())
}

func TestDeviceRepository_ConcurrentAccess(t *testing.T) {
	repo := NewDeviceRepository()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			repo.SetDeviceID("device-1")
		}()
		go func() {
			defer wg.Done()
			_ = repo.GetDeviceID()
		}()
	}
	wg.Wait()

	assert.Equal(t, "device-1", repo.GetDeviceID())
}
