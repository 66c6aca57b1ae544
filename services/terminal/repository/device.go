package repository

import "sync"

// DeviceRepository keeps the single paired terminal device in memory.
// The application drives one terminal, so the slot holds at most one ID
// and pairing again simply replaces it.
type DeviceRepository struct {
	mu       sync.RWMutex
	deviceID string
}

// NewDeviceRepository creates a new in-memory device repository
func NewDeviceRepository() *DeviceRepository {
	return &DeviceRepository{}
}

// GetDeviceID returns the paired device ID, or empty when unpaired
func (r *DeviceRepository) GetDeviceID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.deviceID
}

// SetDeviceID records the paired device ID
func (r *DeviceRepository) SetDeviceID(deviceID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deviceID = deviceID
}
