package terminal

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/adampos/tipstation/services/terminal DeviceRepo

// DeviceRepo holds the single paired terminal device
type DeviceRepo interface {
	// GetDeviceID returns the paired device ID, or empty when unpaired
	GetDeviceID() string

	// SetDeviceID records the paired device ID
	SetDeviceID(deviceID string)
}
