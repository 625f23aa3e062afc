package ndspy

import (
	"sync"
)

// registry maps driver names to the scalar type their sessions carry.
var (
	registryMu sync.RWMutex
	drivers    = map[string]ScalarType{
		DriverF32: ScalarF32,
		DriverU32: ScalarU32,
		DriverI32: ScalarI32,
		DriverU16: ScalarU16,
		DriverI16: ScalarI16,
		DriverU8:  ScalarU8,
		DriverI8:  ScalarI8,
	}
)

// RegisterDriver registers (or aliases) a driver name for the given
// scalar type. The seven built-in names are pre-registered; registering
// an existing name replaces it.
//
// Use this when the renderer configuration cannot be changed and expects
// a specific driver name.
func RegisterDriver(name string, t ScalarType) {
	if name == "" || !t.Valid() {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = t
}

// UnregisterDriver removes a driver name from the registry.
// This is useful for testing.
func UnregisterDriver(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// DriverScalarType returns the scalar type registered for a driver name.
// The second result is false if the name is unknown.
func DriverScalarType(name string) (ScalarType, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := drivers[name]
	return t, ok
}

// Drivers returns the registered driver names.
func Drivers() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}
