package pulse

import (
	"golang.org/x/exp/slices"
)

// pickPhysicalDevice returns the first device in enumeration order.
// No scoring takes place.
func pickPhysicalDevice(devices []PhysicalDevice) (int, error) {
	if len(devices) == 0 {
		return -1, ErrNoPhysicalDevice
	}

	return 0, nil
}

// pickQueueFamily returns the index of the first family
// that supports graphics work.
func pickQueueFamily(families []QueueFamily) (int, error) {
	idx := slices.IndexFunc(families, func(family QueueFamily) bool {
		return family.Capabilities.Has(QueueGraphics)
	})

	if idx < 0 {
		return -1, ErrNoGraphicsQueueFamily
	}

	return idx, nil
}
