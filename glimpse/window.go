package glimpse

import "unsafe"

type WindowID uint32

type Window interface {
	ID() WindowID

	// GetSize returns the presentable size in pixels.
	GetSize() (uint32, uint32)

	// RequiredInstanceExtensions lists the instance extensions
	// needed to create a surface for this window.
	RequiredInstanceExtensions() ([]string, error)

	// InstanceProcAddr returns vkGetInstanceProcAddr as loaded by the window system.
	InstanceProcAddr() unsafe.Pointer

	// CreateVulkanSurface creates a VkSurfaceKHR for the given VkInstance
	// and returns the raw handle. The caller owns the surface.
	CreateVulkanSurface(instance uintptr) (uintptr, error)

	// WaitEvent blocks until the next event is available.
	WaitEvent() Event

	// RequestClose queues a close request for this window.
	// Safe to call from any goroutine.
	RequestClose()

	Terminate()
}
