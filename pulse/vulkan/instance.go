package vulkan

import (
	"github.com/oliverbestmann/lulu/pulse"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	khr_surface_loader "github.com/vkngwrapper/extensions/v3/khr_surface/loader"
)

// surfaceWindow is implemented by windows that can create a VkSurfaceKHR
// for a raw VkInstance handle.
type surfaceWindow interface {
	CreateVulkanSurface(instance uintptr) (uintptr, error)
}

type instance struct {
	driver core1_0.CoreInstanceDriver
}

func (i *instance) CreateDebugMessenger(info pulse.DebugMessengerCreateInfo) (pulse.DebugMessenger, error) {
	callback := info.Callback

	debugDriver := ext_debug_utils.CreateExtensionDriverFromCoreDriver(i.driver)
	if debugDriver == nil {
		return nil, errors.Errorf("extension %s is not enabled", ext_debug_utils.ExtensionName)
	}

	messenger, _, err := debugDriver.CreateDebugUtilsMessenger(nil, ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: severityFlags(info.Severities),
		MessageType:     typeFlags(info.Types),
		UserCallback: func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
			return callback(messageSeverity(severity), messageType(msgType), data.Message)
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "vkCreateDebugUtilsMessengerEXT")
	}

	return &debugMessenger{driver: debugDriver, messenger: messenger}, nil
}

func (i *instance) CreateSurface(window pulse.Window) (pulse.Surface, error) {
	win, ok := window.(surfaceWindow)
	if !ok {
		return nil, errors.Errorf("window of type %T can not create a vulkan surface", window)
	}

	surfaceDriver := khr_surface.CreateExtensionDriverFromCoreDriver(i.driver)
	if surfaceDriver == nil {
		return nil, errors.Errorf("extension %s is not enabled", khr_surface.ExtensionName)
	}

	handle, err := win.CreateVulkanSurface(uintptr(i.driver.Instance().Handle()))
	if err != nil {
		return nil, errors.Wrap(err, "create window surface")
	}

	surface, err := surfaceDriver.CreateSurfaceFromHandle(khr_surface_loader.VkSurfaceKHR(handle))
	if err != nil {
		return nil, errors.Wrap(err, "wrap surface handle")
	}

	return &windowSurface{driver: surfaceDriver, surface: surface}, nil
}

func (i *instance) EnumeratePhysicalDevices() ([]pulse.PhysicalDevice, error) {
	devices, _, err := i.driver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, errors.Wrap(err, "vkEnumeratePhysicalDevices")
	}

	result := make([]pulse.PhysicalDevice, 0, len(devices))
	for _, device := range devices {
		result = append(result, &physicalDevice{instance: i.driver, handle: device})
	}

	return result, nil
}

func (i *instance) Destroy() {
	i.driver.DestroyInstance(nil)
}

type debugMessenger struct {
	driver    ext_debug_utils.ExtensionDriver
	messenger ext_debug_utils.DebugUtilsMessenger
}

func (m *debugMessenger) Destroy() {
	m.driver.DestroyDebugUtilsMessenger(m.messenger, nil)
}

type windowSurface struct {
	driver  khr_surface.ExtensionDriver
	surface khr_surface.Surface
}

func (s *windowSurface) Destroy() {
	s.driver.DestroySurface(s.surface, nil)
}
