package pulse

// Version is a packed Vulkan API version.
type Version uint32

// APIVersion1_0 is the baseline version requested when creating the instance.
const APIVersion1_0 Version = 1 << 22

const (
	DebugUtilsExtensionName = "VK_EXT_debug_utils"
	ValidationLayerName     = "VK_LAYER_KHRONOS_validation"
)

// API is the entry point into the GPU driver. Everything created through
// it is owned by the returned Instance.
type API interface {
	CreateInstance(info InstanceCreateInfo) (Instance, error)
}

type InstanceCreateInfo struct {
	ApplicationName       string
	APIVersion            Version
	EnabledExtensionNames []string
	EnabledLayerNames     []string
}

type Instance interface {
	CreateDebugMessenger(info DebugMessengerCreateInfo) (DebugMessenger, error)
	CreateSurface(window Window) (Surface, error)
	EnumeratePhysicalDevices() ([]PhysicalDevice, error)
	Destroy()
}

// DebugCallback receives driver and validation messages. The return value
// tells the driver whether to abort the call that triggered the message.
type DebugCallback func(severity MessageSeverity, types MessageType, message string) bool

type DebugMessengerCreateInfo struct {
	Severities MessageSeverity
	Types      MessageType
	Callback   DebugCallback
}

type DebugMessenger interface {
	Destroy()
}

type Surface interface {
	Destroy()
}

type QueueFamily struct {
	Capabilities QueueCapabilities
	QueueCount   int
}

type DeviceQueueCreateInfo struct {
	QueueFamilyIndex int
	QueuePriorities  []float32
}

type DeviceCreateInfo struct {
	QueueCreateInfos []DeviceQueueCreateInfo
}

// PhysicalDevice is a GPU visible to an instance. It is not owned
// and stays valid as long as the instance lives.
type PhysicalDevice interface {
	QueueFamilies() []QueueFamily
	CreateDevice(info DeviceCreateInfo) (Device, error)
}

type Device interface {
	Queue(queueFamilyIndex, queueIndex int) Queue
	Destroy()
}

// Queue is a submission channel owned by its Device.
type Queue interface {
	FamilyIndex() int
}

// Window is what the context needs from the windowing system.
type Window interface {
	RequiredInstanceExtensions() ([]string, error)
	GetSize() (uint32, uint32)
}
