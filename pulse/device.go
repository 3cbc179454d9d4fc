package pulse

import (
	"fmt"
	"log/slog"
)

const applicationName = "Lulu"

const queuePriority float32 = 1.0

// Extent is the presentable size of the window in pixels.
type Extent struct {
	Width  uint32
	Height uint32
}

// Context encapsulates the low level state of the vulkan context,
// this includes the Instance, the debug messenger, the Surface and
// the logical Device with its graphics Queue.
type Context struct {
	Instance       Instance
	DebugMessenger DebugMessenger
	Surface        Surface

	// not owned, valid as long as Instance lives
	PhysicalDevice PhysicalDevice

	Device      Device
	Queue       Queue
	QueueFamily int

	// last known size of the window. Only used for bookkeeping,
	// no gpu resource depends on it yet.
	Extent Extent
}

// New runs the full initialization sequence against the given window.
// Either a fully populated Context is returned, or an error and nothing
// created on the way is left alive.
func New(api API, win Window) (st *Context, err error) {
	defer func() {
		if err != nil && st != nil {
			st.Release()
			st = nil
		}
	}()

	st = &Context{QueueFamily: -1}

	windowExtensions, err := win.RequiredInstanceExtensions()
	if err != nil {
		return st, fmt.Errorf("query window extensions: %w", err)
	}

	// surface extensions of the window system plus debug utils
	extensions := make([]string, 0, len(windowExtensions)+1)
	extensions = append(extensions, windowExtensions...)
	extensions = append(extensions, DebugUtilsExtensionName)

	st.Instance, err = api.CreateInstance(InstanceCreateInfo{
		ApplicationName:       applicationName,
		APIVersion:            APIVersion1_0,
		EnabledExtensionNames: extensions,
		EnabledLayerNames:     []string{ValidationLayerName},
	})
	if err != nil {
		return st, fmt.Errorf("create instance: %w", err)
	}

	st.DebugMessenger, err = st.Instance.CreateDebugMessenger(debugMessengerInfo())
	if err != nil {
		return st, fmt.Errorf("create debug messenger: %w", err)
	}

	st.Surface, err = st.Instance.CreateSurface(win)
	if err != nil {
		return st, fmt.Errorf("create surface: %w", err)
	}

	devices, err := st.Instance.EnumeratePhysicalDevices()
	if err != nil {
		return st, fmt.Errorf("enumerate physical devices: %w", err)
	}

	deviceIdx, err := pickPhysicalDevice(devices)
	if err != nil {
		return st, err
	}

	st.PhysicalDevice = devices[deviceIdx]

	st.QueueFamily, err = pickQueueFamily(st.PhysicalDevice.QueueFamilies())
	if err != nil {
		return st, err
	}

	slog.Info("Selected physical device",
		slog.Int("device", deviceIdx),
		slog.Int("deviceCount", len(devices)),
		slog.Int("queueFamily", st.QueueFamily),
	)

	st.Device, err = st.PhysicalDevice.CreateDevice(DeviceCreateInfo{
		QueueCreateInfos: []DeviceQueueCreateInfo{
			{
				QueueFamilyIndex: st.QueueFamily,
				QueuePriorities:  []float32{queuePriority},
			},
		},
	})
	if err != nil {
		return st, fmt.Errorf("create device: %w", err)
	}

	st.Queue = st.Device.Queue(st.QueueFamily, 0)

	width, height := win.GetSize()
	st.Extent = Extent{Width: width, Height: height}

	return st, nil
}

// Release destroys the owned handles in reverse creation order.
// Calling it more than once is fine.
func (d *Context) Release() {
	d.Queue = nil

	if d.Device != nil {
		d.Device.Destroy()
		d.Device = nil
	}

	d.PhysicalDevice = nil

	if d.Surface != nil {
		d.Surface.Destroy()
		d.Surface = nil
	}

	if d.DebugMessenger != nil {
		d.DebugMessenger.Destroy()
		d.DebugMessenger = nil
	}

	if d.Instance != nil {
		d.Instance.Destroy()
		d.Instance = nil
	}
}
