package pulse

import (
	"errors"
	"fmt"
)

// recorder collects the api calls made by the fakes in call order.
type recorder struct {
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// index returns the position of the first call equal to name, or -1.
func (r *recorder) index(name string) int {
	for idx, call := range r.calls {
		if call == name {
			return idx
		}
	}

	return -1
}

func (r *recorder) count(name string) int {
	var n int
	for _, call := range r.calls {
		if call == name {
			n++
		}
	}

	return n
}

var errInjected = errors.New("injected failure")

type fakeAPI struct {
	rec *recorder

	families [][]QueueFamily

	failInstance  bool
	failMessenger bool
	failSurface   bool
	failEnumerate bool
	failDevice    bool

	instanceInfo  InstanceCreateInfo
	messengerInfo DebugMessengerCreateInfo
	deviceInfo    DeviceCreateInfo
}

func newFakeAPI(families ...[]QueueFamily) *fakeAPI {
	return &fakeAPI{rec: &recorder{}, families: families}
}

func (a *fakeAPI) CreateInstance(info InstanceCreateInfo) (Instance, error) {
	a.rec.record("CreateInstance")
	a.instanceInfo = info

	if a.failInstance {
		return nil, errInjected
	}

	return &fakeInstance{api: a}, nil
}

type fakeInstance struct {
	api *fakeAPI
}

func (i *fakeInstance) CreateDebugMessenger(info DebugMessengerCreateInfo) (DebugMessenger, error) {
	i.api.rec.record("CreateDebugMessenger")
	i.api.messengerInfo = info

	if i.api.failMessenger {
		return nil, errInjected
	}

	return &fakeDestroyable{rec: i.api.rec, name: "DestroyDebugMessenger"}, nil
}

func (i *fakeInstance) CreateSurface(window Window) (Surface, error) {
	i.api.rec.record("CreateSurface")

	if i.api.failSurface {
		return nil, errInjected
	}

	return &fakeDestroyable{rec: i.api.rec, name: "DestroySurface"}, nil
}

func (i *fakeInstance) EnumeratePhysicalDevices() ([]PhysicalDevice, error) {
	i.api.rec.record("EnumeratePhysicalDevices")

	if i.api.failEnumerate {
		return nil, errInjected
	}

	var devices []PhysicalDevice
	for idx, families := range i.api.families {
		devices = append(devices, &fakePhysicalDevice{api: i.api, index: idx, families: families})
	}

	return devices, nil
}

func (i *fakeInstance) Destroy() {
	i.api.rec.record("DestroyInstance")
}

type fakeDestroyable struct {
	rec  *recorder
	name string
}

func (f *fakeDestroyable) Destroy() {
	f.rec.record("%s", f.name)
}

type fakePhysicalDevice struct {
	api      *fakeAPI
	index    int
	families []QueueFamily
}

func (p *fakePhysicalDevice) QueueFamilies() []QueueFamily {
	p.api.rec.record("QueueFamilies(%d)", p.index)
	return p.families
}

func (p *fakePhysicalDevice) CreateDevice(info DeviceCreateInfo) (Device, error) {
	p.api.rec.record("CreateDevice(%d)", p.index)
	p.api.deviceInfo = info

	if p.api.failDevice {
		return nil, errInjected
	}

	return &fakeDevice{rec: p.api.rec}, nil
}

type fakeDevice struct {
	rec *recorder
}

func (d *fakeDevice) Queue(queueFamilyIndex, queueIndex int) Queue {
	d.rec.record("Queue(%d, %d)", queueFamilyIndex, queueIndex)
	return fakeQueue(queueFamilyIndex)
}

func (d *fakeDevice) Destroy() {
	d.rec.record("DestroyDevice")
}

type fakeQueue int

func (q fakeQueue) FamilyIndex() int {
	return int(q)
}

type fakeWindow struct {
	extensions    []string
	width, height uint32
	err           error
}

func (w *fakeWindow) RequiredInstanceExtensions() ([]string, error) {
	return w.extensions, w.err
}

func (w *fakeWindow) GetSize() (uint32, uint32) {
	return w.width, w.height
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{
		extensions: []string{"VK_KHR_surface", "VK_KHR_xcb_surface"},
		width:      1280,
		height:     720,
	}
}

func graphicsFamilies() []QueueFamily {
	return []QueueFamily{
		{Capabilities: QueueGraphics | QueueCompute | QueueTransfer, QueueCount: 16},
		{Capabilities: QueueTransfer, QueueCount: 2},
	}
}
