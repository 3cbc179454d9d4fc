package orion

import (
	"errors"
	"sync"
	"testing"
	"unsafe"

	"github.com/oliverbestmann/lulu/glimpse"
	"github.com/oliverbestmann/lulu/pulse"
)

var errInjected = errors.New("injected failure")

// fakeWindow replays a fixed list of events. Running out of events fails the test.
type fakeWindow struct {
	t  *testing.T
	id glimpse.WindowID

	mu     sync.Mutex
	cond   *sync.Cond
	events []glimpse.Event
	waits  int

	// block makes WaitEvent wait for RequestClose instead of failing
	// once all events are consumed
	block         bool
	closeRequests int

	// calls is shared with the fake api to check the teardown order
	calls *[]string
}

func newFakeWindow(t *testing.T, events ...glimpse.Event) *fakeWindow {
	w := &fakeWindow{t: t, id: 1, events: events, calls: &[]string{}}
	w.cond = sync.NewCond(&w.mu)
	return w
}

func (w *fakeWindow) record(call string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	*w.calls = append(*w.calls, call)
}

func (w *fakeWindow) ID() glimpse.WindowID {
	return w.id
}

func (w *fakeWindow) GetSize() (uint32, uint32) {
	return 1280, 720
}

func (w *fakeWindow) RequiredInstanceExtensions() ([]string, error) {
	return []string{"VK_KHR_surface"}, nil
}

func (w *fakeWindow) InstanceProcAddr() unsafe.Pointer {
	return nil
}

func (w *fakeWindow) CreateVulkanSurface(uintptr) (uintptr, error) {
	return 1, nil
}

func (w *fakeWindow) WaitEvent() glimpse.Event {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.waits++

	for len(w.events) == 0 {
		if !w.block {
			w.t.Fatalf("WaitEvent called after all events were consumed")
		}

		w.cond.Wait()
	}

	event := w.events[0]
	w.events = w.events[1:]
	return event
}

func (w *fakeWindow) RequestClose() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.closeRequests++
	w.events = append(w.events, glimpse.Event{Kind: glimpse.EventCloseRequested, Window: w.id})
	w.cond.Signal()
}

func (w *fakeWindow) requestedCloses() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.closeRequests
}

func (w *fakeWindow) Terminate() {
	w.record("Terminate")
}

func (w *fakeWindow) close() glimpse.Event {
	return glimpse.Event{Kind: glimpse.EventCloseRequested, Window: w.id}
}

// fakeAPI hands out handles that only record their destruction.
type fakeAPI struct {
	win *fakeWindow

	noDevices bool
}

func (a *fakeAPI) CreateInstance(pulse.InstanceCreateInfo) (pulse.Instance, error) {
	a.win.record("CreateInstance")
	return &fakeInstance{api: a}, nil
}

type fakeInstance struct {
	api *fakeAPI
}

func (i *fakeInstance) CreateDebugMessenger(pulse.DebugMessengerCreateInfo) (pulse.DebugMessenger, error) {
	return fakeHandle{win: i.api.win, name: "DebugMessenger"}, nil
}

func (i *fakeInstance) CreateSurface(pulse.Window) (pulse.Surface, error) {
	return fakeHandle{win: i.api.win, name: "Surface"}, nil
}

func (i *fakeInstance) EnumeratePhysicalDevices() ([]pulse.PhysicalDevice, error) {
	if i.api.noDevices {
		return nil, nil
	}

	return []pulse.PhysicalDevice{fakePhysicalDevice{win: i.api.win}}, nil
}

func (i *fakeInstance) Destroy() {
	i.api.win.record("DestroyInstance")
}

type fakeHandle struct {
	win  *fakeWindow
	name string
}

func (h fakeHandle) Destroy() {
	h.win.record("Destroy" + h.name)
}

type fakePhysicalDevice struct {
	win *fakeWindow
}

func (p fakePhysicalDevice) QueueFamilies() []pulse.QueueFamily {
	return []pulse.QueueFamily{
		{Capabilities: pulse.QueueGraphics | pulse.QueueTransfer, QueueCount: 1},
	}
}

func (p fakePhysicalDevice) CreateDevice(pulse.DeviceCreateInfo) (pulse.Device, error) {
	return fakeDevice{fakeHandle{win: p.win, name: "Device"}}, nil
}

type fakeDevice struct {
	fakeHandle
}

func (d fakeDevice) Queue(family, _ int) pulse.Queue {
	return fakeQueue(family)
}

type fakeQueue int

func (q fakeQueue) FamilyIndex() int {
	return int(q)
}
