package glimpse

import (
	"errors"
	"fmt"
	"runtime"
	"sync/atomic"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// glfw must be driven from the main thread
	runtime.LockOSThread()
}

var nextWindowID atomic.Uint32

type glfwWindow struct {
	win    *glfw.Window
	id     WindowID
	events *eventQueue
}

func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return nil, errors.New("vulkan loader not found")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	id := WindowID(nextWindowID.Add(1))

	w := &glfwWindow{
		win:    window,
		id:     id,
		events: &eventQueue{window: id},
	}

	configureEvents(window, w.events)

	return w, nil
}

func (g *glfwWindow) ID() WindowID {
	return g.id
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) RequiredInstanceExtensions() ([]string, error) {
	extensions := g.win.GetRequiredInstanceExtensions()
	if len(extensions) == 0 {
		return nil, errors.New("glfw reports no vulkan surface extensions")
	}

	return extensions, nil
}

func (g *glfwWindow) InstanceProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

func (g *glfwWindow) CreateVulkanSurface(instance uintptr) (uintptr, error) {
	// glfw wants the VkInstance as a pointer typed value
	surfacePtr, err := g.win.CreateWindowSurface((*byte)(unsafe.Pointer(instance)), nil)
	if err != nil {
		return 0, err
	}

	// glfw hands back the address of the VkSurfaceKHR, not the handle
	return *(*uintptr)(unsafe.Pointer(surfacePtr)), nil
}

func (g *glfwWindow) WaitEvent() Event {
	for {
		if event, ok := g.events.pop(); ok {
			return event
		}

		// callbacks fill the queue while we wait. Wakeups without
		// any event of interest just wait again.
		glfw.WaitEvents()
	}
}

func (g *glfwWindow) RequestClose() {
	g.events.requestClose()
	glfw.PostEmptyEvent()
}

func (g *glfwWindow) Terminate() {
	g.win.Destroy()
	glfw.Terminate()
}

func configureEvents(window *glfw.Window, events *eventQueue) {
	window.SetCloseCallback(func(_win *glfw.Window) {
		events.push(EventCloseRequested)
	})

	window.SetFramebufferSizeCallback(func(_win *glfw.Window, width int, height int) {
		events.pushResize(width, height)
	})

	window.SetRefreshCallback(func(_win *glfw.Window) {
		events.push(EventRedrawRequested)
	})

	window.SetKeyCallback(func(_win *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		events.push(EventOther)
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		events.push(EventOther)
	})

	window.SetFocusCallback(func(_win *glfw.Window, focused bool) {
		events.push(EventOther)
	})

	window.SetIconifyCallback(func(_win *glfw.Window, iconified bool) {
		events.push(EventOther)
	})
}
