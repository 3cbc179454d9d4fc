// Package vulkan implements the pulse driver interfaces on top of vkngwrapper.
package vulkan

import (
	"unsafe"

	"github.com/oliverbestmann/lulu/pulse"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// API implements pulse.API.
type API struct {
	global core1_0.GlobalDriver
}

var _ pulse.API = (*API)(nil)

// Load creates the global driver from the vkGetInstanceProcAddr
// provided by the window system.
func Load(procAddr unsafe.Pointer) (*API, error) {
	if procAddr == nil {
		return nil, errors.New("vkGetInstanceProcAddr is not available")
	}

	global, err := core.CreateDriverFromProcAddr(procAddr)
	if err != nil {
		return nil, errors.Wrap(err, "load vulkan driver")
	}

	return &API{global: global}, nil
}

func (a *API) CreateInstance(info pulse.InstanceCreateInfo) (pulse.Instance, error) {
	if err := a.checkAvailable(info); err != nil {
		return nil, err
	}

	handle, _, err := a.global.CreateInstance(nil, core1_0.InstanceCreateInfo{
		ApplicationName:       info.ApplicationName,
		ApplicationVersion:    common.CreateVersion(1, 0, 0),
		APIVersion:            apiVersion(info.APIVersion),
		EnabledExtensionNames: info.EnabledExtensionNames,
		EnabledLayerNames:     info.EnabledLayerNames,
	})
	if err != nil {
		return nil, errors.Wrap(err, "vkCreateInstance")
	}

	instanceDriver, err := a.global.BuildInstanceDriver(handle)
	if err != nil {
		// without an instance driver there is no vkDestroyInstance to call
		return nil, errors.Wrap(err, "load instance functions")
	}

	return &instance{driver: instanceDriver}, nil
}

// checkAvailable reports the first requested layer or extension the
// loader does not know about. vkCreateInstance would fail anyways, but
// without naming the culprit.
func (a *API) checkAvailable(info pulse.InstanceCreateInfo) error {
	layers, _, err := a.global.AvailableLayers()
	if err != nil {
		return errors.Wrap(err, "enumerate instance layers")
	}

	for _, layer := range info.EnabledLayerNames {
		if _, ok := layers[layer]; !ok {
			return errors.Errorf("layer %s not available, install the Vulkan SDK", layer)
		}
	}

	extensions, _, err := a.global.AvailableExtensions()
	if err != nil {
		return errors.Wrap(err, "enumerate instance extensions")
	}

	for _, ext := range info.EnabledExtensionNames {
		if _, ok := extensions[ext]; !ok {
			return errors.Errorf("extension %s not available", ext)
		}
	}

	return nil
}
