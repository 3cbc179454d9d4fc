package vulkan

import (
	"github.com/oliverbestmann/lulu/pulse"
	"github.com/pkg/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

type physicalDevice struct {
	instance core1_0.CoreInstanceDriver
	handle   core1_0.PhysicalDevice
}

func (p *physicalDevice) QueueFamilies() []pulse.QueueFamily {
	props := p.instance.GetPhysicalDeviceQueueFamilyProperties(p.handle)

	families := make([]pulse.QueueFamily, 0, len(props))
	for _, family := range props {
		families = append(families, pulse.QueueFamily{
			Capabilities: queueCapabilities(family.QueueFlags),
			QueueCount:   int(family.QueueCount),
		})
	}

	return families
}

func (p *physicalDevice) CreateDevice(info pulse.DeviceCreateInfo) (pulse.Device, error) {
	queueInfos := make([]core1_0.DeviceQueueCreateInfo, 0, len(info.QueueCreateInfos))
	for _, queueInfo := range info.QueueCreateInfos {
		queueInfos = append(queueInfos, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueInfo.QueueFamilyIndex,
			QueuePriorities:  queueInfo.QueuePriorities,
		})
	}

	handle, _, err := p.instance.CreateDevice(p.handle, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: queueInfos,
	})
	if err != nil {
		return nil, errors.Wrap(err, "vkCreateDevice")
	}

	deviceDriver, err := p.instance.BuildDeviceDriver(handle)
	if err != nil {
		return nil, errors.Wrap(err, "load device functions")
	}

	return &device{driver: deviceDriver}, nil
}

type device struct {
	driver core1_0.CoreDeviceDriver
}

func (d *device) Queue(queueFamilyIndex, queueIndex int) pulse.Queue {
	return &queue{
		handle: d.driver.GetQueue(queueFamilyIndex, queueIndex),
		family: queueFamilyIndex,
	}
}

func (d *device) Destroy() {
	d.driver.DestroyDevice(nil)
}

type queue struct {
	handle core1_0.Queue
	family int
}

func (q *queue) FamilyIndex() int {
	return q.family
}
