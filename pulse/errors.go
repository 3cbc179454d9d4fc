package pulse

import "errors"

var (
	ErrNoPhysicalDevice      = errors.New("no physical device")
	ErrNoGraphicsQueueFamily = errors.New("no graphics-capable queue family")
)
