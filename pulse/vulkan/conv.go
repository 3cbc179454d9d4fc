package vulkan

import (
	"github.com/oliverbestmann/lulu/pulse"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
)

func apiVersion(version pulse.Version) common.APIVersion {
	return common.APIVersion(version)
}

var queueFlagTags = []struct {
	flag core1_0.QueueFlags
	tag  pulse.QueueCapabilities
}{
	{core1_0.QueueGraphics, pulse.QueueGraphics},
	{core1_0.QueueCompute, pulse.QueueCompute},
	{core1_0.QueueTransfer, pulse.QueueTransfer},
	{core1_0.QueueSparseBinding, pulse.QueueSparseBinding},
}

func queueCapabilities(flags core1_0.QueueFlags) pulse.QueueCapabilities {
	var caps pulse.QueueCapabilities
	for _, t := range queueFlagTags {
		if flags&t.flag != 0 {
			caps |= t.tag
		}
	}

	return caps
}

var severityFlagTags = []struct {
	flag ext_debug_utils.DebugUtilsMessageSeverityFlags
	tag  pulse.MessageSeverity
}{
	{ext_debug_utils.SeverityVerbose, pulse.SeverityVerbose},
	{ext_debug_utils.SeverityInfo, pulse.SeverityInfo},
	{ext_debug_utils.SeverityWarning, pulse.SeverityWarning},
	{ext_debug_utils.SeverityError, pulse.SeverityError},
}

func severityFlags(severity pulse.MessageSeverity) ext_debug_utils.DebugUtilsMessageSeverityFlags {
	var flags ext_debug_utils.DebugUtilsMessageSeverityFlags
	for _, t := range severityFlagTags {
		if severity.Has(t.tag) {
			flags |= t.flag
		}
	}

	return flags
}

func messageSeverity(flags ext_debug_utils.DebugUtilsMessageSeverityFlags) pulse.MessageSeverity {
	var severity pulse.MessageSeverity
	for _, t := range severityFlagTags {
		if flags&t.flag != 0 {
			severity |= t.tag
		}
	}

	return severity
}

var typeFlagTags = []struct {
	flag ext_debug_utils.DebugUtilsMessageTypeFlags
	tag  pulse.MessageType
}{
	{ext_debug_utils.TypeGeneral, pulse.TypeGeneral},
	{ext_debug_utils.TypeValidation, pulse.TypeValidation},
	{ext_debug_utils.TypePerformance, pulse.TypePerformance},
}

func typeFlags(types pulse.MessageType) ext_debug_utils.DebugUtilsMessageTypeFlags {
	var flags ext_debug_utils.DebugUtilsMessageTypeFlags
	for _, t := range typeFlagTags {
		if types.Has(t.tag) {
			flags |= t.flag
		}
	}

	return flags
}

func messageType(flags ext_debug_utils.DebugUtilsMessageTypeFlags) pulse.MessageType {
	var types pulse.MessageType
	for _, t := range typeFlagTags {
		if flags&t.flag != 0 {
			types |= t.tag
		}
	}

	return types
}
