package pulse

import (
	"fmt"
	"strings"
)

// QueueCapabilities is the set of operations a queue family supports.
type QueueCapabilities uint32

const (
	QueueGraphics QueueCapabilities = 1 << iota
	QueueCompute
	QueueTransfer
	QueueSparseBinding
)

var queueCapabilityNames = []tagName[QueueCapabilities]{
	{QueueGraphics, "graphics"},
	{QueueCompute, "compute"},
	{QueueTransfer, "transfer"},
	{QueueSparseBinding, "sparse_binding"},
}

func (c QueueCapabilities) Has(tag QueueCapabilities) bool {
	return tag != 0 && c&tag == tag
}

func (c QueueCapabilities) String() string {
	return formatTags(c, queueCapabilityNames)
}

type MessageSeverity uint32

const (
	SeverityVerbose MessageSeverity = 1 << iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

var messageSeverityNames = []tagName[MessageSeverity]{
	{SeverityVerbose, "verbose"},
	{SeverityInfo, "info"},
	{SeverityWarning, "warning"},
	{SeverityError, "error"},
}

func (s MessageSeverity) Has(tag MessageSeverity) bool {
	return tag != 0 && s&tag == tag
}

func (s MessageSeverity) String() string {
	return formatTags(s, messageSeverityNames)
}

type MessageType uint32

const (
	TypeGeneral MessageType = 1 << iota
	TypeValidation
	TypePerformance
)

var messageTypeNames = []tagName[MessageType]{
	{TypeGeneral, "general"},
	{TypeValidation, "validation"},
	{TypePerformance, "performance"},
}

func (t MessageType) Has(tag MessageType) bool {
	return tag != 0 && t&tag == tag
}

func (t MessageType) String() string {
	return formatTags(t, messageTypeNames)
}

type tagName[T ~uint32] struct {
	tag  T
	name string
}

// formatTags joins the names of all tags in value with '|'.
// Bits without a name are appended as a single hex value.
func formatTags[T ~uint32](value T, names []tagName[T]) string {
	if value == 0 {
		return "none"
	}

	var parts []string
	rest := value

	for _, n := range names {
		if value&n.tag == n.tag {
			parts = append(parts, n.name)
			rest &^= n.tag
		}
	}

	if rest != 0 {
		parts = append(parts, fmt.Sprintf("0x%x", uint32(rest)))
	}

	return strings.Join(parts, "|")
}
