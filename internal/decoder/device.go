package decoder

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DeviceType selects the decoder flags for a device family.
type DeviceType string

const (
	DeviceJedi DeviceType = "jedi"
	DeviceJolt DeviceType = "jolt"
)

// ErrUnknownDevice reports a device type outside the supported families.
var ErrUnknownDevice = errors.New("unknown device type")

// DeviceTypes lists the accepted device types in prompt order.
func DeviceTypes() []DeviceType {
	return []DeviceType{DeviceJedi, DeviceJolt}
}

// ParseDeviceType accepts the device names case-insensitively, ignoring
// surrounding whitespace.
func ParseDeviceType(value string) (DeviceType, error) {
	normalized := cases.Lower(language.Und).String(strings.TrimSpace(value))
	for _, device := range DeviceTypes() {
		if normalized == string(device) {
			return device, nil
		}
	}
	return "", fmt.Errorf("%w %q (expected %s)", ErrUnknownDevice, value, deviceChoices())
}

func (d DeviceType) String() string {
	return string(d)
}

func deviceChoices() string {
	names := make([]string, 0, len(DeviceTypes()))
	for _, device := range DeviceTypes() {
		names = append(names, string(device))
	}
	return strings.Join(names, "/")
}

// PromptChoices renders the accepted device names for prompts, e.g. "jedi/jolt".
func PromptChoices() string {
	return deviceChoices()
}
