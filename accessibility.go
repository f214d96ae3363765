package osm2walk

import (
	"github.com/paulmach/osm"
)

type Accessibility uint16

const (
	ACCESSIBILITY_NO_INFORMATION = Accessibility(iota + 1)
	ACCESSIBILITY_POSSIBLE
	ACCESSIBILITY_NOT_POSSIBLE
)

func (iotaIdx Accessibility) String() string {
	return [...]string{"no_information", "possible", "not_possible"}[iotaIdx-1]
}

// accessibilityFromTags interprets the `wheelchair` tag of an OSM element
func accessibilityFromTags(tags osm.Tags) Accessibility {
	switch tags.Find("wheelchair") {
	case "yes", "designated", "limited":
		return ACCESSIBILITY_POSSIBLE
	case "no":
		return ACCESSIBILITY_NOT_POSSIBLE
	default:
		return ACCESSIBILITY_NO_INFORMATION
	}
}

// isTagTrue reports whether a tag value is explicitly truthy
func isTagTrue(value string) bool {
	return value == "yes" || value == "true" || value == "1"
}
