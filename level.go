package osm2walk

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
)

// Average floor height used when a floor number has to be guessed from altitude
const metersPerFloor = 3.0

// Level is a "floor" designator attached to an elevator stop or a levelled way.
// Levels are totally ordered by Index; the index either comes from the `level`
// tag directly or is derived from the `ele` altitude tag.
type Level struct {
	Index float64
	Name  string
}

var defaultLevel = Level{Index: 0.0, Name: "default"}

func (level Level) less(other Level) bool {
	if level.Index != other.Index {
		return level.Index < other.Index
	}
	return level.Name < other.Name
}

// parseLevel extracts the level of an OSM element from its tags.
// Unparseable `level` values fall back to an altitude guess (reported as an
// issue) and finally to the default ground level. Never fails.
func parseLevel(tags osm.Tags, featureID int64, sink IssueSink) Level {
	raw := tags.Find("level")
	if raw != "" {
		// Multi-value lists such as '0;1' designate the lowest stop of the feature
		value := raw
		if idx := strings.Index(raw, ";"); idx != -1 {
			value = raw[:idx]
		}
		value = strings.TrimSpace(value)
		index, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return Level{Index: index, Name: value}
		}
	}
	elevation := tags.Find("ele")
	if elevation != "" {
		altitude, err := strconv.ParseFloat(elevation, 64)
		if err == nil {
			index := altitude / metersPerFloor
			sink.Report(
				"FloorNumberUnknownGuessedFromAltitude",
				fmt.Sprintf("Floor number of osm feature %d is unknown; guessed '%g' from altitude %g", featureID, index, altitude),
				featureID,
			)
			return Level{Index: index, Name: fmt.Sprintf("%g", index)}
		}
	}
	return defaultLevel
}

type levelVertex struct {
	level  Level
	vertex VertexID
}

// sortedLevels orders per-level attachment vertices of one elevator ascending
// by level. Levels may skip values (e.g. 0, 2, 3, 5) and are never reindexed.
func sortedLevels(vertices map[Level]VertexID) []levelVertex {
	out := make([]levelVertex, 0, len(vertices))
	for level, vertex := range vertices {
		out = append(out, levelVertex{level: level, vertex: vertex})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].level.less(out[j].level)
	})
	return out
}
