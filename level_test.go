package osm2walk

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestLevelSorting(t *testing.T) {
	// An elevator stopping at floors 0, 2, 3 and 5: skipped floors must keep
	// their original identifiers and end up in ascending order
	vertices := map[Level]VertexID{
		{Index: 5, Name: "5"}: 4,
		{Index: 0, Name: "0"}: 1,
		{Index: 3, Name: "3"}: 3,
		{Index: 2, Name: "2"}: 2,
	}
	sorted := sortedLevels(vertices)
	if len(sorted) != 4 {
		t.Errorf("Sorted levels count must be %d, but got %d", 4, len(sorted))
	}
	expectedNames := []string{"0", "2", "3", "5"}
	expectedVertices := []VertexID{1, 2, 3, 4}
	for i := range sorted {
		if sorted[i].level.Name != expectedNames[i] {
			t.Errorf("Level at position %d must be '%s', but got '%s'", i, expectedNames[i], sorted[i].level.Name)
		}
		if sorted[i].vertex != expectedVertices[i] {
			t.Errorf("Vertex at position %d must be %d, but got %d", i, expectedVertices[i], sorted[i].vertex)
		}
	}
}

func TestParseLevel(t *testing.T) {
	issues := NewIssueStore()

	level := parseLevel(osm.Tags{{Key: "level", Value: "2"}}, 1, issues)
	if level.Index != 2.0 || level.Name != "2" {
		t.Errorf("Level must be {2, '2'}, but got {%g, '%s'}", level.Index, level.Name)
	}

	level = parseLevel(osm.Tags{{Key: "level", Value: "-1.5"}}, 2, issues)
	if level.Index != -1.5 {
		t.Errorf("Level index must be %g, but got %g", -1.5, level.Index)
	}

	// Multi-value lists designate the lowest stop
	level = parseLevel(osm.Tags{{Key: "level", Value: "0;1"}}, 3, issues)
	if level.Index != 0.0 || level.Name != "0" {
		t.Errorf("Level must be {0, '0'}, but got {%g, '%s'}", level.Index, level.Name)
	}

	if len(issues.Issues()) != 0 {
		t.Errorf("Parseable levels must not report issues, but got %d", len(issues.Issues()))
	}
}

func TestParseLevelAltitudeFallback(t *testing.T) {
	issues := NewIssueStore()
	level := parseLevel(osm.Tags{{Key: "level", Value: "G"}, {Key: "ele", Value: "6"}}, 42, issues)
	if level.Index != 2.0 {
		t.Errorf("Guessed level index must be %g, but got %g", 2.0, level.Index)
	}
	if len(issues.Issues()) != 1 {
		t.Errorf("Altitude guess must report exactly one issue, but got %d", len(issues.Issues()))
	}
	if issues.Issues()[0].Code != "FloorNumberUnknownGuessedFromAltitude" {
		t.Errorf("Issue code must be '%s', but got '%s'", "FloorNumberUnknownGuessedFromAltitude", issues.Issues()[0].Code)
	}
	if issues.Issues()[0].FeatureID != 42 {
		t.Errorf("Issue feature ID must be %d, but got %d", 42, issues.Issues()[0].FeatureID)
	}
}

func TestParseLevelDefault(t *testing.T) {
	issues := NewIssueStore()
	level := parseLevel(osm.Tags{}, 7, issues)
	if level != defaultLevel {
		t.Errorf("Level must be the default level, but got {%g, '%s'}", level.Index, level.Name)
	}
	if len(issues.Issues()) != 0 {
		t.Errorf("Missing level tags must not report issues, but got %d", len(issues.Issues()))
	}
}
