package osm2walk

import (
	"testing"

	"github.com/paulmach/osm"
)

func TestWayAgentFilters(t *testing.T) {
	footway := &WayData{
		ID:     1,
		TagMap: osm.Tags{{Key: "highway", Value: "footway"}},
	}
	footway.flattenTags()
	allowed := footway.getAllowableAgentTypes([]AgentType{AGENT_WALK, AGENT_BIKE})
	if len(allowed) != 1 || allowed[0] != AGENT_WALK {
		t.Errorf("Footway must be walk-only, but got %v", allowed)
	}

	cycleFootway := &WayData{
		ID:     2,
		TagMap: osm.Tags{{Key: "highway", Value: "footway"}, {Key: "bicycle", Value: "yes"}},
	}
	cycleFootway.flattenTags()
	allowed = cycleFootway.getAllowableAgentTypes([]AgentType{AGENT_WALK, AGENT_BIKE})
	if len(allowed) != 2 {
		t.Errorf("Footway with bicycle=yes must allow both agents, but got %v", allowed)
	}

	residential := &WayData{
		ID:     3,
		TagMap: osm.Tags{{Key: "highway", Value: "residential"}},
	}
	residential.flattenTags()
	allowed = residential.getAllowableAgentTypes([]AgentType{AGENT_WALK, AGENT_BIKE})
	if len(allowed) != 2 {
		t.Errorf("Residential way must allow both agents, but got %v", allowed)
	}

	closedFootpath := &WayData{
		ID:     4,
		TagMap: osm.Tags{{Key: "highway", Value: "residential"}, {Key: "foot", Value: "no"}},
	}
	closedFootpath.flattenTags()
	allowed = closedFootpath.getAllowableAgentTypes([]AgentType{AGENT_WALK})
	if len(allowed) != 0 {
		t.Errorf("Way with foot=no must not be walkable, but got %v", allowed)
	}

	motorway := &WayData{
		ID:     5,
		TagMap: osm.Tags{{Key: "highway", Value: "motorway"}},
	}
	motorway.flattenTags()
	allowed = motorway.getAllowableAgentTypes([]AgentType{AGENT_WALK, AGENT_BIKE})
	if len(allowed) != 0 {
		t.Errorf("Motorway must not be walkable at all, but got %v", allowed)
	}
}

func TestClosedRingDetection(t *testing.T) {
	ring := &WayData{Nodes: []osm.NodeID{1, 2, 3, 1}}
	if !ring.isClosedRing() {
		t.Errorf("Way with identical first and last node must be a closed ring")
	}
	open := &WayData{Nodes: []osm.NodeID{1, 2, 3}}
	if open.isClosedRing() {
		t.Errorf("Open way must not be a closed ring")
	}
}
