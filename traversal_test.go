package osm2walk

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

func TestFreeEdgeTraversal(t *testing.T) {
	graph := NewStreetGraph()
	from := graph.addVertex(VERTEX_JUNCTION, "osm_node_1/default", "default", 1, orb.Point{37.61, 55.75})
	to := graph.addVertex(VERTEX_OFFBOARD, "osm_node_1/default_offboard", "default", 1, orb.Point{37.61, 55.75})
	edge := newFreeEdge(graph, from.ID, to.ID)

	states := edge.MultiTraverse(TraversalState{Vertex: from.ID, Agent: AGENT_WALK})
	if len(states) != 1 {
		t.Errorf("Free edge must produce exactly one state, but got %d", len(states))
		return
	}
	if states[0].Vertex != to.ID {
		t.Errorf("Resulting vertex must be %d, but got %d", to.ID, states[0].Vertex)
	}
	if states[0].Weight != 0 {
		t.Errorf("Free edge weight must be %f, but got %f", 0.0, states[0].Weight)
	}
}

func TestBoardAndAlightTraversal(t *testing.T) {
	graph := NewStreetGraph()
	offboard := graph.addVertex(VERTEX_OFFBOARD, "osm_node_1/2_offboard", "2", 1, orb.Point{37.61, 55.75})
	onboard := graph.addVertex(VERTEX_ONBOARD, "osm_node_1/2_onboard", "2", 1, orb.Point{37.61, 55.75})
	board := newElevatorBoardEdge(graph, offboard.ID, onboard.ID)
	alight := newElevatorAlightEdge(graph, onboard.ID, offboard.ID, "2")

	states := board.MultiTraverse(TraversalState{Vertex: offboard.ID, Agent: AGENT_WALK})
	if len(states) != 1 {
		t.Errorf("Board edge must produce exactly one state, but got %d", len(states))
		return
	}
	if states[0].Weight != elevatorBoardSeconds {
		t.Errorf("Board edge weight must be %f, but got %f", elevatorBoardSeconds, states[0].Weight)
	}

	states = alight.MultiTraverse(TraversalState{Vertex: onboard.ID, Agent: AGENT_WALK})
	if len(states) != 1 {
		t.Errorf("Alight edge must produce exactly one state, but got %d", len(states))
	}
	if alight.LevelName() != "2" {
		t.Errorf("Alight edge level name must be '%s', but got '%s'", "2", alight.LevelName())
	}
}

func TestStreetEdgePermission(t *testing.T) {
	graph := NewStreetGraph()
	from := graph.addVertex(VERTEX_JUNCTION, "osm_node_1/default", "default", 1, orb.Point{37.61, 55.75})
	to := graph.addVertex(VERTEX_JUNCTION, "osm_node_2/default", "default", 2, orb.Point{37.62, 55.76})
	edge := newStreetEdge(graph, from.ID, to.ID, osm.WayID(50), orb.LineString{from.Geom(), to.Geom()}, 140.0, map[AgentType]float64{AGENT_WALK: 100.0})

	states := edge.MultiTraverse(TraversalState{Vertex: from.ID, Agent: AGENT_WALK})
	if len(states) != 1 {
		t.Errorf("Walk-only street edge must be traversable by pedestrian, got %d states", len(states))
		return
	}
	if states[0].Weight != 100.0 {
		t.Errorf("Street edge weight must be %f, but got %f", 100.0, states[0].Weight)
	}

	states = edge.MultiTraverse(TraversalState{Vertex: from.ID, Agent: AGENT_BIKE})
	if len(states) != 0 {
		t.Errorf("Walk-only street edge must not be traversable by bike, got %d states", len(states))
	}
}

func TestHopEdgeAccessibility(t *testing.T) {
	graph := NewStreetGraph()
	lower := graph.addVertex(VERTEX_ONBOARD, "osm_node_1/0_onboard", "0", 1, orb.Point{37.61, 55.75})
	upper := graph.addVertex(VERTEX_ONBOARD, "osm_node_1/1_onboard", "1", 1, orb.Point{37.61, 55.75})

	inaccessible := newElevatorHopEdge(graph, lower.ID, upper.ID, []AgentType{AGENT_WALK}, ACCESSIBILITY_NOT_POSSIBLE, 0, -1)
	states := inaccessible.MultiTraverse(TraversalState{Vertex: lower.ID, Agent: AGENT_WALK, RequireAccessible: true})
	if len(states) != 0 {
		t.Errorf("Inaccessible hop edge must not be traversable by a wheelchair state, got %d states", len(states))
	}
	states = inaccessible.MultiTraverse(TraversalState{Vertex: lower.ID, Agent: AGENT_WALK})
	if len(states) != 1 {
		t.Errorf("Inaccessible hop edge must stay traversable without the wheelchair requirement, got %d states", len(states))
	}

	accessible := newElevatorHopEdge(graph, lower.ID, upper.ID, []AgentType{AGENT_WALK}, ACCESSIBILITY_POSSIBLE, 0, -1)
	states = accessible.MultiTraverse(TraversalState{Vertex: lower.ID, Agent: AGENT_WALK, RequireAccessible: true})
	if len(states) != 1 {
		t.Errorf("Accessible hop edge must be traversable by a wheelchair state, got %d states", len(states))
	}
}

func TestStateAccumulation(t *testing.T) {
	graph := NewStreetGraph()
	junction := graph.addVertex(VERTEX_JUNCTION, "osm_node_1/0", "0", 1, orb.Point{37.61, 55.75})
	offboard := graph.addVertex(VERTEX_OFFBOARD, "osm_node_1/0_offboard", "0", 1, orb.Point{37.61, 55.75})
	onboard := graph.addVertex(VERTEX_ONBOARD, "osm_node_1/0_onboard", "0", 1, orb.Point{37.61, 55.75})
	free := newFreeEdge(graph, junction.ID, offboard.ID)
	board := newElevatorBoardEdge(graph, offboard.ID, onboard.ID)

	state := TraversalState{Vertex: junction.ID, Agent: AGENT_WALK}
	states := free.MultiTraverse(state)
	if len(states) != 1 {
		t.Errorf("Free edge must produce exactly one state, but got %d", len(states))
	}
	states = board.MultiTraverse(states[0])
	if len(states) != 1 {
		t.Errorf("Board edge must produce exactly one state, but got %d", len(states))
		return
	}
	if states[0].DurationSeconds != elevatorBoardSeconds {
		t.Errorf("Accumulated duration must be %f, but got %f", elevatorBoardSeconds, states[0].DurationSeconds)
	}
	if state.DurationSeconds != 0 {
		t.Errorf("Incoming state must stay unchanged, but duration is %f", state.DurationSeconds)
	}
}
