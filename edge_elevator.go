package osm2walk

const (
	// Waiting for the car is paid once, on boarding
	elevatorBoardSeconds = 90.0
	// Per-hop cost when the elevator carries no usable `duration` tag
	elevatorDefaultHopSeconds = 20.0
)

// FreeEdge is a zero-cost, always-traversable edge. A pair of them keeps an
// offboard vertex reachable from its attachment junction in both directions.
type FreeEdge struct {
	baseEdge
}

func newFreeEdge(graph *StreetGraph, from, to VertexID) *FreeEdge {
	edge := &FreeEdge{
		baseEdge: baseEdge{id: graph.nextEdgeID(), from: from, to: to},
	}
	graph.addEdge(edge)
	return edge
}

func (edge *FreeEdge) Kind() EdgeKind {
	return EDGE_FREE
}

func (edge *FreeEdge) Traverse(state TraversalState) (TraversalState, bool) {
	return state.advance(edge.to, 0), true
}

func (edge *FreeEdge) MultiTraverse(state TraversalState) []TraversalState {
	return singleTraversal(edge, state)
}

// ElevatorBoardEdge moves a state from an offboard vertex into the car
type ElevatorBoardEdge struct {
	baseEdge
}

func newElevatorBoardEdge(graph *StreetGraph, from, to VertexID) *ElevatorBoardEdge {
	edge := &ElevatorBoardEdge{
		baseEdge: baseEdge{id: graph.nextEdgeID(), from: from, to: to},
	}
	graph.addEdge(edge)
	return edge
}

func (edge *ElevatorBoardEdge) Kind() EdgeKind {
	return EDGE_ELEVATOR_BOARD
}

func (edge *ElevatorBoardEdge) Traverse(state TraversalState) (TraversalState, bool) {
	return state.advance(edge.to, elevatorBoardSeconds), true
}

func (edge *ElevatorBoardEdge) MultiTraverse(state TraversalState) []TraversalState {
	return singleTraversal(edge, state)
}

// ElevatorAlightEdge moves a state out of the car back to the offboard vertex
// of the same level. It carries the level name for itinerary descriptions.
type ElevatorAlightEdge struct {
	baseEdge
	levelName string
}

func newElevatorAlightEdge(graph *StreetGraph, from, to VertexID, levelName string) *ElevatorAlightEdge {
	edge := &ElevatorAlightEdge{
		baseEdge:  baseEdge{id: graph.nextEdgeID(), from: from, to: to},
		levelName: levelName,
	}
	graph.addEdge(edge)
	return edge
}

func (edge *ElevatorAlightEdge) Kind() EdgeKind {
	return EDGE_ELEVATOR_ALIGHT
}

func (edge *ElevatorAlightEdge) LevelName() string {
	return edge.levelName
}

func (edge *ElevatorAlightEdge) Traverse(state TraversalState) (TraversalState, bool) {
	return state.advance(edge.to, 0), true
}

func (edge *ElevatorAlightEdge) MultiTraverse(state TraversalState) []TraversalState {
	return singleTraversal(edge, state)
}

// ElevatorHopEdge connects the onboard vertices of two adjacent levels.
// travelTimeSeconds is -1 when the source feature carried no usable duration;
// the edge then falls back to a fixed per-hop cost.
type ElevatorHopEdge struct {
	baseEdge
	allowedAgentTypes []AgentType
	accessibility     Accessibility
	levels            int
	travelTimeSeconds int
}

func newElevatorHopEdge(graph *StreetGraph, from, to VertexID, allowedAgentTypes []AgentType, accessibility Accessibility, levels int, travelTimeSeconds int) *ElevatorHopEdge {
	edge := &ElevatorHopEdge{
		baseEdge:          baseEdge{id: graph.nextEdgeID(), from: from, to: to},
		allowedAgentTypes: allowedAgentTypes,
		accessibility:     accessibility,
		levels:            levels,
		travelTimeSeconds: travelTimeSeconds,
	}
	graph.addEdge(edge)
	return edge
}

// newElevatorHopEdgesBidirectional registers the up and down hop between two
// adjacent onboard vertices
func newElevatorHopEdgesBidirectional(graph *StreetGraph, from, to VertexID, allowedAgentTypes []AgentType, accessibility Accessibility, levels int, travelTimeSeconds int) (*ElevatorHopEdge, *ElevatorHopEdge) {
	up := newElevatorHopEdge(graph, from, to, allowedAgentTypes, accessibility, levels, travelTimeSeconds)
	down := newElevatorHopEdge(graph, to, from, allowedAgentTypes, accessibility, levels, travelTimeSeconds)
	return up, down
}

func (edge *ElevatorHopEdge) Kind() EdgeKind {
	return EDGE_ELEVATOR_HOP
}

func (edge *ElevatorHopEdge) AllowedAgentTypes() []AgentType {
	return edge.allowedAgentTypes
}

func (edge *ElevatorHopEdge) Accessibility() Accessibility {
	return edge.accessibility
}

func (edge *ElevatorHopEdge) agentAllowed(agent AgentType) bool {
	for _, allowed := range edge.allowedAgentTypes {
		if allowed == agent {
			return true
		}
	}
	return false
}

func (edge *ElevatorHopEdge) hopSeconds() float64 {
	if edge.travelTimeSeconds > -1 && edge.levels > 0 {
		return float64(edge.travelTimeSeconds) / float64(edge.levels)
	}
	return elevatorDefaultHopSeconds
}

func (edge *ElevatorHopEdge) Traverse(state TraversalState) (TraversalState, bool) {
	if !edge.agentAllowed(state.Agent) {
		return TraversalState{}, false
	}
	if state.RequireAccessible && edge.accessibility == ACCESSIBILITY_NOT_POSSIBLE {
		return TraversalState{}, false
	}
	return state.advance(edge.to, edge.hopSeconds()), true
}

func (edge *ElevatorHopEdge) MultiTraverse(state TraversalState) []TraversalState {
	return singleTraversal(edge, state)
}
