package osm2walk

// TraversalState is the immutable state carried by a path search across edges.
// Edges never mutate an incoming state; they return an advanced copy.
type TraversalState struct {
	Vertex            VertexID
	Agent             AgentType
	RequireAccessible bool
	DurationSeconds   float64
	Weight            float64
}

func (state TraversalState) advance(to VertexID, seconds float64) TraversalState {
	state.Vertex = to
	state.DurationSeconds += seconds
	state.Weight += seconds
	return state
}

// TraversalEdge is the single-step traversal contract implemented by every
// edge of the street graph. An empty MultiTraverse result means "not
// traversable under this state" and is a normal outcome, not a failure.
type TraversalEdge interface {
	ID() EdgeID
	From() VertexID
	To() VertexID
	Kind() EdgeKind
	MultiTraverse(state TraversalState) []TraversalState
}

// singleStateEdge is the common case: at most one successor state
type singleStateEdge interface {
	Traverse(state TraversalState) (TraversalState, bool)
}

func singleTraversal(edge singleStateEdge, state TraversalState) []TraversalState {
	next, ok := edge.Traverse(state)
	if !ok {
		return nil
	}
	return []TraversalState{next}
}
