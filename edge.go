package osm2walk

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type EdgeID int64

type EdgeKind uint16

const (
	EDGE_STREET = EdgeKind(iota + 1)
	EDGE_FREE
	EDGE_ELEVATOR_BOARD
	EDGE_ELEVATOR_ALIGHT
	EDGE_ELEVATOR_HOP
)

func (iotaIdx EdgeKind) String() string {
	return [...]string{"street", "free", "elevator_board", "elevator_alight", "elevator_hop"}[iotaIdx-1]
}

// baseEdge carries the identity shared by every edge variant
type baseEdge struct {
	id   EdgeID
	from VertexID
	to   VertexID
}

func (edge baseEdge) ID() EdgeID {
	return edge.id
}

func (edge baseEdge) From() VertexID {
	return edge.from
}

func (edge baseEdge) To() VertexID {
	return edge.to
}

// StreetEdge is a directed walkable street segment between two junctions
type StreetEdge struct {
	baseEdge
	costSeconds  map[AgentType]float64
	geom         orb.LineString
	osmWayID     osm.WayID
	lengthMeters float64
}

func newStreetEdge(graph *StreetGraph, from, to VertexID, osmWayID osm.WayID, geom orb.LineString, lengthMeters float64, costSeconds map[AgentType]float64) *StreetEdge {
	edge := &StreetEdge{
		baseEdge:     baseEdge{id: graph.nextEdgeID(), from: from, to: to},
		costSeconds:  costSeconds,
		geom:         geom,
		osmWayID:     osmWayID,
		lengthMeters: lengthMeters,
	}
	graph.addEdge(edge)
	return edge
}

func (edge *StreetEdge) Kind() EdgeKind {
	return EDGE_STREET
}

func (edge *StreetEdge) OSMWayID() osm.WayID {
	return edge.osmWayID
}

func (edge *StreetEdge) LengthMeters() float64 {
	return edge.lengthMeters
}

func (edge *StreetEdge) Geom() orb.LineString {
	return edge.geom
}

func (edge *StreetEdge) Traverse(state TraversalState) (TraversalState, bool) {
	seconds, ok := edge.costSeconds[state.Agent]
	if !ok {
		return TraversalState{}, false
	}
	return state.advance(edge.to, seconds), true
}

func (edge *StreetEdge) MultiTraverse(state TraversalState) []TraversalState {
	return singleTraversal(edge, state)
}
