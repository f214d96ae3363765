package osm2walk

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

/* Vertices stuff */

type VertexID int64

type VertexKind uint16

const (
	VERTEX_JUNCTION = VertexKind(iota + 1)
	VERTEX_OFFBOARD
	VERTEX_ONBOARD
)

func (iotaIdx VertexKind) String() string {
	return [...]string{"junction", "offboard", "onboard"}[iotaIdx-1]
}

type Vertex struct {
	incomingEdges  []EdgeID
	outcomingEdges []EdgeID
	label          string
	levelName      string
	ID             VertexID
	osmNodeID      osm.NodeID
	kind           VertexKind
	geom           orb.Point
}

func (vertex *Vertex) Label() string {
	return vertex.label
}

// LevelName returns the display name of the level the vertex belongs to.
// Empty for plain ground-level junctions.
func (vertex *Vertex) LevelName() string {
	return vertex.levelName
}

func (vertex *Vertex) Kind() VertexKind {
	return vertex.kind
}

func (vertex *Vertex) OSMNodeID() osm.NodeID {
	return vertex.osmNodeID
}

func (vertex *Vertex) Geom() orb.Point {
	return vertex.geom
}

func (vertex *Vertex) IncomingEdges() []EdgeID {
	return vertex.incomingEdges
}

func (vertex *Vertex) OutcomingEdges() []EdgeID {
	return vertex.outcomingEdges
}
