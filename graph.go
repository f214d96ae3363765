package osm2walk

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

// StreetGraph owns every vertex and edge of the walkable network. It is
// populated once during the single-threaded build phase and only ever grows:
// nothing inserted here is removed or mutated afterwards.
type StreetGraph struct {
	vertices map[VertexID]*Vertex
	edges    map[EdgeID]TraversalEdge

	lastVertexID VertexID
	lastEdgeID   EdgeID
}

func NewStreetGraph() *StreetGraph {
	return &StreetGraph{
		vertices: make(map[VertexID]*Vertex),
		edges:    make(map[EdgeID]TraversalEdge),
	}
}

func (graph *StreetGraph) addVertex(kind VertexKind, label string, levelName string, osmNodeID osm.NodeID, geom orb.Point) *Vertex {
	graph.lastVertexID++
	vertex := &Vertex{
		incomingEdges:  make([]EdgeID, 0),
		outcomingEdges: make([]EdgeID, 0),
		label:          label,
		levelName:      levelName,
		ID:             graph.lastVertexID,
		osmNodeID:      osmNodeID,
		kind:           kind,
		geom:           geom,
	}
	graph.vertices[vertex.ID] = vertex
	return vertex
}

func (graph *StreetGraph) nextEdgeID() EdgeID {
	graph.lastEdgeID++
	return graph.lastEdgeID
}

// addEdge registers an edge and links it to its endpoint vertices
func (graph *StreetGraph) addEdge(edge TraversalEdge) {
	graph.edges[edge.ID()] = edge
	if from, ok := graph.vertices[edge.From()]; ok {
		from.outcomingEdges = append(from.outcomingEdges, edge.ID())
	}
	if to, ok := graph.vertices[edge.To()]; ok {
		to.incomingEdges = append(to.incomingEdges, edge.ID())
	}
}

func (graph *StreetGraph) Vertex(id VertexID) *Vertex {
	return graph.vertices[id]
}

func (graph *StreetGraph) Edge(id EdgeID) TraversalEdge {
	return graph.edges[id]
}

func (graph *StreetGraph) Vertices() map[VertexID]*Vertex {
	return graph.vertices
}

func (graph *StreetGraph) Edges() map[EdgeID]TraversalEdge {
	return graph.edges
}

func (graph *StreetGraph) VerticesNum() int {
	return len(graph.vertices)
}

func (graph *StreetGraph) EdgesNum() int {
	return len(graph.edges)
}

// OutcomingEdges returns the edges leaving the given vertex
func (graph *StreetGraph) OutcomingEdges(id VertexID) []TraversalEdge {
	vertex, ok := graph.vertices[id]
	if !ok {
		return nil
	}
	out := make([]TraversalEdge, 0, len(vertex.outcomingEdges))
	for _, edgeID := range vertex.outcomingEdges {
		out = append(out, graph.edges[edgeID])
	}
	return out
}
