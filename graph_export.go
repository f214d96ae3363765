package osm2walk

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// ExportToCSV writes the graph into '<name>_vertices.csv' and
// '<name>_edges.csv'. geomFormat is either "wkt" or "geojson".
func (graph *StreetGraph) ExportToCSV(fname string, geomFormat string) error {
	fnameParts := strings.Split(fname, ".csv")
	fnameVertices := fmt.Sprintf(fnameParts[0] + "_vertices.csv")
	fnameEdges := fmt.Sprintf(fnameParts[0] + "_edges.csv")

	err := graph.exportVerticesToCSV(fnameVertices, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export vertices")
	}

	err = graph.exportEdgesToCSV(fnameEdges, geomFormat)
	if err != nil {
		return errors.Wrap(err, "Can't export edges")
	}

	return nil
}

func (graph *StreetGraph) exportVerticesToCSV(fname string, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "osm_node_id", "kind", "label", "level_name", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, vertex := range graph.vertices {
		geomStr := ""
		if strings.ToLower(geomFormat) == "geojson" {
			geomStr = PrepareGeoJSONPoint(vertex.geom)
		} else {
			geomStr = PrepareWKTPoint(vertex.geom)
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", vertex.ID),
			fmt.Sprintf("%d", vertex.osmNodeID),
			fmt.Sprintf("%s", vertex.kind),
			vertex.label,
			vertex.levelName,
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write vertex")
		}
	}
	return nil
}

func (graph *StreetGraph) exportEdgesToCSV(fname string, geomFormat string) error {
	file, err := os.Create(fname)
	if err != nil {
		return errors.Wrap(err, "Can't create file")
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()
	writer.Comma = ';'

	err = writer.Write([]string{"id", "source_vertex", "target_vertex", "kind", "osm_way_id", "length_meters", "level_name", "allowed_agent_types", "walk_seconds", "geom"})
	if err != nil {
		return errors.Wrap(err, "Can't write header")
	}

	for _, edge := range graph.edges {
		geomStr := ""
		if strings.ToLower(geomFormat) == "geojson" {
			geomStr = PrepareGeoJSONLinestring(graph.edgeGeometry(edge))
		} else {
			geomStr = PrepareWKTLinestring(graph.edgeGeometry(edge))
		}
		err = writer.Write([]string{
			fmt.Sprintf("%d", edge.ID()),
			fmt.Sprintf("%d", edge.From()),
			fmt.Sprintf("%d", edge.To()),
			fmt.Sprintf("%s", edge.Kind()),
			fmt.Sprintf("%d", edgeOSMWayID(edge)),
			fmt.Sprintf("%f", edgeLengthMeters(edge)),
			edgeLevelName(edge),
			strings.Join(edgeAgentTypes(edge), ","),
			fmt.Sprintf("%f", graph.edgeWalkSeconds(edge)),
			geomStr,
		})
		if err != nil {
			return errors.Wrap(err, "Can't write edge")
		}
	}
	return nil
}

// edgeGeometry returns the street geometry for street edges and the pair of
// (co-located) endpoint coordinates for connector edges
func (graph *StreetGraph) edgeGeometry(edge TraversalEdge) orb.LineString {
	if streetEdge, ok := edge.(*StreetEdge); ok {
		return streetEdge.geom
	}
	from := graph.vertices[edge.From()]
	to := graph.vertices[edge.To()]
	if from == nil || to == nil {
		return orb.LineString{}
	}
	return orb.LineString{from.geom, to.geom}
}

// edgeWalkSeconds evaluates the edge cost through the traversal contract for
// a pedestrian state; -1 when the edge is not walkable at all
func (graph *StreetGraph) edgeWalkSeconds(edge TraversalEdge) float64 {
	states := edge.MultiTraverse(TraversalState{Vertex: edge.From(), Agent: AGENT_WALK})
	if len(states) == 0 {
		return -1.0
	}
	return states[0].Weight
}

func edgeOSMWayID(edge TraversalEdge) int64 {
	if streetEdge, ok := edge.(*StreetEdge); ok {
		return int64(streetEdge.osmWayID)
	}
	return -1
}

func edgeLengthMeters(edge TraversalEdge) float64 {
	if streetEdge, ok := edge.(*StreetEdge); ok {
		return streetEdge.lengthMeters
	}
	return 0.0
}

func edgeLevelName(edge TraversalEdge) string {
	if alightEdge, ok := edge.(*ElevatorAlightEdge); ok {
		return alightEdge.levelName
	}
	return ""
}

func edgeAgentTypes(edge TraversalEdge) []string {
	switch typedEdge := edge.(type) {
	case *StreetEdge:
		agents := make([]string, 0, len(typedEdge.costSeconds))
		for agentType := range typedEdge.costSeconds {
			agents = append(agents, agentType.String())
		}
		sort.Strings(agents)
		return agents
	case *ElevatorHopEdge:
		agents := make([]string, 0, len(typedEdge.allowedAgentTypes))
		for _, agentType := range typedEdge.allowedAgentTypes {
			agents = append(agents, agentType.String())
		}
		sort.Strings(agents)
		return agents
	default:
		return []string{AGENT_WALK.String(), AGENT_BIKE.String()}
	}
}
