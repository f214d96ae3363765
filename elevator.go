package osm2walk

import (
	"fmt"
	"strconv"

	"github.com/paulmach/osm"
)

// elevatorProcessor extracts elevator data from the prepared OSM extract and
// converts it to vertical connector subgraphs. It depends on the indexing
// done by the street graph build, which is why it is not exported.
type elevatorProcessor struct {
	issues IssueSink

	// Ways classified as areas by the loader; area-shaped "elevators" are skipped
	areaWays map[osm.WayID]struct{}

	// Elevator nodes with one attachment vertex per level
	multiLevelNodes map[osm.NodeID]map[Level]VertexID

	// Street junction nodes with their ground attachment vertex
	intersectionNodes map[osm.NodeID]VertexID
}

// buildElevatorEdges wires every point elevator and every elevator-shaped way
// into the graph. Malformed tags degrade to fallback cost models; nothing in
// here aborts the build.
func (processor *elevatorProcessor) buildElevatorEdges(graph *StreetGraph, nodes map[osm.NodeID]*Node, elevatorWays []*WayData) {
	/* Point elevators: one node tagged highway=elevator, one vertex per level */
	for nodeID, vertices := range processor.multiLevelNodes {
		node, ok := nodes[nodeID]
		if !ok {
			continue
		}
		// An elevator may skip levels, e.g. stop at floors 0, 2, 3 and 5.
		// Hop edges connect adjacent stops of the sorted sequence only.
		levels := sortedLevels(vertices)
		onboardVertices := make([]VertexID, 0, len(levels))
		for _, lv := range levels {
			sourceVertex := graph.Vertex(lv.vertex)
			if sourceVertex == nil {
				continue
			}
			createElevatorVertices(graph, &onboardVertices, sourceVertex, sourceVertex.label, lv.level.Name)
		}

		travelTime := parseDuration(node.tags(), int64(nodeID), processor.issues)
		wheelchair := accessibilityFromTags(node.tags())
		bicycleAllowed := isTagTrue(node.tags().Find("bicycle"))

		createElevatorHopEdges(graph, onboardVertices, wheelchair, bicycleAllowed, len(levels), travelTime)
	}

	/* Way elevators: each node of the way is one synthetic level */
	for _, way := range elevatorWays {
		if !processor.isElevatorWay(way) {
			continue
		}
		// Keep only nodes that are street junctions; shaping points carry no
		// attachment vertex and are skipped. Way order is preserved as is.
		attachmentNodes := make([]osm.NodeID, 0, len(way.Nodes))
		for _, nodeRef := range way.Nodes {
			if _, ok := processor.intersectionNodes[nodeRef]; ok {
				attachmentNodes = append(attachmentNodes, nodeRef)
			}
		}

		onboardVertices := make([]VertexID, 0, len(attachmentNodes))
		for i, nodeRef := range attachmentNodes {
			sourceVertex := graph.Vertex(processor.intersectionNodes[nodeRef])
			if sourceVertex == nil {
				continue
			}
			levelName := fmt.Sprintf("%d / %d", way.ID, i)
			label := fmt.Sprintf("%d_%s", way.ID, sourceVertex.label)
			createElevatorVertices(graph, &onboardVertices, sourceVertex, label, levelName)
		}

		travelTime := parseDuration(way.TagMap, int64(way.ID), processor.issues)
		wheelchair := accessibilityFromTags(way.TagMap)
		bicycleAllowed := isTagTrue(way.TagMap.Find("bicycle"))

		createElevatorHopEdges(graph, onboardVertices, wheelchair, bicycleAllowed, len(attachmentNodes), travelTime)
	}
}

// createElevatorVertices builds one connector for one level: an offboard
// vertex kept reachable from the attachment junction through a free edge
// pair, an onboard vertex reachable only through the board edge, and the
// alight edge back out. The onboard vertex is accumulated so the hop edges
// can be wired afterwards.
func createElevatorVertices(graph *StreetGraph, onboardVertices *[]VertexID, sourceVertex *Vertex, sourceVertexLabel string, levelName string) {
	offboardVertex := graph.addVertex(
		VERTEX_OFFBOARD,
		sourceVertexLabel+"_offboard",
		levelName,
		sourceVertex.osmNodeID,
		sourceVertex.geom,
	)

	newFreeEdge(graph, sourceVertex.ID, offboardVertex.ID)
	newFreeEdge(graph, offboardVertex.ID, sourceVertex.ID)

	onboardVertex := graph.addVertex(
		VERTEX_ONBOARD,
		sourceVertexLabel+"_onboard",
		levelName,
		sourceVertex.osmNodeID,
		sourceVertex.geom,
	)

	newElevatorBoardEdge(graph, offboardVertex.ID, onboardVertex.ID)
	newElevatorAlightEdge(graph, onboardVertex.ID, offboardVertex.ID, levelName)

	*onboardVertices = append(*onboardVertices, onboardVertex.ID)
}

// createElevatorHopEdges connects adjacent onboard vertices pairwise.
// Permission and accessibility are derived once per source feature.
func createElevatorHopEdges(graph *StreetGraph, onboardVertices []VertexID, wheelchair Accessibility, bicycleAllowed bool, levels int, travelTime int) {
	// Default permission is pedestrian; bicycles only on an explicit bicycle=yes
	allowedAgentTypes := []AgentType{AGENT_WALK}
	if bicycleAllowed {
		allowedAgentTypes = append(allowedAgentTypes, AGENT_BIKE)
	}

	// -1 because onboard vertices are taken two at a time
	for i := 0; i < len(onboardVertices)-1; i++ {
		from := onboardVertices[i]
		to := onboardVertices[i+1]

		if travelTime > -1 && levels > 0 {
			newElevatorHopEdgesBidirectional(graph, from, to, allowedAgentTypes, wheelchair, levels, travelTime)
		} else {
			newElevatorHopEdgesBidirectional(graph, from, to, allowedAgentTypes, wheelchair, 0, -1)
		}
	}
}

// isElevatorWay rejects area-shaped features: a way classified as an area, or
// a way whose first and last node are the same, is probably a mis-tagged area
// rather than a real elevator. See https://www.openstreetmap.org/way/503412863
func (processor *elevatorProcessor) isElevatorWay(way *WayData) bool {
	if way.highway != "elevator" {
		return false
	}
	if _, ok := processor.areaWays[way.ID]; ok {
		return false
	}
	if len(way.Nodes) == 0 {
		return false
	}
	return !way.isClosedRing()
}

// parseDuration reads the `duration` tag as travel time in seconds. A missing
// tag is not an anomaly; a malformed or negative one is reported and replaced
// with -1 (unknown), which makes hop edges fall back to the default cost.
func parseDuration(tags osm.Tags, featureID int64, sink IssueSink) int {
	raw := tags.Find("duration")
	if raw == "" {
		return -1
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		sink.Report(
			"InvalidDuration",
			fmt.Sprintf("Duration for osm feature %d is not a non-negative number: '%s'; it's replaced with '-1' (unknown)", featureID, raw),
			featureID,
		)
		return -1
	}
	return seconds
}
