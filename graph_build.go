package osm2walk

import (
	"fmt"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/osm"
)

// buildStreetGraph assembles the walkable street graph out of the raw extract:
// junction vertices (one per node and level), street edges between consecutive
// junctions, and on top of those the vertical connector subgraphs.
func (data *OSMDataRaw) buildStreetGraph(issues IssueSink, walkSpeedMS, bikeSpeedMS float64, verbose bool) (*StreetGraph, error) {
	graph := NewStreetGraph()

	if verbose {
		fmt.Printf("Counting node use cases... ")
	}
	st := time.Now()
	for _, way := range data.ways {
		for i, nodeID := range way.Nodes {
			node, ok := data.nodes[nodeID]
			if !ok {
				return nil, fmt.Errorf("Missing node with id: %d", nodeID)
			}
			if i == 0 || i == len(way.Nodes)-1 {
				node.useCount += 2
			} else {
				node.useCount++
			}
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}

	if verbose {
		fmt.Printf("Preparing junction vertices... ")
	}
	st = time.Now()
	// One junction vertex per (node, level): a node shared by ways on two
	// levels gets two co-located vertices, one per level
	levelVertices := make(map[osm.NodeID]map[Level]VertexID)
	for _, way := range data.ways {
		for _, nodeID := range way.Nodes {
			node := data.nodes[nodeID]
			if node.useCount <= 1 {
				continue
			}
			byLevel, ok := levelVertices[nodeID]
			if !ok {
				byLevel = make(map[Level]VertexID)
				levelVertices[nodeID] = byLevel
			}
			if _, ok := byLevel[way.level]; ok {
				continue
			}
			label := fmt.Sprintf("osm_node_%d/%s", nodeID, way.level.Name)
			vertex := graph.addVertex(VERTEX_JUNCTION, label, way.level.Name, nodeID, node.geom())
			byLevel[way.level] = vertex.ID
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n\tJunctions: %d\n", time.Since(st), graph.VerticesNum())
	}

	if verbose {
		fmt.Printf("Preparing street edges... ")
	}
	st = time.Now()
	streetEdges := 0
	for _, way := range data.ways {
		costSeconds := make(map[AgentType]float64, len(way.allowedAgentTypes))
		var sourceVertex VertexID
		haveSource := false
		geometry := orb.LineString{}
		for _, nodeID := range way.Nodes {
			node := data.nodes[nodeID]
			geometry = append(geometry, node.geom())
			if node.useCount <= 1 {
				continue
			}
			targetVertex := levelVertices[nodeID][way.level]
			if !haveSource {
				sourceVertex = targetVertex
				haveSource = true
				geometry = orb.LineString{node.geom()}
				continue
			}
			if targetVertex == sourceVertex {
				continue
			}
			lengthMeters := lineLengthMeters(geometry)
			for _, agentType := range way.allowedAgentTypes {
				costSeconds[agentType] = lengthMeters / agentSpeedMS(agentType, walkSpeedMS, bikeSpeedMS)
			}
			segmentGeom := make(orb.LineString, len(geometry))
			copy(segmentGeom, geometry)
			newStreetEdge(graph, sourceVertex, targetVertex, way.ID, segmentGeom, lengthMeters, copyCosts(costSeconds))
			newStreetEdge(graph, targetVertex, sourceVertex, way.ID, reverseLine(segmentGeom), lengthMeters, copyCosts(costSeconds))
			streetEdges += 2
			sourceVertex = targetVertex
			geometry = orb.LineString{node.geom()}
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n\tStreet edges: %d\n", time.Since(st), streetEdges)
	}

	if verbose {
		fmt.Printf("Preparing vertical connectors... ")
	}
	st = time.Now()
	// Street junctions attach way elevators through their lowest level vertex
	intersectionNodes := make(map[osm.NodeID]VertexID, len(levelVertices))
	multiLevelNodes := make(map[osm.NodeID]map[Level]VertexID)
	for nodeID, byLevel := range levelVertices {
		lowest := sortedLevels(byLevel)
		intersectionNodes[nodeID] = lowest[0].vertex
		if data.nodes[nodeID].isElevator() {
			multiLevelNodes[nodeID] = byLevel
		}
	}

	processor := &elevatorProcessor{
		issues:            issues,
		areaWays:          data.areaWays,
		multiLevelNodes:   multiLevelNodes,
		intersectionNodes: intersectionNodes,
	}
	processor.buildElevatorEdges(graph, data.nodes, data.elevatorWays)
	if verbose {
		fmt.Printf("Done in %v\n\tPoint elevators: %d, elevator ways: %d\n", time.Since(st), len(multiLevelNodes), len(data.elevatorWays))
	}

	return graph, nil
}

func agentSpeedMS(agentType AgentType, walkSpeedMS, bikeSpeedMS float64) float64 {
	if agentType == AGENT_BIKE {
		return bikeSpeedMS
	}
	return walkSpeedMS
}

func copyCosts(costSeconds map[AgentType]float64) map[AgentType]float64 {
	out := make(map[AgentType]float64, len(costSeconds))
	for agentType, seconds := range costSeconds {
		out[agentType] = seconds
	}
	return out
}

func lineLengthMeters(line orb.LineString) float64 {
	length := 0.0
	for i := 1; i < len(line); i++ {
		length += geo.DistanceHaversine(line[i-1], line[i])
	}
	return length
}

func reverseLine(line orb.LineString) orb.LineString {
	out := make(orb.LineString, len(line))
	for i := range line {
		out[i] = line[len(line)-1-i]
	}
	return out
}
