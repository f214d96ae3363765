package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/LdDl/ch"
	"github.com/pkg/errors"
	osm2walk "github.com/streetlevel/osm2walk"
)

var (
	osmFileName   = flag.String("file", "my_graph.osm.pbf", "Filename of *.osm.pbf (or *.osm / *.xml) file")
	out           = flag.String("out", "walk_graph.csv", "Filename of 'Comma-Separated Values' (CSV) formatted file. E.g.: if file name is 'map.csv' then files 'map_vertices.csv', 'map_edges.csv' (and 'map_shortcuts.csv' on contraction) will be produced")
	geomFormat    = flag.String("geomf", "wkt", "Format of output geometry. Expected values: wkt / geojson")
	agentsStr     = flag.String("agents", "walk,bike", "Set of agent types (separated by commas). Expected values: walk / bike")
	doContraction = flag.Bool("contract", false, "Prepare contraction hierarchies over the walk graph?")
	verbose       = flag.Bool("verbose", true, "Print progress of each stage?")
)

func main() {
	flag.Parse()

	agentTypes := []osm2walk.AgentType{}
	for _, agent := range strings.Split(*agentsStr, ",") {
		switch strings.TrimSpace(agent) {
		case "walk":
			agentTypes = append(agentTypes, osm2walk.AGENT_WALK)
		case "bike":
			agentTypes = append(agentTypes, osm2walk.AGENT_BIKE)
		default:
			fmt.Printf("Unknown agent type: '%s'\n", agent)
			return
		}
	}

	issues := osm2walk.NewIssueStore()
	parser := osm2walk.NewParser(
		*osmFileName,
		osm2walk.WithAgentTypes(agentTypes),
		osm2walk.WithIssueSink(issues),
		osm2walk.WithVerbose(*verbose),
	)

	graph, err := parser.BuildStreetGraph()
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, issue := range issues.Issues() {
		fmt.Printf("[ISSUE] %s: %s\n", issue.Code, issue.Message)
	}

	err = graph.ExportToCSV(*out, *geomFormat)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Exported %d vertices and %d edges\n", graph.VerticesNum(), graph.EdgesNum())

	if *doContraction {
		err = contractGraph(graph, *out)
		if err != nil {
			fmt.Println(err)
			return
		}
	}
}

// contractGraph prepares contraction hierarchies over the pedestrian view of
// the graph. Edge weights come from the traversal contract itself, so
// connector edges (board/alight/hop) carry their elevator costs into the
// hierarchy.
func contractGraph(graph *osm2walk.StreetGraph, out string) error {
	chGraph := ch.Graph{}

	for _, edge := range graph.Edges() {
		states := edge.MultiTraverse(osm2walk.TraversalState{Vertex: edge.From(), Agent: osm2walk.AGENT_WALK})
		if len(states) == 0 {
			// Not walkable at all, keep it out of the pedestrian hierarchy
			continue
		}
		err := chGraph.CreateVertex(int64(edge.From()))
		if err != nil {
			return errors.Wrap(err, "Can not create source vertex")
		}
		err = chGraph.CreateVertex(int64(edge.To()))
		if err != nil {
			return errors.Wrap(err, "Can not create target vertex")
		}
		err = chGraph.AddEdge(int64(edge.From()), int64(edge.To()), states[0].Weight)
		if err != nil {
			return errors.Wrap(err, "Can not wrap source and target vertices as edge")
		}
	}

	fmt.Println("Starting contraction process....")
	st := time.Now()
	chGraph.PrepareContractionHierarchies()
	fmt.Printf("Done contraction process in %v\n", time.Since(st))

	fnameParts := strings.Split(out, ".csv")
	err := chGraph.ExportShortcutsToFile(fnameParts[0] + "_shortcuts.csv")
	if err != nil {
		return errors.Wrap(err, "Can not export shortcuts")
	}
	return nil
}
