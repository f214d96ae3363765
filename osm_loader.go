package osm2walk

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

// OSMDataRaw is the materialized extract the graph build runs over: walkable
// ways, elevator ways, the nodes they reference and the area classification.
type OSMDataRaw struct {
	nodes        map[osm.NodeID]*Node
	ways         []*WayData
	elevatorWays []*WayData
	areaWays     map[osm.WayID]struct{}
}

func newScanner(filename string, file *os.File) (OSMScanner, error) {
	ext := filepath.Ext(filename)
	switch ext {
	case ".osm", ".xml":
		return osmxml.New(context.Background(), file), nil
	case ".pbf", ".osm.pbf":
		return osmpbf.New(context.Background(), file, 4), nil
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", ext, filename)
	}
}

// readOSM scans the extract twice (ways first, then the nodes those ways
// reference) and keeps only what the walk graph needs
func readOSM(filename string, agentTypes []AgentType, issues IssueSink, verbose bool) (*OSMDataRaw, error) {
	if verbose {
		fmt.Printf("Opening file: '%s'...\n", filename)
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	/* Process ways */
	if verbose {
		fmt.Printf("\tProcessing ways... ")
	}
	st := time.Now()
	ways := []*WayData{}
	elevatorWays := []*WayData{}
	areaWays := make(map[osm.WayID]struct{})
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		scannerWays, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerWays.Close()

		for scannerWays.Scan() {
			obj := scannerWays.Object()
			if obj.ObjectID().Type() != "way" {
				continue
			}
			way := obj.(*osm.Way)
			preparedWay := &WayData{
				ID:     way.ID,
				Nodes:  make([]osm.NodeID, 0, len(way.Nodes)),
				TagMap: make(osm.Tags, len(way.Tags)),
			}
			copy(preparedWay.TagMap, way.Tags)
			for _, node := range way.Nodes {
				preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
			}
			// Call tags flattening to make further processing easier
			preparedWay.flattenTags()

			if preparedWay.isAreaTagged() {
				areaWays[preparedWay.ID] = struct{}{}
			}

			if preparedWay.isElevator() {
				elevatorWays = append(elevatorWays, preparedWay)
				for _, nodeID := range preparedWay.Nodes {
					nodesSeen[nodeID] = struct{}{}
				}
				continue
			}

			preparedWay.allowedAgentTypes = preparedWay.getAllowableAgentTypes(agentTypes)
			if len(preparedWay.allowedAgentTypes) == 0 {
				continue
			}
			preparedWay.level = parseLevel(preparedWay.TagMap, int64(preparedWay.ID), issues)
			for _, nodeID := range preparedWay.Nodes {
				nodesSeen[nodeID] = struct{}{}
			}
			ways = append(ways, preparedWay)
		}
		err = scannerWays.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n\tWays: %d (elevator ways: %d)\n", time.Since(st), len(ways), len(elevatorWays))
	}

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	if verbose {
		fmt.Printf("\tProcessing nodes... ")
	}
	st = time.Now()
	nodes := make(map[osm.NodeID]*Node)
	{
		scannerNodes, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerNodes.Close()

		for scannerNodes.Scan() {
			obj := scannerNodes.Object()
			if obj.ObjectID().Type() != "node" {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; ok {
				delete(nodesSeen, node.ID)
				nodes[node.ID] = &Node{
					node:     *node,
					name:     node.Tags.Find("name"),
					ID:       node.ID,
					useCount: 0,
					highway:  node.Tags.Find("highway"),
				}
			}
		}
		err = scannerNodes.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n\tNodes: %d\n", time.Since(st), len(nodes))
	}

	data := OSMDataRaw{
		nodes:        nodes,
		ways:         ways,
		elevatorWays: elevatorWays,
		areaWays:     areaWays,
	}
	return &data, nil
}
