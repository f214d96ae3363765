package osm2walk

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
)

type Node struct {
	node osm.Node
	name string

	ID       osm.NodeID
	useCount int
	highway  string
}

func (node *Node) geom() orb.Point {
	return node.node.Point()
}

func (node *Node) tags() osm.Tags {
	return node.node.Tags
}

// isElevator reports whether the node itself is mapped as an elevator.
// Such nodes become point elevators connecting their levels vertically.
func (node *Node) isElevator() bool {
	return node.highway == "elevator"
}
