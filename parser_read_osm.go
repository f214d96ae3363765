package osm2walk

import "github.com/pkg/errors"

// BuildStreetGraph runs the whole pipeline: scan the extract, build the
// street skeleton and wire the vertical connectors
func (parser *Parser) BuildStreetGraph() (*StreetGraph, error) {
	/* Fill fields in case they haven't been provided earlier */
	if len(parser.agentTypes) == 0 {
		parser.agentTypes = []AgentType{AGENT_WALK}
	}
	if parser.issues == nil {
		parser.issues = NewIssueStore()
	}
	dataOSM, err := readOSM(parser.filename, parser.agentTypes, parser.issues, parser.verbose)
	if err != nil {
		return nil, errors.Wrap(err, "Can't parse OSM data")
	}
	graph, err := dataOSM.buildStreetGraph(parser.issues, parser.walkSpeedMS, parser.bikeSpeedMS, parser.verbose)
	if err != nil {
		return nil, errors.Wrap(err, "Can't build walk network")
	}
	return graph, nil
}
