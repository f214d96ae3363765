package osm2walk

import (
	"fmt"
	"strings"
)

const (
	DEFAULT_WALK_SPEED_MS = 1.4
	DEFAULT_BIKE_SPEED_MS = 4.0
)

// Parser builds a walkable street graph (vertical connectors included) out of
// an OSM extract
type Parser struct {
	filename    string
	agentTypes  []AgentType
	walkSpeedMS float64
	bikeSpeedMS float64
	issues      IssueSink
	verbose     bool
}

func (parser *Parser) String() string {
	agents := make([]string, len(parser.agentTypes))
	for i, agentType := range parser.agentTypes {
		agents[i] = agentType.String()
	}
	return fmt.Sprintf(`
Walk network parser parameters:
	filename: '%s'
	agent_types: '%s'
	walk_speed_ms: %f
	bike_speed_ms: %f
	verbose?: %t
	`,
		parser.filename,
		strings.Join(agents, ","),
		parser.walkSpeedMS,
		parser.bikeSpeedMS,
		parser.verbose,
	)
}

func NewParser(fileName string, options ...func(*Parser)) *Parser {
	parser := &Parser{
		filename:    fileName,
		agentTypes:  []AgentType{AGENT_WALK},
		walkSpeedMS: DEFAULT_WALK_SPEED_MS,
		bikeSpeedMS: DEFAULT_BIKE_SPEED_MS,
		verbose:     false,
	}
	for _, option := range options {
		option(parser)
	}
	return parser
}

func WithAgentTypes(agentTypes []AgentType) func(*Parser) {
	return func(parser *Parser) {
		parser.agentTypes = agentTypes
	}
}

func WithWalkSpeed(speedMS float64) func(*Parser) {
	return func(parser *Parser) {
		parser.walkSpeedMS = speedMS
	}
}

func WithBikeSpeed(speedMS float64) func(*Parser) {
	return func(parser *Parser) {
		parser.bikeSpeedMS = speedMS
	}
}

func WithIssueSink(sink IssueSink) func(*Parser) {
	return func(parser *Parser) {
		parser.issues = sink
	}
}

func WithVerbose(verbose bool) func(*Parser) {
	return func(parser *Parser) {
		parser.verbose = verbose
	}
}
