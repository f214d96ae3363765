package osm2walk

import (
	"testing"
)

func TestParser(t *testing.T) {
	parser := NewParser(
		"sample.osm",
		WithAgentTypes([]AgentType{AGENT_WALK, AGENT_BIKE}),
		WithWalkSpeed(1.2),
		WithBikeSpeed(4.5),
		WithVerbose(false),
	)

	t.Log(parser)

	if parser.filename != "sample.osm" {
		t.Errorf("Parser filename must be '%s', but got '%s'", "sample.osm", parser.filename)
	}
	if len(parser.agentTypes) != 2 {
		t.Errorf("Parser agent types count must be %d, but got %d", 2, len(parser.agentTypes))
	}
	if parser.walkSpeedMS != 1.2 {
		t.Errorf("Parser walk speed must be %f, but got %f", 1.2, parser.walkSpeedMS)
	}
	if parser.bikeSpeedMS != 4.5 {
		t.Errorf("Parser bike speed must be %f, but got %f", 4.5, parser.bikeSpeedMS)
	}
}

func TestParserDefaults(t *testing.T) {
	parser := NewParser("sample.osm.pbf")
	if len(parser.agentTypes) != 1 || parser.agentTypes[0] != AGENT_WALK {
		t.Errorf("Default agent types must be [walk], but got %v", parser.agentTypes)
	}
	if parser.walkSpeedMS != DEFAULT_WALK_SPEED_MS {
		t.Errorf("Default walk speed must be %f, but got %f", DEFAULT_WALK_SPEED_MS, parser.walkSpeedMS)
	}
	if parser.verbose {
		t.Errorf("Parser must not be verbose by default")
	}
}
