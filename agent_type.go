package osm2walk

type AgentType uint16

const (
	AGENT_WALK = AgentType(iota + 1)
	AGENT_BIKE
	AGENT_UNDEFINED = AgentType(0)
)

func (iotaIdx AgentType) String() string {
	return [...]string{"undefined", "walk", "bike"}[iotaIdx]
}

var (
	agentTypesAll = map[AgentType]struct{}{
		AGENT_WALK: {},
		AGENT_BIKE: {},
	}

	agentsAccessIncludeValues = map[AgentType]map[AccessType]map[string]struct{}{
		AGENT_WALK: {
			ACCESS_FOOT: {
				"yes":        struct{}{},
				"designated": struct{}{},
			},
		},
		AGENT_BIKE: {
			ACCESS_BICYCLE: {
				"yes":        struct{}{},
				"designated": struct{}{},
			},
		},
	}

	agentsAccessExcludeValues = map[AgentType]map[AccessType]map[string]struct{}{
		AGENT_WALK: {
			ACCESS_HIGHWAY: {
				"cycleway":      struct{}{},
				"motor":         struct{}{},
				"motorway":      struct{}{},
				"motorway_link": struct{}{},
				"trunk":         struct{}{},
				"trunk_link":    struct{}{},
			},
			ACCESS_FOOT: {
				"no":      struct{}{},
				"private": struct{}{},
			},
			ACCESS_SERVICE: {
				"private": struct{}{},
			},
			ACCESS_OSM_ACCESS: {
				"private": struct{}{},
			},
		},
		AGENT_BIKE: {
			ACCESS_HIGHWAY: {
				"footway":       struct{}{},
				"steps":         struct{}{},
				"corridor":      struct{}{},
				"escalator":     struct{}{},
				"motor":         struct{}{},
				"motorway":      struct{}{},
				"motorway_link": struct{}{},
			},
			ACCESS_BICYCLE: {
				"no": struct{}{},
			},
			ACCESS_SERVICE: {
				"private": struct{}{},
			},
			ACCESS_OSM_ACCESS: {
				"private": struct{}{},
			},
		},
	}

	// Ways with those `highway` tag values form the walkable street skeleton.
	// Elevator ways are routed through the vertical connector pipeline instead.
	walkableHighwayTags = map[string]struct{}{
		"footway":        {},
		"pedestrian":     {},
		"path":           {},
		"steps":          {},
		"corridor":       {},
		"living_street":  {},
		"residential":    {},
		"service":        {},
		"track":          {},
		"cycleway":       {},
		"unclassified":   {},
		"tertiary":       {},
		"tertiary_link":  {},
		"secondary":      {},
		"secondary_link": {},
		"primary":        {},
		"primary_link":   {},
	}
)
