package osm2walk

import (
	"github.com/paulmach/osm"
)

type WayData struct {
	name    string
	highway string
	foot    string
	bicycle string
	service string
	access  string
	area    string

	TagMap osm.Tags
	Nodes  []osm.NodeID
	ID     osm.WayID

	level             Level
	allowedAgentTypes []AgentType
}

// flattenTags extracts the frequently checked tags once to make further
// processing easier
func (way *WayData) flattenTags() {
	way.name = way.TagMap.Find("name")
	way.highway = way.TagMap.Find("highway")
	way.foot = way.TagMap.Find("foot")
	way.bicycle = way.TagMap.Find("bicycle")
	way.service = way.TagMap.Find("service")
	way.access = way.TagMap.Find("access")
	way.area = way.TagMap.Find("area")
}

func (way *WayData) isElevator() bool {
	return way.highway == "elevator"
}

func (way *WayData) isAreaTagged() bool {
	return way.area == "yes"
}

func (way *WayData) isClosedRing() bool {
	if len(way.Nodes) < 2 {
		return false
	}
	return way.Nodes[0] == way.Nodes[len(way.Nodes)-1]
}

func (way *WayData) findIncludedAgent(agentType AgentType) bool {
	accessValues, ok := agentsAccessIncludeValues[agentType]
	if !ok {
		return false
	}
	switch agentType {
	case AGENT_WALK:
		if _, ok := accessValues[ACCESS_FOOT][way.foot]; ok {
			return true
		}
	case AGENT_BIKE:
		if _, ok := accessValues[ACCESS_BICYCLE][way.bicycle]; ok {
			return true
		}
	}
	return false
}

func (way *WayData) passesExcludeFilters(agentType AgentType) bool {
	accessValues, ok := agentsAccessExcludeValues[agentType]
	if !ok {
		return true
	}
	if _, ok := accessValues[ACCESS_HIGHWAY][way.highway]; ok {
		return false
	}
	if _, ok := accessValues[ACCESS_SERVICE][way.service]; ok {
		return false
	}
	if _, ok := accessValues[ACCESS_OSM_ACCESS][way.access]; ok {
		return false
	}
	switch agentType {
	case AGENT_WALK:
		if _, ok := accessValues[ACCESS_FOOT][way.foot]; ok {
			return false
		}
	case AGENT_BIKE:
		if _, ok := accessValues[ACCESS_BICYCLE][way.bicycle]; ok {
			return false
		}
	}
	return true
}

// getAllowableAgentTypes filters the requested agents down to those the way
// actually permits. An explicit include tag wins over the highway skeleton
// check, mirroring how access overrides work in OSM.
func (way *WayData) getAllowableAgentTypes(requested []AgentType) []AgentType {
	allowedAgents := []AgentType{}
	for _, agentType := range requested {
		if _, ok := agentTypesAll[agentType]; !ok {
			continue
		}
		if way.findIncludedAgent(agentType) {
			allowedAgents = append(allowedAgents, agentType)
			continue
		}
		if _, ok := walkableHighwayTags[way.highway]; !ok {
			continue
		}
		if way.passesExcludeFilters(agentType) {
			allowedAgents = append(allowedAgents, agentType)
		}
	}
	return allowedAgents
}
