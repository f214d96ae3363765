package osm2walk

type AccessType uint16

const (
	ACCESS_HIGHWAY = AccessType(iota + 1)
	ACCESS_OSM_ACCESS
	ACCESS_SERVICE
	ACCESS_BICYCLE
	ACCESS_FOOT
	ACCESS_UNDEFINED = AccessType(0)
)

func (iotaIdx AccessType) String() string {
	return [...]string{"undefined", "highway", "access", "service", "bicycle", "foot"}[iotaIdx]
}
