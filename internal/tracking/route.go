package tracking

// Route is a shipping direction. Its value is the code the route tables and
// the route keyboard are keyed by.
type Route string

const (
	AirOutbound  Route = "Air AM to USA"
	AirInbound   Route = "Air USA to AM"
	OceanInbound Route = "Ocean USA to AM"
)

// Routes lists the supported routes in display order.
func Routes() []Route {
	return []Route{AirOutbound, AirInbound, OceanInbound}
}

// ParseRoute returns the route matching code.
func ParseRoute(code string) (Route, bool) {
	for _, r := range Routes() {
		if string(r) == code {
			return r, true
		}
	}
	return "", false
}

func (r Route) String() string {
	return string(r)
}

// Office is the destination office named in the estimated delivery line.
type Office int

const (
	AmericanOffice Office = iota
	ArmenianOffice
)
