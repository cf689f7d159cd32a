package datastructure

import "github.com/lintang-b-s/interstatex/pkg"

// PrimaryInterstates returns the seven primary interstates with the major cities they serve, in routing order.
func PrimaryInterstates() *RouteTable {
	return NewRouteTable(
		NewInterstate("I-5", 5, pkg.NORTH_SOUTH,
			NewCity("San Diego", "CA"),
			NewCity("Los Angeles", "CA"),
			NewCity("Sacramento", "CA"),
			NewCity("Portland", "OR"),
			NewCity("Seattle", "WA"),
		),
		NewInterstate("I-10", 10, pkg.EAST_WEST,
			NewCity("Los Angeles", "CA"),
			NewCity("Phoenix", "AZ"),
			NewCity("Tucson", "AZ"),
			NewCity("Las Cruces", "NM"),
			NewCity("El Paso", "TX"),
			NewCity("San Antonio", "TX"),
			NewCity("Houston", "TX"),
			NewCity("Baton Rouge", "LA"),
			NewCity("New Orleans", "LA"),
			NewCity("Mobile", "AL"),
			NewCity("Pensacola", "FL"),
			NewCity("Tallahassee", "FL"),
			NewCity("Jacksonville", "FL"),
		),
		NewInterstate("I-40", 40, pkg.EAST_WEST,
			NewCity("Barstow", "CA"),
			NewCity("Flagstaff", "AZ"),
			NewCity("Albuquerque", "NM"),
			NewCity("Amarillo", "TX"),
			NewCity("Oklahoma City", "OK"),
			NewCity("Little Rock", "AR"),
			NewCity("Memphis", "TN"),
			NewCity("Nashville", "TN"),
			NewCity("Knoxville", "TN"),
			NewCity("Winston-Salem", "NC"),
			NewCity("Raleigh", "NC"),
			NewCity("Wilmington", "NC"),
		),
		NewInterstate("I-70", 70, pkg.EAST_WEST,
			NewCity("Denver", "CO"),
			NewCity("Topeka", "KS"),
			NewCity("Kansas City", "MO"),
			NewCity("St. Louis", "MO"),
			NewCity("Indianapolis", "IN"),
			NewCity("Columbus", "OH"),
			NewCity("Wheeling", "WV"),
			NewCity("Pittsburgh", "PA"),
			NewCity("Hagerstown", "MD"),
			NewCity("Baltimore", "MD"),
		),
		NewInterstate("I-75", 75, pkg.NORTH_SOUTH,
			NewCity("Miami", "FL"),
			NewCity("Fort Lauderdale", "FL"),
			NewCity("Tampa", "FL"),
			NewCity("Atlanta", "GA"),
			NewCity("Chattanooga", "TN"),
			NewCity("Knoxville", "TN"),
			NewCity("Lexington", "KY"),
			NewCity("Cincinnati", "OH"),
			NewCity("Dayton", "OH"),
			NewCity("Toledo", "OH"),
			NewCity("Detroit", "MI"),
			NewCity("Sault Ste. Marie", "MI"),
		),
		NewInterstate("I-80", 80, pkg.EAST_WEST,
			NewCity("San Francisco", "CA"),
			NewCity("Sacramento", "CA"),
			NewCity("Reno", "NV"),
			NewCity("Salt Lake City", "UT"),
			NewCity("Cheyenne", "WY"),
			NewCity("Omaha", "NE"),
			NewCity("Des Moines", "IA"),
			NewCity("Davenport", "IA"),
			NewCity("Chicago", "IL"),
			NewCity("Gary", "IN"),
			NewCity("Toledo", "OH"),
			NewCity("Cleveland", "OH"),
			NewCity("Youngstown", "OH"),
			NewCity("New York City", "NY"),
		),
		NewInterstate("I-95", 95, pkg.NORTH_SOUTH,
			NewCity("Miami", "FL"),
			NewCity("Fort Lauderdale", "FL"),
			NewCity("West Palm Beach", "FL"),
			NewCity("Daytona Beach", "FL"),
			NewCity("Jacksonville", "FL"),
			NewCity("Savannah", "GA"),
			NewCity("Florence", "SC"),
			NewCity("Fayetteville", "NC"),
			NewCity("Richmond", "VA"),
			NewCity("Washington", "DC"),
			NewCity("Baltimore", "MD"),
			NewCity("Wilmington", "DE"),
			NewCity("Philadelphia", "PA"),
			NewCity("Newark", "NJ"),
			NewCity("New York City", "NY"),
			NewCity("New Haven", "CT"),
			NewCity("Providence", "RI"),
			NewCity("Boston", "MA"),
			NewCity("Portsmouth", "NH"),
			NewCity("Portland", "ME"),
		),
	)
}
