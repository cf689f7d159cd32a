package datastructure

import "github.com/lintang-b-s/interstatex/pkg/geo"

// CityCoordinates returns approximate city center coordinates (lat, lon in degrees) for every city in PrimaryInterstates.
func CityCoordinates() *CoordinateTable {
	return NewCoordinateTable(map[City]geo.Coordinate{
		NewCity("San Diego", "CA"):   geo.NewCoordinate(32.7157, -117.1611),
		NewCity("Los Angeles", "CA"): geo.NewCoordinate(34.0522, -118.2437),
		NewCity("Sacramento", "CA"):  geo.NewCoordinate(38.5816, -121.4944),
		NewCity("Portland", "OR"):    geo.NewCoordinate(45.5152, -122.6784),
		NewCity("Seattle", "WA"):     geo.NewCoordinate(47.6062, -122.3321),

		NewCity("Phoenix", "AZ"):      geo.NewCoordinate(33.4484, -112.074),
		NewCity("Tucson", "AZ"):       geo.NewCoordinate(32.2226, -110.9747),
		NewCity("Las Cruces", "NM"):   geo.NewCoordinate(32.3199, -106.7637),
		NewCity("El Paso", "TX"):      geo.NewCoordinate(31.7619, -106.485),
		NewCity("San Antonio", "TX"):  geo.NewCoordinate(29.4241, -98.4936),
		NewCity("Houston", "TX"):      geo.NewCoordinate(29.7604, -95.3698),
		NewCity("Baton Rouge", "LA"):  geo.NewCoordinate(30.4515, -91.1871),
		NewCity("New Orleans", "LA"):  geo.NewCoordinate(29.9511, -90.0715),
		NewCity("Mobile", "AL"):       geo.NewCoordinate(30.6954, -88.0399),
		NewCity("Pensacola", "FL"):    geo.NewCoordinate(30.4213, -87.2169),
		NewCity("Tallahassee", "FL"):  geo.NewCoordinate(30.4383, -84.2807),
		NewCity("Jacksonville", "FL"): geo.NewCoordinate(30.3322, -81.6557),

		NewCity("Barstow", "CA"):       geo.NewCoordinate(34.8958, -117.0173),
		NewCity("Flagstaff", "AZ"):     geo.NewCoordinate(35.1983, -111.6513),
		NewCity("Albuquerque", "NM"):   geo.NewCoordinate(35.0844, -106.6504),
		NewCity("Amarillo", "TX"):      geo.NewCoordinate(35.221997, -101.831299),
		NewCity("Oklahoma City", "OK"): geo.NewCoordinate(35.4676, -97.5164),
		NewCity("Little Rock", "AR"):   geo.NewCoordinate(34.7465, -92.2896),
		NewCity("Memphis", "TN"):       geo.NewCoordinate(35.1495, -90.049),
		NewCity("Nashville", "TN"):     geo.NewCoordinate(36.1627, -86.7816),
		NewCity("Knoxville", "TN"):     geo.NewCoordinate(35.9606, -83.9207),
		NewCity("Winston-Salem", "NC"): geo.NewCoordinate(36.0999, -80.2442),
		NewCity("Raleigh", "NC"):       geo.NewCoordinate(35.7796, -78.6382),
		NewCity("Wilmington", "NC"):    geo.NewCoordinate(34.2257, -77.9447),

		NewCity("Denver", "CO"):       geo.NewCoordinate(39.7392, -104.9903),
		NewCity("Topeka", "KS"):       geo.NewCoordinate(39.0473, -95.6752),
		NewCity("Kansas City", "MO"):  geo.NewCoordinate(39.0997, -94.5786),
		NewCity("St. Louis", "MO"):    geo.NewCoordinate(38.627, -90.1994),
		NewCity("Indianapolis", "IN"): geo.NewCoordinate(39.7684, -86.1581),
		NewCity("Columbus", "OH"):     geo.NewCoordinate(39.9612, -82.9988),
		NewCity("Wheeling", "WV"):     geo.NewCoordinate(40.063, -80.7209),
		NewCity("Pittsburgh", "PA"):   geo.NewCoordinate(40.4406, -79.9959),
		NewCity("Hagerstown", "MD"):   geo.NewCoordinate(39.6418, -77.72),
		NewCity("Baltimore", "MD"):    geo.NewCoordinate(39.2904, -76.6122),

		NewCity("Miami", "FL"):            geo.NewCoordinate(25.7617, -80.1918),
		NewCity("Fort Lauderdale", "FL"):  geo.NewCoordinate(26.1224, -80.1373),
		NewCity("Tampa", "FL"):            geo.NewCoordinate(27.9506, -82.4572),
		NewCity("Atlanta", "GA"):          geo.NewCoordinate(33.749, -84.388),
		NewCity("Chattanooga", "TN"):      geo.NewCoordinate(35.0456, -85.3097),
		NewCity("Lexington", "KY"):        geo.NewCoordinate(38.0406, -84.5037),
		NewCity("Cincinnati", "OH"):       geo.NewCoordinate(39.1031, -84.512),
		NewCity("Dayton", "OH"):           geo.NewCoordinate(39.7589, -84.1916),
		NewCity("Toledo", "OH"):           geo.NewCoordinate(41.6528, -83.5379),
		NewCity("Detroit", "MI"):          geo.NewCoordinate(42.3314, -83.0458),
		NewCity("Sault Ste. Marie", "MI"): geo.NewCoordinate(46.4953, -84.3453),

		NewCity("San Francisco", "CA"):  geo.NewCoordinate(37.7749, -122.4194),
		NewCity("Reno", "NV"):           geo.NewCoordinate(39.5296, -119.8138),
		NewCity("Salt Lake City", "UT"): geo.NewCoordinate(40.7608, -111.891),
		NewCity("Cheyenne", "WY"):       geo.NewCoordinate(41.14, -104.8202),
		NewCity("Omaha", "NE"):          geo.NewCoordinate(41.2565, -95.9345),
		NewCity("Des Moines", "IA"):     geo.NewCoordinate(41.5868, -93.625),
		NewCity("Davenport", "IA"):      geo.NewCoordinate(41.5236, -90.5776),
		NewCity("Chicago", "IL"):        geo.NewCoordinate(41.8781, -87.6298),
		NewCity("Gary", "IN"):           geo.NewCoordinate(41.5934, -87.3464),
		NewCity("Cleveland", "OH"):      geo.NewCoordinate(41.4993, -81.6944),
		NewCity("Youngstown", "OH"):     geo.NewCoordinate(41.0998, -80.6495),
		NewCity("New York City", "NY"):  geo.NewCoordinate(40.7128, -74.006),

		NewCity("West Palm Beach", "FL"): geo.NewCoordinate(26.7153, -80.0534),
		NewCity("Daytona Beach", "FL"):   geo.NewCoordinate(29.2108, -81.0228),
		NewCity("Savannah", "GA"):        geo.NewCoordinate(32.0809, -81.0912),
		NewCity("Florence", "SC"):        geo.NewCoordinate(34.1954, -79.7626),
		NewCity("Fayetteville", "NC"):    geo.NewCoordinate(35.0527, -78.8784),
		NewCity("Richmond", "VA"):        geo.NewCoordinate(37.5407, -77.436),
		NewCity("Washington", "DC"):      geo.NewCoordinate(38.9072, -77.0369),
		NewCity("Wilmington", "DE"):      geo.NewCoordinate(39.7447, -75.5484),
		NewCity("Philadelphia", "PA"):    geo.NewCoordinate(39.9526, -75.1652),
		NewCity("Newark", "NJ"):          geo.NewCoordinate(40.7357, -74.1724),
		NewCity("New Haven", "CT"):       geo.NewCoordinate(41.3083, -72.9279),
		NewCity("Providence", "RI"):      geo.NewCoordinate(41.824, -71.4128),
		NewCity("Boston", "MA"):          geo.NewCoordinate(42.3601, -71.0589),
		NewCity("Portsmouth", "NH"):      geo.NewCoordinate(43.0718, -70.7626),
		NewCity("Portland", "ME"):        geo.NewCoordinate(43.6591, -70.2568),
	})
}
