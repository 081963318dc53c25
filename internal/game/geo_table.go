package game

// countryBox is an axis-aligned lat/lon bounding box for one country.
// Boxes overlap; classification takes the first match in table order.
type countryBox struct {
	Code   string
	Name   string
	MinLat float64
	MinLon float64
	MaxLat float64
	MaxLon float64
}

var countryBoxes = []countryBox{
	{"US", "United States of America", 25.8, -125, 49.4, -66.9},
	{"CA", "Canada", 41.7, -141, 83.1, -52.6},
	{"MX", "Mexico", 14.5, -117.1, 31.0, -86.8},
	{"BR", "Brazil", -33.8, -73.9, 5.2, -34.8},
	{"AR", "Argentina", -56.2, -73.6, -21.8, -53.6},
	{"CL", "Chile", -56.5, -81.4, -17.5, -66.4},
	{"CO", "Colombia", -4.2, -77.3, 12.5, -66.9},
	{"PE", "Peru", -18, -81.5, 0.5, -68.7},
	{"GB", "United Kingdom", 50, -7.6, 58.6, 1.8},
	{"FR", "France", 41.3, -5.2, 50.0, 6.0},
	{"DE", "Germany", 47.3, 5.8, 55.1, 15.1},
	{"IT", "Italy", 36.6, 6.6, 47.0, 18.5},
	{"ES", "Spain", 36.0, -9.3, 43.9, 3.0},
	{"PT", "Portugal", 37.2, -9.5, 42.0, -6.2},
	{"NL", "Netherlands", 50.7, 3.4, 53.6, 7.2},
	{"BE", "Belgium", 49.5, 2.4, 51.5, 6.4},
	{"CH", "Switzerland", 45.8, 5.9, 47.8, 10.5},
	{"AT", "Austria", 46.4, 9.5, 49.0, 17.2},
	{"PL", "Poland", 49.0, 14.1, 54.8, 24.1},
	{"CZ", "Czech Republic", 48.6, 12.1, 51.0, 18.9},
	{"RO", "Romania", 43.7, 20.3, 48.2, 29.6},
	{"BG", "Bulgaria", 41.2, 22.4, 44.2, 28.6},
	{"GR", "Greece", 34.8, 19.4, 41.7, 28.2},
	{"TR", "Turkey", 35.8, 26.1, 42.8, 44.8},
	{"RU", "Russia", 50.0, 19.6, 81.9, 169.6},
	{"UA", "Ukraine", 43.4, 22.2, 52.4, 40.2},
	{"KZ", "Kazakhstan", 40.6, 51.9, 68.8, 87.3},
	{"UZ", "Uzbekistan", 37.2, 55.4, 45.6, 73.2},
	{"TM", "Turkmenistan", 35.3, 52.5, 42.8, 66.7},
	{"KG", "Kyrgyzstan", 39.2, 69.3, 43.3, 80.3},
	{"TJ", "Tajikistan", 36.7, 67.5, 37.5, 75.5},
	{"AF", "Afghanistan", 29.3, 60.5, 38.5, 75.2},
	{"PK", "Pakistan", 23.7, 60.9, 37.1, 77.8},
	{"IN", "India", 8.1, 68.2, 28.0, 97.4},
	{"BD", "Bangladesh", 20.7, 88.0, 26.6, 92.7},
	{"NP", "Nepal", 26.4, 80.1, 30.4, 88.2},
	{"BT", "Bhutan", 27.0, 88.8, 28.3, 92.1},
	{"LK", "Sri Lanka", 5.9, 79.7, 7.7, 81.9},
	{"MM", "Myanmar", 9.2, 92.2, 20.0, 101.2},
	{"TH", "Thailand", 5.6, 97.3, 20.5, 105.6},
	{"LA", "Laos", 13.9, 100.1, 22.5, 107.6},
	{"KH", "Cambodia", 10.4, 102.3, 14.7, 107.6},
	{"VN", "Vietnam", 8.6, 102.1, 23.4, 109.5},
	{"MY", "Malaysia", 0.9, 99.6, 6.4, 119.3},
	{"SG", "Singapore", 1.3, 103.6, 1.5, 104.0},
	{"ID", "Indonesia", -10.9, 95.3, 5.9, 141.0},
	{"PH", "Philippines", 5.0, 119.0, 19.0, 126.6},
	{"TW", "Taiwan", 21.9, 120.0, 25.3, 121.9},
	{"JP", "Japan", 30.4, 129.0, 45.6, 145.8},
	{"KR", "South Korea", 33.1, 124.6, 38.6, 131.9},
	{"KP", "North Korea", 37.0, 124.1, 42.9, 130.8},
	{"CN", "China", 18.2, 73.5, 54.0, 119.8},
	{"MN", "Mongolia", 41.6, 87.7, 50.3, 119.9},
	{"AU", "Australia", -43.6, 112.9, -10.7, 154.3},
	{"NZ", "New Zealand", -47.3, 166.4, -34.4, 178.6},
	{"FJ", "Fiji", -18.3, 177.1, -16.1, -177.0},
	{"PG", "Papua New Guinea", -12.2, 141.0, -1.4, 159.0},
	{"ZA", "South Africa", -34.8, 16.3, -22.1, 32.8},
	{"EG", "Egypt", 21.7, 24.7, 31.6, 36.9},
	{"NG", "Nigeria", 4.4, 2.7, 13.9, 14.7},
	{"ET", "Ethiopia", 3.4, 33.0, 14.9, 47.8},
	{"KE", "Kenya", -4.7, 33.9, 5.0, 41.9},
	{"TZ", "Tanzania", -11.7, 29.3, -0.9, 40.3},
	{"UG", "Uganda", -1.5, 29.6, 4.2, 35.4},
	{"DZ", "Algeria", 18.9, -8.7, 37.1, 12.0},
	{"MA", "Morocco", 27.1, -13.2, 35.9, -2.6},
	{"IL", "Israel", 31.0, 34.2, 33.3, 35.9},
	{"SA", "Saudi Arabia", 16.4, 34.4, 32.1, 55.9},
	{"AE", "United Arab Emirates", 22.5, 51.5, 26.2, 56.4},
	{"IQ", "Iraq", 29.1, 38.8, 37.4, 48.6},
	{"IR", "Iran", 25.1, 44.0, 39.8, 63.3},
	{"SY", "Syria", 32.3, 35.7, 37.3, 42.4},
	{"JO", "Jordan", 31.2, 34.9, 32.8, 39.3},
	{"LB", "Lebanon", 33.1, 35.1, 34.6, 36.6},
	{"PS", "Palestine", 31.4, 34.2, 32.5, 35.5},
	{"SV", "El Salvador", 12.8, -91.0, 14.5, -88.0},
	{"GT", "Guatemala", 13.7, -92.2, 17.8, -88.2},
	{"BZ", "Belize", 15.5, -89.2, 18.5, -87.5},
	{"HN", "Honduras", 12.9, -89.4, 17.6, -83.1},
	{"NI", "Nicaragua", 10.7, -87.6, 15.0, -83.6},
	{"CR", "Costa Rica", 8.0, -85.9, 11.2, -82.5},
	{"PA", "Panama", 7.2, -82.9, 10.0, -77.2},
	{"CU", "Cuba", 19.8, -84.9, 20.5, -74.1},
	{"DO", "Dominican Republic", 17.6, -74.5, 19.9, -68.3},
	{"HT", "Haiti", 18.0, -74.5, 20.1, -71.9},
	{"JM", "Jamaica", 17.7, -78.4, 18.5, -76.7},
	{"PR", "Puerto Rico", 17.9, -67.3, 18.6, -65.2},
	{"VE", "Venezuela", 0.6, -73.5, 12.8, -59.8},
	{"GY", "Guyana", 1.2, -61.4, 8.6, -56.5},
	{"SR", "Suriname", 1.8, -58.0, 6.0, -53.9},
	{"GF", "French Guiana", 2.1, -54.6, 5.8, -51.6},
	{"EC", "Ecuador", -5.0, -81.1, 1.4, -75.2},
	{"BO", "Bolivia", -22.9, -69.6, -9.8, -57.5},
	{"PY", "Paraguay", -27.6, -63.1, -19.3, -54.3},
	{"UY", "Uruguay", -34.9, -58.4, -30.1, -53.2},
	{"NO", "Norway", 57.9, 4.7, 71.2, 31.3},
	{"SE", "Sweden", 55.4, 10.9, 69.1, 24.2},
	{"FI", "Finland", 59.8, 19.1, 70.1, 31.6},
	{"DK", "Denmark", 54.6, 8.1, 57.7, 12.7},
	{"IS", "Iceland", 63.4, -24.5, 66.5, -13.5},
	{"HU", "Hungary", 45.7, 16.1, 48.6, 22.9},
	{"SK", "Slovakia", 47.7, 16.9, 49.6, 22.3},
	{"SI", "Slovenia", 45.4, 13.4, 46.8, 16.6},
	{"HR", "Croatia", 42.4, 12.4, 47.2, 19.4},
	{"BA", "Bosnia and Herzegovina", 42.6, 15.7, 45.3, 19.7},
	{"RS", "Serbia", 42.2, 18.8, 46.2, 23.0},
	{"ME", "Montenegro", 41.9, 18.4, 43.5, 20.4},
	{"MK", "North Macedonia", 40.8, 20.5, 42.4, 22.9},
	{"AL", "Albania", 39.6, 19.3, 42.7, 21.0},
}
