package game

// seedBox is a tighter per-country box than the classifier table, so seed
// beacons land inside the intended country most of the time.
type seedBox struct {
	Code   string
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

var seedBoxes = []seedBox{
	{"US", 24.5210, 49.3844, -125.0011, -66.9326},
	{"GB", 50.0229, 58.6350, -7.5721, 1.7628},
	{"DE", 47.2701, 55.0996, 5.8663, 15.0419},
	{"JP", 30.3966, 45.5514, 130.4017, 145.8369},
	{"BR", -33.7683, 5.2419, -73.9830, -34.7725},
	{"AU", -43.6345, -10.6718, 112.9211, 154.3021},
	{"IN", 8.0883, 35.5047, 68.1766, 97.4025},
	{"CA", 41.6765, 83.1096, -141.0017, -52.6480},
	{"FR", 42.4314, 51.1242, -5.1422, 8.2275},
	{"ES", 36.0021, 43.7483, -9.2393, 3.0910},
	{"IT", 36.6230, 47.0921, 6.6272, 18.5203},
	{"RU", 41.1850, 81.8554, 19.6389, 169.6007},
	{"CN", 18.2671, 53.5604, 73.5057, 135.0865},
	{"MX", 14.5345, 32.7186, -117.1205, -86.8108},
	{"ZA", -34.8212, -22.0529, 16.3449, 32.8305},
}

// SeedIfEmpty places one starter beacon per seed country when the world came
// up without restored state, so the auto-agent has something to shoot at.
func (w *World) SeedIfEmpty() int {
	if w.LiveCount() > 0 {
		return 0
	}
	placed := 0
	for _, box := range seedBoxes {
		lat, lon := RandomPointInBox(w.rng, box.MinLat, box.MinLon, box.MaxLat, box.MaxLon)
		if w.SubmitPulse(lat, lon, "seed", "", "", nil) != nil {
			placed++
		}
	}
	w.log.Info().Int("count", placed).Msg("seeded starter beacons")
	return placed
}
