package server

// Inbound payload shapes. Fields the client omits take their zero value;
// validation happens in the engine, not here.

type pulsePayload struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type attackPayload struct {
	FromLat float64 `json:"fromLat"`
	FromLon float64 `json:"fromLon"`
	ToLat   float64 `json:"toLat"`
	ToLon   float64 `json:"toLon"`
	Type    string  `json:"attackType"`
	Cost    int     `json:"cost"`
}

type destroyPayload struct {
	LocationKey string   `json:"locationKey"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

type periodPayload struct {
	Period string `json:"period"`
}

type scorePayload struct {
	UserID   string `json:"userId"`
	Score    int    `json:"score"`
	Name     string `json:"userName"`
	Avatar   string `json:"avatar"`
	Country  string `json:"country"`
	Provider string `json:"provider"`
}

type defensePayload struct {
	Shield      int `json:"shield"`
	Armor       int `json:"armor"`
	Interceptor int `json:"interceptor"`
}
