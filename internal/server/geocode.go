package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"PulseMap/internal/game"
)

const defaultGeocodeBase = "https://api.bigdatacloud.net/data/reverse-geocode-client"

// GeocodeClient resolves coordinates to country and locality detail through
// the BigDataCloud reverse-geocode endpoint. Results are cached per rounded
// coordinate pair; the globe is big but the agent revisits cells rarely
// enough that the cache never needs eviction.
type GeocodeClient struct {
	base   string
	client *http.Client
	log    zerolog.Logger

	mu    sync.Mutex
	cache map[string]*game.GeoData
}

func NewGeocodeClient(timeout time.Duration, log zerolog.Logger) *GeocodeClient {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &GeocodeClient{
		base:   defaultGeocodeBase,
		client: &http.Client{Timeout: timeout},
		log:    log,
		cache:  make(map[string]*game.GeoData),
	}
}

type geocodeResponse struct {
	CountryCode          string `json:"countryCode"`
	CountryName          string `json:"countryName"`
	City                 string `json:"city"`
	Locality             string `json:"locality"`
	PrincipalSubdivision string `json:"principalSubdivision"`
	LocalityInfo         struct {
		Informative []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"informative"`
	} `json:"localityInfo"`
}

// Lookup implements game.Geocoder.
func (g *GeocodeClient) Lookup(ctx context.Context, lat, lon float64) (*game.GeoData, error) {
	key := fmt.Sprintf("%.5f,%.5f", lat, lon)

	g.mu.Lock()
	if cached, ok := g.cache[key]; ok {
		g.mu.Unlock()
		return cached, nil
	}
	g.mu.Unlock()

	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%f", lat))
	q.Set("longitude", fmt.Sprintf("%f", lon))
	q.Set("localityLanguage", "en")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.base+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode status %d", resp.StatusCode)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geocode decode: %w", err)
	}

	geo := body.toGeoData()
	g.mu.Lock()
	g.cache[key] = geo
	g.mu.Unlock()

	g.log.Debug().Str("key", key).Str("country", geo.CountryCode).Bool("water", geo.IsWater).Msg("geocode resolved")
	return geo, nil
}

func (r geocodeResponse) toGeoData() *game.GeoData {
	city := r.City
	if city == "" {
		city = r.Locality
	}
	water := r.CountryCode == ""
	for _, info := range r.LocalityInfo.Informative {
		desc := strings.ToLower(info.Description + " " + info.Name)
		if strings.Contains(desc, "ocean") || strings.Contains(desc, "sea") {
			water = true
		}
	}
	return &game.GeoData{
		CountryCode: r.CountryCode,
		CountryName: r.CountryName,
		City:        city,
		State:       r.PrincipalSubdivision,
		IsWater:     water,
	}
}

// CacheSize reports the number of cached cells.
func (g *GeocodeClient) CacheSize() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.cache)
}
