package services

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"
)

var (
	citiesCache   []string
	citiesMutex   sync.RWMutex
	lastCityFetch time.Time
)

// FetchCities returns the list of Nigerian states used by location
// pickers, cached for a day. A failed fetch yields an empty list so the
// pickers degrade to free-text input instead of blocking the page.
func FetchCities() []string {
	citiesMutex.RLock()
	if time.Since(lastCityFetch) < 24*time.Hour && citiesCache != nil {
		cities := citiesCache
		citiesMutex.RUnlock()
		return cities
	}
	citiesMutex.RUnlock()

	log.Println("Fetching fresh city list...")
	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get("https://nga-states-lga.onrender.com/fetch")
	if err != nil {
		log.Printf("Failed to fetch cities: %v", err)
		return []string{}
	}
	defer resp.Body.Close()

	var names []string
	if err := json.NewDecoder(resp.Body).Decode(&names); err != nil {
		log.Printf("Failed to decode city list: %v", err)
		return []string{}
	}

	citiesMutex.Lock()
	citiesCache = names
	lastCityFetch = time.Now()
	citiesMutex.Unlock()

	return names
}
