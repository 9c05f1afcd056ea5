// README: Activity catalog search backed by Google Places text search.
package catalog

import (
	"context"
	"fmt"
	"strings"

	"googlemaps.github.io/maps"

	"aura/internal/modules/schedule"
	"aura/internal/types"
)

// themeQueries maps catalog themes to Places search terms. Themes outside the
// table fall back to "<theme> clinic".
var themeQueries = map[string]string{
	"skincare":        "skin care clinic",
	"plastic-surgery": "plastic surgery clinic",
	"dental":          "dental clinic",
	"hair":            "hair salon",
	"spa":             "spa",
	"wellness":        "wellness center",
}

// Chains and storefronts that show up in broad clinic searches but are not
// bookable treatment providers.
var excludedNames = []string{
	"Pharmacy", "Drugstore", "Olive Young", "Supermarket", "Mart",
	"Convenience Store", "Department Store",
}

// Service turns Places results into catalog activities a caller can feed back
// into a structured trip-planner request. It is a catalog source only; the
// synthesis pipeline never calls it, so the absence of a Places key simply
// disables this endpoint.
type Service struct {
	client *maps.Client
}

// NewService creates a Service with the given API key.
func NewService(apiKey string) (*Service, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &Service{client: client}, nil
}

// Search looks up real activities for each theme in the region and returns
// them grouped by theme, at most perTheme entries each.
func (s *Service) Search(ctx context.Context, region string, themes []string, perTheme int) (map[string][]schedule.Activity, error) {
	if perTheme <= 0 {
		perTheme = 3
	}

	byTheme := make(map[string][]schedule.Activity, len(themes))
	for _, theme := range themes {
		acts, err := s.searchTheme(ctx, region, theme, perTheme)
		if err != nil {
			return nil, err
		}
		if len(acts) > 0 {
			byTheme[theme] = acts
		}
	}
	return byTheme, nil
}

func (s *Service) searchTheme(ctx context.Context, region, theme string, limit int) ([]schedule.Activity, error) {
	query, ok := themeQueries[strings.ToLower(theme)]
	if !ok {
		query = theme + " clinic"
	}
	if region != "" {
		query = fmt.Sprintf("%s in %s", query, region)
	}

	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    query,
		Language: "en",
	})
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	var results []schedule.Activity
	for _, result := range resp.Results {
		if excludedName(result.Name) {
			continue
		}

		results = append(results, schedule.Activity{
			ActivityID: "place_" + result.PlaceID,
			Name:       result.Name,
			Location:   schedule.Location{Name: result.FormattedAddress},
			Price:      types.Money{Amount: estimatePrice(theme, result.PriceLevel), Currency: "USD"},
			Theme:      theme,
		})

		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

func excludedName(name string) bool {
	for _, kw := range excludedNames {
		if strings.Contains(strings.ToLower(name), strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

// estimatePrice derives a rough per-visit USD price from the theme and the
// Places price level (0-4). Catalog consumers may override per item.
func estimatePrice(theme string, priceLevel int) int64 {
	base := int64(200)
	switch strings.ToLower(theme) {
	case "plastic-surgery":
		base = 1500
	case "dental":
		base = 400
	case "skincare":
		base = 250
	case "spa", "wellness":
		base = 150
	case "hair":
		base = 100
	}
	if priceLevel > 2 {
		base += base / 2
	}
	return base
}
