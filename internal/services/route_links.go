package services

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"pathwise/pkg/utils"
)

const (
	mapsDirectionsBase = "https://www.google.com/maps/dir/"
	flightsSearchBase  = "https://www.google.com/travel/flights"

	// A directions link with a single stop is not useful.
	minPlacesForRoute = 2
)

// BuildDirectionsLink chains every place, qualified by the destination, into
// one Google Maps directions URL. Callers only pass two or more places.
func BuildDirectionsLink(places []string, destination string) string {
	segments := make([]string, 0, len(places))
	for _, place := range places {
		segments = append(segments, url.QueryEscape(place+" "+destination))
	}
	return mapsDirectionsBase + strings.Join(segments, "/")
}

// BuildRouteLink is the origin -> destination directions URL.
func BuildRouteLink(origin, destination string) string {
	return mapsDirectionsBase + url.QueryEscape(origin) + "/" + url.QueryEscape(destination)
}

// BuildFlightsLink builds a Google Flights free-text search for a round trip.
func BuildFlightsLink(origin, destination string, departure, ret time.Time) string {
	return fmt.Sprintf("%s?q=Flights+from+%s+to+%s+on+%s+returning+on+%s",
		flightsSearchBase,
		url.QueryEscape(origin),
		url.QueryEscape(destination),
		utils.FormatDate(departure),
		utils.FormatDate(ret),
	)
}

// DayRouteLink is a parsed day with its directions URL, which is empty when
// the day has fewer than two places.
type DayRouteLink struct {
	Day     string   `json:"day"`
	Places  []string `json:"places"`
	MapsURL string   `json:"maps_url,omitempty"`
}

func BuildDayRoutes(mapping RouteMapping, destination string) []DayRouteLink {
	routes := make([]DayRouteLink, 0, mapping.Len())
	for _, day := range mapping.Days() {
		link := DayRouteLink{Day: day.Day, Places: day.Places}
		if len(day.Places) >= minPlacesForRoute {
			link.MapsURL = BuildDirectionsLink(day.Places, destination)
		}
		routes = append(routes, link)
	}
	return routes
}
