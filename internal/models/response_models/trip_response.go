package response_models

// TripPlanResponse is what the page renders after generate, refine or reload.
type TripPlanResponse struct {
	SessionToken  string         `json:"session_token,omitempty"`
	Destination   string         `json:"destination"`
	TripLength    string         `json:"trip_length"`
	Interest      string         `json:"interest"`
	Origin        string         `json:"origin"`
	DepartureDate string         `json:"departure_date"`
	ReturnDate    string         `json:"return_date"`
	Itinerary     string         `json:"itinerary"`
	Cost          string         `json:"cost"`
	Links         TripLinks      `json:"links"`
	DayRoutes     []DayRoute     `json:"day_routes"`
	Warnings      []ParseWarning `json:"warnings"`
}

type TripLinks struct {
	Flights string `json:"flights"`
	Route   string `json:"route"`
}

type DayRoute struct {
	Day     string   `json:"day"`
	Places  []string `json:"places"`
	MapsURL string   `json:"maps_url,omitempty"`
}

type ParseWarning struct {
	Kind string `json:"kind"`
	Line int    `json:"line,omitempty"`
	Text string `json:"text"`
}

type LocationResponse struct {
	City string `json:"city"`
}
