package request_models

type GenerateTripRequest struct {
	Destination string `json:"destination" binding:"required"`
	// TripLength is free text as typed by the user; it must hold a whole number of days.
	TripLength    string `json:"trip_length" binding:"required"`
	Interest      string `json:"interest"`
	DepartureDate string `json:"departure_date"` // YYYY-MM-DD, defaults to today
	Origin        string `json:"origin"`         // overrides IP-based detection when set
}

type RefineTripRequest struct {
	Feedback       string `json:"feedback" binding:"required"`
	ReestimateCost bool   `json:"reestimate_cost"`
}
