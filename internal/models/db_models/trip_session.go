package db_models

import "time"

// TripSession is the state of one interactive planning session. The
// itinerary text is authoritative; day routes are always re-derived from it.
type TripSession struct {
	BaseModel
	Destination   string
	TripLength    string
	Interest      string
	Origin        string
	DepartureDate time.Time `gorm:"type:date"`
	ReturnDate    time.Time `gorm:"type:date"`
	Itinerary     string    `gorm:"type:text"`
	Cost          string    `gorm:"type:text"`
	ExpiresAt     int64     `gorm:"index"`
}

func (TripSession) TableName() string {
	return "trip_sessions"
}

// Expired reports whether the session is past its expiry at now.
func (s *TripSession) Expired(now time.Time) bool {
	return s.ExpiresAt != 0 && now.Unix() >= s.ExpiresAt
}
