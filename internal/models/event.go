package models

import "time"

// Event - городское событие (праздник, марафон), влияющее на движение
type Event struct {
	ID                int64     `json:"id"`
	Type              string    `json:"event_type"`
	NameEn            string    `json:"name_en"`
	NameAm            string    `json:"name_am"`
	DescriptionEn     string    `json:"description_en"`
	DescriptionAm     string    `json:"description_am"`
	Date              time.Time `json:"event_date"`
	EthiopianDate     string    `json:"ethiopian_date"`
	StartTime         string    `json:"start_time,omitempty"`
	EndTime           string    `json:"end_time,omitempty"`
	IsRecurring       bool      `json:"is_recurring"`
	RecurrencePattern string    `json:"recurrence_pattern,omitempty"`
	AffectedArea      string    `json:"affected_area"`
	AffectedRoads     []string  `json:"affected_roads"`
	CreatedAt         time.Time `json:"created_at"`
}

// RoadClosure - перекрытие дороги на время события
type RoadClosure struct {
	ID                        int64     `json:"id"`
	EventID                   int64     `json:"event_id"`
	RoadName                  string    `json:"road_name"`
	StartLatitude             float64   `json:"start_latitude"`
	StartLongitude            float64   `json:"start_longitude"`
	EndLatitude               float64   `json:"end_latitude"`
	EndLongitude              float64   `json:"end_longitude"`
	ClosureStart              time.Time `json:"closure_start"`
	ClosureEnd                time.Time `json:"closure_end"`
	AlternateRouteDescription string    `json:"alternate_route_description"`
	Severity                  Severity  `json:"severity"`
}

// DaySchedule - события даты и перекрытия, пересекающиеся с этими сутками
type DaySchedule struct {
	Events       []*Event
	RoadClosures []*RoadClosure
}
