package models

import "time"

// HourCount - число записей в час суток (0-23)
type HourCount struct {
	Hour  int
	Count int
}

// DailyAnalytics - сводка по частым местам пользователя на сегодня
type DailyAnalytics struct {
	FrequentLocations   []*TrackedLocation
	IncidentsByLocation []LocationIncident
	PeakHours           map[int]int
	DailyPeakHour       *PeakHour
}

// LocationIncident - активный инцидент рядом с одним из частых мест
type LocationIncident struct {
	LocationName string
	Incident     PublicIncident
}

type PeakHour struct {
	Hour  int
	Time  string
	Count int
}

// PeakHoursComparison - инциденты по часам за 30 дней: обычные дни и дни событий
type PeakHoursComparison struct {
	NormalDays map[int]int
	EventDays  map[int]int
}

// TravelPoint - travel_start/travel_end из истории поездок
type TravelPoint struct {
	Name       string
	Type       LocationType
	SearchedAt time.Time
}

// FrequentRoute - маршрут из последовательных travel_start -> travel_end
type FrequentRoute struct {
	From    string
	To      string
	Count   int
	AvgHour float64
}

// DayTrips - записи о поездках за сутки
type DayTrips struct {
	Date      time.Time
	TripCount int
}

// PersonalAnalytics - привычные маршруты, час пик и поездки за неделю
type PersonalAnalytics struct {
	MostFrequentRoutes []FrequentRoute
	PeakHour           *PeakHour
	WeeklyTrips        []DayTrips
	TotalTrips         int
}

// DestinationCount - частота travel_end в окне +-2 часа от текущего
type DestinationCount struct {
	Name      string
	Frequency int
	AvgHour   float64
}

// DestinationPrediction - вероятное место назначения в текущее время
type DestinationPrediction struct {
	HasHistory           bool
	PredictedDestination string
	PredictedTraffic     string
	Confidence           string
	TypicalTime          string
	Message              string
}
