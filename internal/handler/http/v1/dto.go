package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/etraffic/internal/models"
)

// CreateIncidentRequest DTO для подачи отчёта об инциденте.
// latitude/longitude - место инцидента, reportedLatitude/reportedLongitude - GPS устройства.
// @Description DTO для подачи отчёта об инциденте
type CreateIncidentRequest struct {
	IncidentType        string   `json:"incidentType" validate:"required,oneof=major_accident heavy_congestion road_construction"`
	Latitude            *float64 `json:"latitude" validate:"required,latitude"`
	Longitude           *float64 `json:"longitude" validate:"required,longitude"`
	ReportedLatitude    *float64 `json:"reportedLatitude" validate:"required,latitude"`
	ReportedLongitude   *float64 `json:"reportedLongitude" validate:"required,longitude"`
	Description         string   `json:"description" validate:"required,min=10,max=2000"`
	NumberOfVehicles    *int     `json:"numberOfVehicles,omitempty" validate:"omitempty,gte=0,lte=1000"`
	LocationDescription string   `json:"locationDescription,omitempty" validate:"max=255"`
}

// IntakeResponse DTO ответа на принятый отчёт
// @Description DTO ответа на принятый отчёт
type IntakeResponse struct {
	ID                  uuid.UUID `json:"id"`
	Message             string    `json:"message"`
	CoinsAwarded        int       `json:"coinsAwarded"`
	CredibilityScore    float64   `json:"credibilityScore"`
	SimilarReportsCount int       `json:"similarReportsCount"`
	Severity            string    `json:"severity"`
	IsVerified          bool      `json:"isVerified"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"userId"`
	IncidentType        string    `json:"incidentType"`
	Severity            string    `json:"severity"`
	Description         string    `json:"description"`
	LocationDescription string    `json:"locationDescription,omitempty"`
	NumberOfVehicles    *int      `json:"numberOfVehicles,omitempty"`
	Latitude            float64   `json:"latitude"`
	Longitude           float64   `json:"longitude"`
	GPSDistanceMeters   float64   `json:"gpsDistanceMeters"`
	CredibilityScore    float64   `json:"credibilityScore"`
	SimilarReportsCount int       `json:"similarReportsCount"`
	IsVerified          bool      `json:"isVerified"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	Total           int            `json:"total"`
	Active          int            `json:"active"`
	ByType          map[string]int `json:"byType"`
	BySeverity      map[string]int `json:"bySeverity"`
	ActiveReporters int            `json:"activeReporters"`
	WindowMinutes   int            `json:"windowMinutes"`
}

// RegisterRequest DTO регистрации
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Username string `json:"username" validate:"required,alphanum,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	FullName string `json:"fullName,omitempty" validate:"max=255"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// UserResponse DTO пользователя без хеша пароля
type UserResponse struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	FullName    string    `json:"fullName,omitempty"`
	Role        string    `json:"role"`
	IsVerified  bool      `json:"isVerified"`
	IsTrusted   bool      `json:"isTrusted"`
	IsBanned    bool      `json:"isBanned"`
	BanReason   string    `json:"banReason,omitempty"`
	GPSWarnings int       `json:"gpsWarnings"`
	Coins       int       `json:"coins"`
	CreatedAt   time.Time `json:"createdAt"`
}

type CoinBalanceResponse struct {
	Coins          int     `json:"coins"`
	BirrEquivalent float64 `json:"birrEquivalent"`
}

type CoinTransactionResponse struct {
	ID          int64      `json:"id"`
	Amount      int        `json:"amount"`
	Type        string     `json:"transactionType"`
	IncidentID  *uuid.UUID `json:"incidentId,omitempty"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type ConvertCoinsRequest struct {
	Amount int `json:"amount" validate:"required,gt=0"`
}

type ConvertCoinsResponse struct {
	Message        string  `json:"message"`
	ConvertedCoins int     `json:"convertedCoins"`
	BirrAmount     float64 `json:"birrAmount"`
	NewBalance     int     `json:"newBalance"`
}

type BanUserRequest struct {
	Reason string `json:"reason" validate:"required,min=3,max=500"`
}

type VerifyUserRequest struct {
	Trusted bool `json:"trusted"`
}

// TrackLocationRequest DTO отслеживания места; locationType по умолчанию search
type TrackLocationRequest struct {
	LocationName string   `json:"locationName" validate:"required,max=255"`
	Latitude     *float64 `json:"latitude" validate:"required,latitude"`
	Longitude    *float64 `json:"longitude" validate:"required,longitude"`
	LocationType string   `json:"locationType,omitempty" validate:"omitempty,oneof=travel_start travel_end search"`
}

type TrackLocationResponse struct {
	Message    string `json:"message"`
	LocationID int64  `json:"locationId"`
}

type LocationResponse struct {
	ID             int64     `json:"id"`
	LocationName   string    `json:"locationName"`
	LocationType   string    `json:"locationType"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	SearchCount    int       `json:"searchCount"`
	LastSearchedAt time.Time `json:"lastSearchedAt"`
}

// TripResponse DTO поездки из истории поиска
type TripResponse struct {
	FromLocation               string                  `json:"fromLocation"`
	ToLocation                 string                  `json:"toLocation"`
	FromLatitude               float64                 `json:"fromLatitude"`
	FromLongitude              float64                 `json:"fromLongitude"`
	ToLatitude                 float64                 `json:"toLatitude"`
	ToLongitude                float64                 `json:"toLongitude"`
	StartTime                  time.Time               `json:"startTime"`
	EndTime                    time.Time               `json:"endTime"`
	DistanceKm                 float64                 `json:"distanceKm"`
	AvgSpeedKmh                float64                 `json:"avgSpeedKmh"`
	TravelTimeMinutes          int                     `json:"travelTimeMinutes"`
	EstimatedTravelTimeMinutes int                     `json:"estimatedTravelTimeMinutes"`
	Incidents                  []models.NearbyIncident `json:"incidents"`
}

type RoutePredictionResponse struct {
	FromLocation      string `json:"fromLocation"`
	ToLocation        string `json:"toLocation"`
	PredictedTime     string `json:"predictedTime"`
	PredictedTraffic  string `json:"predictedTraffic"`
	PredictedSpeed    int    `json:"predictedSpeed"`
	EstimatedDuration int    `json:"estimatedDuration"`
	IncidentAlert     string `json:"incidentAlert"`
	Confidence        string `json:"confidence"`
	Frequency         int    `json:"frequency"`
}

// PredictionEnvelope - prediction равен null, если привычных маршрутов нет
type PredictionEnvelope struct {
	Prediction *RoutePredictionResponse `json:"prediction"`
	Message    string                   `json:"message"`
}

// AlertsQuery - параметры GET /alerts; radius в метрах, по умолчанию 5000
type AlertsQuery struct {
	Latitude  *float64 `form:"latitude" validate:"required,latitude"`
	Longitude *float64 `form:"longitude" validate:"required,longitude"`
	Radius    float64  `form:"radius" validate:"omitempty,gt=0,lte=50000"`
}

type AlertResponse struct {
	ID                  string     `json:"id"`
	AlertType           string     `json:"alertType"`
	Title               string     `json:"title"`
	Message             string     `json:"message"`
	Latitude            float64    `json:"latitude"`
	Longitude           float64    `json:"longitude"`
	Distance            float64    `json:"distance"`
	Severity            string     `json:"severity"`
	IsRead              bool       `json:"isRead"`
	IncidentID          *uuid.UUID `json:"incidentId,omitempty"`
	LocationDescription string     `json:"locationDescription,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

type EventResponse struct {
	ID                int64     `json:"id"`
	EventType         string    `json:"eventType"`
	NameEn            string    `json:"nameEn"`
	NameAm            string    `json:"nameAm"`
	DescriptionEn     string    `json:"descriptionEn"`
	DescriptionAm     string    `json:"descriptionAm"`
	EventDate         string    `json:"eventDate"`
	EthiopianDate     string    `json:"ethiopianDate"`
	StartTime         string    `json:"startTime,omitempty"`
	EndTime           string    `json:"endTime,omitempty"`
	IsRecurring       bool      `json:"isRecurring"`
	RecurrencePattern string    `json:"recurrencePattern,omitempty"`
	AffectedArea      string    `json:"affectedArea"`
	AffectedRoads     []string  `json:"affectedRoads"`
	CreatedAt         time.Time `json:"createdAt"`
}

type RoadClosureResponse struct {
	ID                        int64     `json:"id"`
	EventID                   int64     `json:"eventId"`
	RoadName                  string    `json:"roadName"`
	StartLatitude             float64   `json:"startLatitude"`
	StartLongitude            float64   `json:"startLongitude"`
	EndLatitude               float64   `json:"endLatitude"`
	EndLongitude              float64   `json:"endLongitude"`
	ClosureStart              time.Time `json:"closureStart"`
	ClosureEnd                time.Time `json:"closureEnd"`
	AlternateRouteDescription string    `json:"alternateRouteDescription"`
	Severity                  string    `json:"severity"`
}

type ScheduleResponse struct {
	Events       []EventResponse       `json:"events"`
	RoadClosures []RoadClosureResponse `json:"roadClosures"`
}

type PeakHourResponse struct {
	Hour  int    `json:"hour"`
	Time  string `json:"time"`
	Count int    `json:"count"`
}

type LocationIncidentResponse struct {
	LocationName string                `json:"locationName"`
	Incident     models.PublicIncident `json:"incident"`
}

type DailyAnalyticsResponse struct {
	FrequentLocations   []LocationResponse         `json:"frequentLocations"`
	IncidentsByLocation []LocationIncidentResponse `json:"incidentsByLocation"`
	PeakHours           map[int]int                `json:"peakHours"`
	DailyPeakHour       *PeakHourResponse          `json:"dailyPeakHour"`
}

type PeakHoursResponse struct {
	NormalDays map[int]int `json:"normalDays"`
	EventDays  map[int]int `json:"eventDays"`
}

type FrequentRouteResponse struct {
	Route   string  `json:"route"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Count   int     `json:"count"`
	AvgHour float64 `json:"avgHour"`
}

type DayTripsResponse struct {
	Date      string `json:"date"`
	TripCount int    `json:"tripCount"`
}

type PersonalAnalyticsResponse struct {
	MostFrequentRoutes []FrequentRouteResponse `json:"mostFrequentRoutes"`
	PeakHour           *PeakHourResponse       `json:"peakHour"`
	WeeklyTrips        []DayTripsResponse      `json:"weeklyTrips"`
	TotalTrips         int                     `json:"totalTrips"`
}

type DestinationPredictionResponse struct {
	HasHistory           bool   `json:"hasHistory"`
	PredictedDestination string `json:"predictedDestination,omitempty"`
	PredictedTraffic     string `json:"predictedTraffic,omitempty"`
	Confidence           string `json:"confidence,omitempty"`
	TypicalTime          string `json:"typicalTime,omitempty"`
	Message              string `json:"message"`
}
