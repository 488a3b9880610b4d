package v1

import (
	"time"

	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
)

// DTOToIncidentReport преобразует провалидированный запрос в черновик отчёта
func DTOToIncidentReport(dto CreateIncidentRequest) models.IncidentReport {
	return models.IncidentReport{
		Type:                models.IncidentType(dto.IncidentType),
		ClaimedLocation:     geo.Coordinate{Latitude: *dto.Latitude, Longitude: *dto.Longitude},
		DeviceLocation:      geo.Coordinate{Latitude: *dto.ReportedLatitude, Longitude: *dto.ReportedLongitude},
		Description:         dto.Description,
		NumberOfVehicles:    dto.NumberOfVehicles,
		LocationDescription: dto.LocationDescription,
	}
}

func IntakeResultToResponse(result *models.IntakeResult) *IntakeResponse {
	return &IntakeResponse{
		ID:                  result.ID,
		Message:             "Incident reported successfully",
		CoinsAwarded:        result.CoinsAwarded,
		CredibilityScore:    result.CredibilityScore,
		SimilarReportsCount: result.SimilarReportsCount,
		Severity:            string(result.Severity),
		IsVerified:          result.Verified,
	}
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:                  model.ID,
		UserID:              model.UserID,
		IncidentType:        string(model.Type),
		Severity:            string(model.Severity),
		Description:         model.Description,
		LocationDescription: model.LocationDescription,
		NumberOfVehicles:    model.NumberOfVehicles,
		Latitude:            model.Latitude,
		Longitude:           model.Longitude,
		GPSDistanceMeters:   model.GPSDistanceMeters,
		CredibilityScore:    model.CredibilityScore,
		SimilarReportsCount: model.SimilarReportsCount,
		IsVerified:          model.Verified,
		Status:              string(model.Status),
		CreatedAt:           model.CreatedAt,
		UpdatedAt:           model.UpdatedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(incidents []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(incidents))
	for i, model := range incidents {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

func StatsToResponse(stats *models.IncidentStats) StatsResponse {
	return StatsResponse{
		Total:           stats.Total,
		Active:          stats.Active,
		ByType:          stats.ByType,
		BySeverity:      stats.BySeverity,
		ActiveReporters: stats.ActiveReporters,
		WindowMinutes:   stats.WindowMinutes,
	}
}

func ModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		FullName:    user.FullName,
		Role:        string(user.Role),
		IsVerified:  user.IsVerified,
		IsTrusted:   user.IsTrusted,
		IsBanned:    user.IsBanned,
		BanReason:   user.BanReason,
		GPSWarnings: user.GPSWarnings,
		Coins:       user.Coins,
		CreatedAt:   user.CreatedAt,
	}
}

func ModelsToUserResponses(users []*models.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ModelToUserResponse(user)
	}
	return responses
}

func ModelsToCoinTransactionResponses(txs []*models.CoinTransaction) []CoinTransactionResponse {
	responses := make([]CoinTransactionResponse, len(txs))
	for i, tx := range txs {
		responses[i] = CoinTransactionResponse{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Type:        string(tx.Type),
			IncidentID:  tx.IncidentID,
			Description: tx.Description,
			CreatedAt:   tx.CreatedAt,
		}
	}
	return responses
}

func ModelsToLocationResponses(locations []*models.TrackedLocation) []LocationResponse {
	responses := make([]LocationResponse, len(locations))
	for i, l := range locations {
		responses[i] = LocationResponse{
			ID:             l.ID,
			LocationName:   l.Name,
			LocationType:   string(l.Type),
			Latitude:       l.Latitude,
			Longitude:      l.Longitude,
			SearchCount:    l.SearchCount,
			LastSearchedAt: l.LastSearchedAt,
		}
	}
	return responses
}

func TripSummariesToResponses(summaries []models.TripSummary) []TripResponse {
	responses := make([]TripResponse, len(summaries))
	for i, s := range summaries {
		incidents := s.Incidents
		if incidents == nil {
			incidents = []models.NearbyIncident{}
		}
		responses[i] = TripResponse{
			FromLocation:               s.FromName,
			ToLocation:                 s.ToName,
			FromLatitude:               s.From.Latitude,
			FromLongitude:              s.From.Longitude,
			ToLatitude:                 s.To.Latitude,
			ToLongitude:                s.To.Longitude,
			StartTime:                  s.StartedAt,
			EndTime:                    s.EndedAt,
			DistanceKm:                 s.DistanceKm,
			AvgSpeedKmh:                s.AvgSpeedKmh,
			TravelTimeMinutes:          s.TravelTimeMinutes,
			EstimatedTravelTimeMinutes: s.EstimatedTravelTimeMinutes,
			Incidents:                  incidents,
		}
	}
	return responses
}

func RoutePredictionToResponse(p *models.RoutePrediction) *RoutePredictionResponse {
	return &RoutePredictionResponse{
		FromLocation:      p.FromLocation,
		ToLocation:        p.ToLocation,
		PredictedTime:     p.PredictedTime,
		PredictedTraffic:  string(p.PredictedTraffic),
		PredictedSpeed:    p.PredictedSpeedKmh,
		EstimatedDuration: p.EstimatedDuration,
		IncidentAlert:     p.IncidentAlert,
		Confidence:        p.Confidence,
		Frequency:         p.Frequency,
	}
}

func ModelsToAlertResponses(alerts []*models.Alert) []AlertResponse {
	responses := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		responses[i] = AlertResponse{
			ID:                  a.ID,
			AlertType:           a.Type,
			Title:               a.Title,
			Message:             a.Message,
			Latitude:            a.Latitude,
			Longitude:           a.Longitude,
			Distance:            a.DistanceMeters,
			Severity:            string(a.Severity),
			IsRead:              a.IsRead,
			IncidentID:          a.IncidentID,
			LocationDescription: a.LocationDescription,
			CreatedAt:           a.CreatedAt,
		}
	}
	return responses
}

func ModelsToEventResponses(events []*models.Event) []EventResponse {
	responses := make([]EventResponse, len(events))
	for i, e := range events {
		roads := e.AffectedRoads
		if roads == nil {
			roads = []string{}
		}
		responses[i] = EventResponse{
			ID:                e.ID,
			EventType:         e.Type,
			NameEn:            e.NameEn,
			NameAm:            e.NameAm,
			DescriptionEn:     e.DescriptionEn,
			DescriptionAm:     e.DescriptionAm,
			EventDate:         e.Date.Format(time.DateOnly),
			EthiopianDate:     e.EthiopianDate,
			StartTime:         e.StartTime,
			EndTime:           e.EndTime,
			IsRecurring:       e.IsRecurring,
			RecurrencePattern: e.RecurrencePattern,
			AffectedArea:      e.AffectedArea,
			AffectedRoads:     roads,
			CreatedAt:         e.CreatedAt,
		}
	}
	return responses
}

func ScheduleToResponse(schedule *models.DaySchedule) ScheduleResponse {
	closures := make([]RoadClosureResponse, len(schedule.RoadClosures))
	for i, c := range schedule.RoadClosures {
		closures[i] = RoadClosureResponse{
			ID:                        c.ID,
			EventID:                   c.EventID,
			RoadName:                  c.RoadName,
			StartLatitude:             c.StartLatitude,
			StartLongitude:            c.StartLongitude,
			EndLatitude:               c.EndLatitude,
			EndLongitude:              c.EndLongitude,
			ClosureStart:              c.ClosureStart,
			ClosureEnd:                c.ClosureEnd,
			AlternateRouteDescription: c.AlternateRouteDescription,
			Severity:                  string(c.Severity),
		}
	}
	return ScheduleResponse{
		Events:       ModelsToEventResponses(schedule.Events),
		RoadClosures: closures,
	}
}

func peakHourToResponse(p *models.PeakHour) *PeakHourResponse {
	if p == nil {
		return nil
	}
	return &PeakHourResponse{Hour: p.Hour, Time: p.Time, Count: p.Count}
}

func DailyAnalyticsToResponse(daily *models.DailyAnalytics) DailyAnalyticsResponse {
	byLocation := make([]LocationIncidentResponse, len(daily.IncidentsByLocation))
	for i, li := range daily.IncidentsByLocation {
		byLocation[i] = LocationIncidentResponse{LocationName: li.LocationName, Incident: li.Incident}
	}
	return DailyAnalyticsResponse{
		FrequentLocations:   ModelsToLocationResponses(daily.FrequentLocations),
		IncidentsByLocation: byLocation,
		PeakHours:           daily.PeakHours,
		DailyPeakHour:       peakHourToResponse(daily.DailyPeakHour),
	}
}

func PersonalAnalyticsToResponse(personal *models.PersonalAnalytics) PersonalAnalyticsResponse {
	routes := make([]FrequentRouteResponse, len(personal.MostFrequentRoutes))
	for i, r := range personal.MostFrequentRoutes {
		routes[i] = FrequentRouteResponse{
			Route:   r.From + " → " + r.To,
			From:    r.From,
			To:      r.To,
			Count:   r.Count,
			AvgHour: r.AvgHour,
		}
	}
	weekly := make([]DayTripsResponse, len(personal.WeeklyTrips))
	for i, d := range personal.WeeklyTrips {
		weekly[i] = DayTripsResponse{Date: d.Date.Format(time.DateOnly), TripCount: d.TripCount}
	}
	return PersonalAnalyticsResponse{
		MostFrequentRoutes: routes,
		PeakHour:           peakHourToResponse(personal.PeakHour),
		WeeklyTrips:        weekly,
		TotalTrips:         personal.TotalTrips,
	}
}

func DestinationPredictionToResponse(p *models.DestinationPrediction) DestinationPredictionResponse {
	return DestinationPredictionResponse{
		HasHistory:           p.HasHistory,
		PredictedDestination: p.PredictedDestination,
		PredictedTraffic:     p.PredictedTraffic,
		Confidence:           p.Confidence,
		TypicalTime:          p.TypicalTime,
		Message:              p.Message,
	}
}
