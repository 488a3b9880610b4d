// Package travel - эвристики загруженности и времени в пути по часу суток и истории поездок.
// Функции чистые: время и данные передаются вызывающей стороной.
package travel

import (
	"fmt"
	"math"
	"sort"

	"github.com/shenikar/etraffic/internal/geo"
	"github.com/shenikar/etraffic/internal/models"
)

const (
	// RouteHourTolerance - насколько привычный час маршрута может отличаться от текущего
	RouteHourTolerance = 2
	// SpeedDecayKm - на таком расстоянии прогнозная скорость падает до нуля
	SpeedDecayKm = 20.0

	minPredictedSpeedKmh = 5
	defaultTripKm        = 5.0
	defaultSpeedKmh      = 30.0
)

func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}

func isRushHour(hour int) bool {
	return (hour >= 7 && hour <= 9) || (hour >= 17 && hour <= 19)
}

// TrafficForHour: 7-9 и 17-19 - heavy, 10-16 - moderate, остальное - light
func TrafficForHour(hour int) models.TrafficLevel {
	switch {
	case isRushHour(hour):
		return models.TrafficHeavy
	case hour >= 10 && hour <= 16:
		return models.TrafficModerate
	default:
		return models.TrafficLight
	}
}

// Escalate поднимает уровень на одну ступень
func Escalate(level models.TrafficLevel) models.TrafficLevel {
	switch level {
	case models.TrafficLight:
		return models.TrafficModerate
	default:
		return models.TrafficHeavy
	}
}

func BaseSpeedKmh(level models.TrafficLevel) float64 {
	switch level {
	case models.TrafficHeavy:
		return 20
	case models.TrafficModerate:
		return 30
	default:
		return 40
	}
}

// AverageSpeedKmh - средняя скорость по городу для часа отправления
func AverageSpeedKmh(hour int) float64 {
	switch {
	case hour >= 7 && hour <= 9:
		return 25
	case hour >= 17 && hour <= 19:
		return 20
	default:
		return 35
	}
}

// EstimateMinutes - время в пути; неизвестные расстояние и скорость заменяются на 5 км и 30 км/ч
func EstimateMinutes(distanceKm, speedKmh float64) int {
	if distanceKm <= 0 {
		distanceKm = defaultTripKm
	}
	if speedKmh <= 0 {
		speedKmh = defaultSpeedKmh
	}
	return int(math.Round(distanceKm / speedKmh * 60))
}

// SummarizeTrip считает расстояние, скорость по часу отправления и время в пути
func SummarizeTrip(trip models.Trip) models.TripSummary {
	distanceKm := math.Round(geo.DistanceMeters(trip.From, trip.To)/10) / 100
	speed := AverageSpeedKmh(trip.StartedAt.Hour())
	travelMinutes := int(trip.EndedAt.Sub(trip.StartedAt).Minutes())

	estimated := travelMinutes
	if estimated <= 0 {
		estimated = EstimateMinutes(distanceKm, speed)
	}

	return models.TripSummary{
		Trip:                       trip,
		DistanceKm:                 distanceKm,
		AvgSpeedKmh:                speed,
		TravelTimeMinutes:          travelMinutes,
		EstimatedTravelTimeMinutes: estimated,
	}
}

// PredictRoute выбирает маршрут, привычный для текущего часа (иначе самый частый),
// и прогнозирует для него загруженность, скорость и длительность. Пустой routes даёт nil.
func PredictRoute(routes []models.RouteFrequency, currentHour int, recentIncidents bool) *models.RoutePrediction {
	if len(routes) == 0 {
		return nil
	}

	best := routes[0]
	for _, r := range routes {
		if math.Abs(r.AvgHour-float64(currentHour)) <= RouteHourTolerance {
			best = r
			break
		}
	}

	hour := int(math.Round(best.AvgHour))
	traffic := TrafficForHour(hour)
	if best.Frequency > 5 {
		traffic = Escalate(traffic)
	}

	speed := int(math.Round(BaseSpeedKmh(traffic) * (1 - best.DistanceKm/SpeedDecayKm)))
	if speed < minPredictedSpeedKmh {
		speed = minPredictedSpeedKmh
	}

	duration := int(math.Round(best.AvgDurationMinutes))
	if duration <= 0 {
		duration = EstimateMinutes(best.DistanceKm, float64(speed))
	}

	alert := "Clear route"
	if recentIncidents {
		alert = "Delays possible"
	}

	confidence := "medium"
	if best.Frequency > 3 {
		confidence = "high"
	}

	return &models.RoutePrediction{
		FromLocation:      best.From,
		ToLocation:        best.To,
		PredictedTime:     FormatHour(hour),
		PredictedTraffic:  traffic,
		PredictedSpeedKmh: speed,
		EstimatedDuration: duration,
		IncidentAlert:     alert,
		Confidence:        confidence,
		Frequency:         best.Frequency,
		Message: fmt.Sprintf("You usually travel from %s to %s around %s. Expect %s traffic, about %d minutes.",
			best.From, best.To, FormatHour(hour), traffic, duration),
	}
}

// DestinationTraffic - оценка для прогноза места назначения: high в часы пик, low с 10 до 15
func DestinationTraffic(hour int) string {
	switch {
	case isRushHour(hour):
		return "high"
	case hour >= 10 && hour <= 15:
		return "low"
	default:
		return "moderate"
	}
}

// FrequentRoutes собирает маршруты из соседних travel_start -> travel_end.
// points должны идти по возрастанию времени.
func FrequentRoutes(points []models.TravelPoint, limit int) []models.FrequentRoute {
	type acc struct {
		route   models.FrequentRoute
		hourSum int
	}
	byKey := make(map[string]*acc)
	var order []string

	for i := 0; i+1 < len(points); i++ {
		start, end := points[i], points[i+1]
		if start.Type != models.LocationTravelStart || end.Type != models.LocationTravelEnd {
			continue
		}
		key := start.Name + " → " + end.Name
		a, ok := byKey[key]
		if !ok {
			a = &acc{route: models.FrequentRoute{From: start.Name, To: end.Name}}
			byKey[key] = a
			order = append(order, key)
		}
		a.route.Count++
		a.hourSum += start.SearchedAt.Hour()
	}

	routes := make([]models.FrequentRoute, 0, len(order))
	for _, key := range order {
		a := byKey[key]
		a.route.AvgHour = float64(a.hourSum) / float64(a.route.Count)
		routes = append(routes, a.route)
	}
	sort.SliceStable(routes, func(i, j int) bool { return routes[i].Count > routes[j].Count })

	if limit > 0 && len(routes) > limit {
		routes = routes[:limit]
	}
	return routes
}

// PeakHour - самый частый час среди точек; при равенстве берётся более ранний час
func PeakHour(points []models.TravelPoint) *models.PeakHour {
	if len(points) == 0 {
		return nil
	}
	var counts [24]int
	for _, p := range points {
		counts[p.SearchedAt.Hour()]++
	}

	peak := 0
	for h := 1; h < 24; h++ {
		if counts[h] > counts[peak] {
			peak = h
		}
	}
	return &models.PeakHour{Hour: peak, Time: FormatHour(peak), Count: counts[peak]}
}

// HourHistogram раскладывает счётчики по всем 24 часам, отсутствующие часы - нули
func HourHistogram(rows []models.HourCount) map[int]int {
	hist := make(map[int]int, 24)
	for h := 0; h < 24; h++ {
		hist[h] = 0
	}
	for _, r := range rows {
		if r.Hour >= 0 && r.Hour < 24 {
			hist[r.Hour] = r.Count
		}
	}
	return hist
}
