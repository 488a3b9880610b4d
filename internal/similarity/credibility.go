package similarity

import "math"

const (
	// BaseCredibility - достоверность отчёта без подтверждений
	BaseCredibility = 0.5
	// DefaultBoost - надбавка за сильное подтверждение соседними отчётами
	DefaultBoost = 0.2
)

// Scorer переводит результат сравнения текстов в оценку достоверности
type Scorer struct {
	boost float64
}

func NewScorer(boost float64) *Scorer {
	if boost < 0 {
		boost = DefaultBoost
	}
	return &Scorer{boost: boost}
}

// ScoreBoost - ступенчатая надбавка:
// >= 3 похожих при средней >= 0.7 - полная, >= 2 при средней >= 0.6 - половина, иначе 0.
func (s *Scorer) ScoreBoost(res Result) float64 {
	switch {
	case res.SimilarCount >= 3 && res.AverageSimilarity >= 0.7:
		return s.boost
	case res.SimilarCount >= 2 && res.AverageSimilarity >= 0.6:
		return s.boost * 0.5
	default:
		return 0
	}
}

// Score возвращает итоговую достоверность в пределах [0, 1]
func (s *Scorer) Score(res Result) float64 {
	return math.Max(0, math.Min(1, BaseCredibility+s.ScoreBoost(res)))
}
