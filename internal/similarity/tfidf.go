// Package similarity сравнивает описания отчётов (TF-IDF + косинусная мера)
// и переводит найденные совпадения в оценку достоверности.
package similarity

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/shenikar/etraffic/internal/models"
)

// DefaultThreshold - с какой схожести отчёт считается подтверждающим
const DefaultThreshold = 0.7

var nonWordRe = regexp.MustCompile(`[^\w\s]`)

// Result - агрегат схожести нового текста с существующими отчётами
type Result struct {
	AverageSimilarity float64 `json:"averageSimilarity"`
	SimilarCount      int     `json:"similarCount"`
	MaxSimilarity     float64 `json:"maxSimilarity"`
}

// Engine - детерминированный TF-IDF движок без состояния, безопасен для конкурентного использования
type Engine struct {
	threshold float64
}

// NewEngine: отрицательный порог заменяется на DefaultThreshold, ноль сохраняется, как в NewScorer
func NewEngine(threshold float64) *Engine {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return &Engine{threshold: threshold}
}

// Compute сравнивает newText с каждым описанием из existing в общем векторном пространстве.
// Пустой existing даёт нулевой результат без построения векторов.
func (e *Engine) Compute(newText string, existing []models.IncidentSummary) Result {
	if len(existing) == 0 {
		return Result{}
	}

	docs := make([][]string, 0, len(existing)+1)
	docs = append(docs, Tokenize(newText))
	for _, inc := range existing {
		docs = append(docs, Tokenize(inc.Description))
	}

	vocab := vocabulary(docs)
	idf := inverseDocumentFrequency(vocab, docs)

	target := vectorize(docs[0], vocab, idf)

	var sum, maxSim float64
	similar := 0
	for _, doc := range docs[1:] {
		sim := pairSimilarity(docs[0], doc, target, vectorize(doc, vocab, idf), vocab)
		sum += sim
		if sim > maxSim {
			maxSim = sim
		}
		if sim >= e.threshold {
			similar++
		}
	}

	return Result{
		AverageSimilarity: sum / float64(len(existing)),
		SimilarCount:      similar,
		MaxSimilarity:     maxSim,
	}
}

// Tokenize: нижний регистр, всё кроме ASCII [A-Za-z0-9_] и пробелов -> пробел, токены длиной <= 2 байт отбрасываются.
// \w в RE2 только ASCII, поэтому текст на амхарском (геэз) не даёт токенов.
func Tokenize(text string) []string {
	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")
	fields := strings.Fields(cleaned)

	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 2 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// CosineSimilarity возвращает 0, если длины векторов различаются или одна из норм нулевая
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	sim := dot / (math.Sqrt(normA) * math.Sqrt(normB))
	// погрешность округления не должна выводить за [0, 1]
	return math.Max(0, math.Min(1, sim))
}

// pairSimilarity - косинус TF-IDF векторов. Если оба вектора нулевые, хотя в обоих документах
// есть токены (каждый термин встречается во всех документах и IDF обнулился), сравниваются TF векторы.
func pairSimilarity(docA, docB []string, vecA, vecB []float64, vocab []string) float64 {
	if len(docA) > 0 && len(docB) > 0 && isZero(vecA) && isZero(vecB) {
		return CosineSimilarity(vectorize(docA, vocab, nil), vectorize(docB, vocab, nil))
	}
	return CosineSimilarity(vecA, vecB)
}

func isZero(vec []float64) bool {
	for _, v := range vec {
		if v != 0 {
			return false
		}
	}
	return true
}

// vocabulary - отсортированное объединение токенов всех документов
func vocabulary(docs [][]string) []string {
	seen := make(map[string]struct{})
	for _, doc := range docs {
		for _, term := range doc {
			seen[term] = struct{}{}
		}
	}

	vocab := make([]string, 0, len(seen))
	for term := range seen {
		vocab = append(vocab, term)
	}
	sort.Strings(vocab)
	return vocab
}

func termFrequency(term string, doc []string) float64 {
	if len(doc) == 0 {
		return 0
	}
	count := 0
	for _, t := range doc {
		if t == term {
			count++
		}
	}
	return float64(count) / float64(len(doc))
}

func inverseDocumentFrequency(vocab []string, docs [][]string) map[string]float64 {
	idf := make(map[string]float64, len(vocab))
	for _, term := range vocab {
		containing := 0
		for _, doc := range docs {
			for _, t := range doc {
				if t == term {
					containing++
					break
				}
			}
		}
		if containing == 0 {
			idf[term] = 0
			continue
		}
		idf[term] = math.Log(float64(len(docs)) / float64(containing))
	}
	return idf
}

// vectorize строит вектор по словарю; idf == nil даёт чистые TF
func vectorize(doc []string, vocab []string, idf map[string]float64) []float64 {
	vec := make([]float64, len(vocab))
	for i, term := range vocab {
		weight := 1.0
		if idf != nil {
			weight = idf[term]
		}
		vec[i] = termFrequency(term, doc) * weight
	}
	return vec
}
