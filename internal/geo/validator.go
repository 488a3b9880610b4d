package geo

// DefaultMaxDistanceMeters - допустимое расхождение между заявленной точкой и GPS устройства
const DefaultMaxDistanceMeters = 500.0

// warningRatio - доля от максимума, после которой отчёт помечается как пограничный
const warningRatio = 0.7

// ValidationResult - результат сверки заявленной точки с GPS устройства
type ValidationResult struct {
	IsValid        bool    `json:"isValid"`
	DistanceMeters float64 `json:"distanceMeters"`
	Warning        bool    `json:"warning"`
}

// Validator сверяет место инцидента с фактическим положением пользователя
type Validator struct {
	maxDistanceMeters float64
}

// NewValidator создает валидатор; неположительный максимум заменяется значением по умолчанию
func NewValidator(maxDistanceMeters float64) *Validator {
	if maxDistanceMeters <= 0 {
		maxDistanceMeters = DefaultMaxDistanceMeters
	}
	return &Validator{maxDistanceMeters: maxDistanceMeters}
}

// MaxDistanceMeters возвращает настроенный порог
func (v *Validator) MaxDistanceMeters() float64 {
	return v.maxDistanceMeters
}

// Validate сверяет точки с порогом валидатора
func (v *Validator) Validate(claimed, device Coordinate) ValidationResult {
	return Validate(claimed, device, v.maxDistanceMeters)
}

// Validate - чистая функция: IsValid и Warning вычисляются независимо,
// отчёт может быть валидным и одновременно пограничным.
func Validate(claimed, device Coordinate, maxDistanceMeters float64) ValidationResult {
	d := DistanceMeters(claimed, device)
	return ValidationResult{
		IsValid:        d <= maxDistanceMeters,
		DistanceMeters: d,
		Warning:        d > warningRatio*maxDistanceMeters,
	}
}
