package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	bole    = Coordinate{Latitude: 9.0125, Longitude: 38.7561}
	oneKmUp = Coordinate{Latitude: 9.0215, Longitude: 38.7561}
)

func TestDistanceMeters_Identity(t *testing.T) {
	assert.Equal(t, 0.0, DistanceMeters(bole, bole))
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	points := []Coordinate{
		bole,
		oneKmUp,
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 51.5074, Longitude: -0.1278},
		{Latitude: 89.9, Longitude: 179.9},
	}
	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, DistanceMeters(a, b), DistanceMeters(b, a), 1e-6)
		}
	}
}

func TestDistanceMeters_OneKilometer(t *testing.T) {
	d := DistanceMeters(bole, oneKmUp)
	assert.InEpsilon(t, 1000.0, d, 0.05)
}

func TestDistanceMeters_KnownHaversine(t *testing.T) {
	// Лондон - Париж, эталон по формуле гаверсинусов с R = 6371 км
	london := Coordinate{Latitude: 51.5074, Longitude: -0.1278}
	paris := Coordinate{Latitude: 48.8566, Longitude: 2.3522}
	assert.InDelta(t, 343556.0, DistanceMeters(london, paris), 50.0)
}

func TestDistanceMeters_NaNPropagates(t *testing.T) {
	d := DistanceMeters(Coordinate{Latitude: math.NaN()}, bole)
	assert.True(t, math.IsNaN(d))
}

func TestValidate_Thresholds(t *testing.T) {
	tests := []struct {
		name        string
		device      Coordinate
		max         float64
		wantValid   bool
		wantWarning bool
	}{
		{name: "same point", device: bole, max: 500, wantValid: true, wantWarning: false},
		{name: "1km away, max 500", device: oneKmUp, max: 500, wantValid: false, wantWarning: true},
		{name: "1km away, max 1200 (borderline)", device: oneKmUp, max: 1200, wantValid: true, wantWarning: true},
		{name: "1km away, max 2000", device: oneKmUp, max: 2000, wantValid: true, wantWarning: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Validate(bole, tt.device, tt.max)
			assert.Equal(t, tt.wantValid, res.IsValid)
			assert.Equal(t, tt.wantWarning, res.Warning)
			assert.Equal(t, res.DistanceMeters <= tt.max, res.IsValid)
			assert.Equal(t, res.DistanceMeters > 0.7*tt.max, res.Warning)
		})
	}
}

func TestNewValidator_DefaultMax(t *testing.T) {
	v := NewValidator(0)
	assert.Equal(t, DefaultMaxDistanceMeters, v.MaxDistanceMeters())

	res := v.Validate(bole, oneKmUp)
	assert.False(t, res.IsValid)
	assert.True(t, res.Warning)
}

func TestAreaCells(t *testing.T) {
	far := Coordinate{Latitude: 8.98, Longitude: 38.79}

	assert.Equal(t, AreaToken(bole), AreaToken(Coordinate{Latitude: 9.0125, Longitude: 38.7561}))
	assert.NotEqual(t, AreaToken(bole), AreaToken(far))
	assert.NotEqual(t, AreaLockKey(bole), AreaLockKey(far))
	assert.True(t, CellID(bole, AreaCellLevel).Contains(CellID(bole, 30)))
	assert.Equal(t, AreaCellLevel, CellID(bole, AreaCellLevel).Level())
}
