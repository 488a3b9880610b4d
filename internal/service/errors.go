package service

import (
	"errors"
	"fmt"
)

var (
	ErrIncidentNotFound       = errors.New("incident not found")
	ErrUserNotFound           = errors.New("user not found")
	ErrUserAlreadyExists      = errors.New("email or username already registered")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAlreadyVerified        = errors.New("incident already verified")
	ErrInsufficientCoins      = errors.New("insufficient coins")
	ErrBelowMinimumConversion = errors.New("amount below minimum conversion")
	ErrAlertNotFound          = errors.New("alert not found")

	// ErrBanned - пользователь заблокирован, подача отчётов недоступна
	ErrBanned = errors.New("account is banned")
	// ErrLocationMismatch - GPS устройства слишком далеко от заявленного места
	ErrLocationMismatch = errors.New("location mismatch")
)

type RejectionKind string

const (
	RejectionBanned           RejectionKind = "BANNED"
	RejectionLocationMismatch RejectionKind = "LOCATION_MISMATCH"
)

// RejectionError - отказ в приёме отчёта. Сопоставляется с ErrBanned / ErrLocationMismatch через errors.Is.
type RejectionError struct {
	Kind           RejectionKind
	DistanceMeters float64
	Reason         string
}

func (e *RejectionError) Error() string {
	switch e.Kind {
	case RejectionLocationMismatch:
		return fmt.Sprintf("location mismatch: device is %.0f m away from the reported location", e.DistanceMeters)
	default:
		if e.Reason != "" {
			return "account is banned: " + e.Reason
		}
		return ErrBanned.Error()
	}
}

func (e *RejectionError) Is(target error) bool {
	switch e.Kind {
	case RejectionBanned:
		return target == ErrBanned
	case RejectionLocationMismatch:
		return target == ErrLocationMismatch
	}
	return false
}
