package model

import (
	"errors"
	"fmt"
)

// ErrorKind класс ошибки расчёта
type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindValidation
	KindInsufficientFunds
	KindNotFound
	KindConflict
	KindPersistenceDegraded
	KindUpstreamUnavailable
)

func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindInsufficientFunds:
		return "insufficient_funds"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindPersistenceDegraded:
		return "persistence_degraded"
	case KindUpstreamUnavailable:
		return "upstream_unavailable"
	default:
		return "internal"
	}
}

// Sentinel errors, one per kind. errors.Is(err, ErrNotFound) matches any
// SettlementError of that kind.
var (
	ErrValidation          = errors.New("validation error")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrPersistenceDegraded = errors.New("persistence degraded")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
)

var sentinels = map[ErrorKind]error{
	KindValidation:          ErrValidation,
	KindInsufficientFunds:   ErrInsufficientFunds,
	KindNotFound:            ErrNotFound,
	KindConflict:            ErrConflict,
	KindPersistenceDegraded: ErrPersistenceDegraded,
	KindUpstreamUnavailable: ErrUpstreamUnavailable,
}

// SettlementError типизированная ошибка ядра
type SettlementError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *SettlementError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}

func (e *SettlementError) Is(target error) bool {
	if s, ok := sentinels[e.Kind]; ok && s == target {
		return true
	}
	return false
}

func NewError(kind ErrorKind, msg string) error {
	return &SettlementError{Kind: kind, Message: msg}
}

func WrapError(kind ErrorKind, msg string, err error) error {
	return &SettlementError{Kind: kind, Message: msg, Err: err}
}

// KindOf возвращает класс ошибки. Голые sentinel-ошибки репозиториев
// тоже распознаются, всё остальное считается внутренней ошибкой.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindInternal
	}
	var se *SettlementError
	if errors.As(err, &se) {
		return se.Kind
	}
	for kind, s := range sentinels {
		if errors.Is(err, s) {
			return kind
		}
	}
	return KindInternal
}

// Classify оборачивает ошибку хранилища в UpstreamUnavailable,
// если она ещё не классифицирована
func Classify(msg string, err error) error {
	if err == nil {
		return nil
	}
	if KindOf(err) != KindInternal {
		return err
	}
	return WrapError(KindUpstreamUnavailable, msg, err)
}
