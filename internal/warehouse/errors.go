package warehouse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Spok95/fuc-warehouse/internal/domain/materials"
)

var (
	ErrValidation                  = errors.New("validation failed")
	ErrInsufficientStock           = errors.New("insufficient stock")
	ErrInsufficientOrAbnormalStock = errors.New("insufficient or abnormal stock")

	// Реэкспорт ошибок хранилища, чтобы вызывающим не нужен был пакет materials.
	ErrNotFound    = materials.ErrNotFound
	ErrDuplicateID = materials.ErrDuplicateID
)

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// InsufficientStockError списание больше остатка. Kind заполнен для комплектующих отгрузки.
type InsufficientStockError struct {
	MaterialID string
	Kind       materials.Kind
	Requested  int
	Available  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock of %s (%s): requested %d, available %d",
		e.MaterialID, e.Kind, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool { return target == ErrInsufficientStock }

// UnavailableComponentsError для вида не нашлось ни одной записи без пометки Abnormal.
type UnavailableComponentsError struct {
	Kinds []materials.Kind
}

func (e *UnavailableComponentsError) Error() string {
	names := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		names[i] = string(k)
	}
	return fmt.Sprintf("insufficient or abnormal stock: no eligible %s", strings.Join(names, ", "))
}

func (e *UnavailableComponentsError) Is(target error) bool {
	return target == ErrInsufficientOrAbnormalStock
}

// resultOf метка результата для метрик.
func resultOf(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicateID):
		return "duplicate_id"
	case errors.Is(err, ErrInsufficientOrAbnormalStock):
		return "unavailable"
	case errors.Is(err, ErrInsufficientStock):
		return "insufficient"
	default:
		return "error"
	}
}
