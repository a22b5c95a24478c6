package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DRSN-tech/catalog-admin/internal/domain"
	"github.com/DRSN-tech/catalog-admin/pkg/e"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrInvalidNumber):
		return http.StatusBadRequest, e.ErrInvalidNumber.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrNotInteger):
		return http.StatusBadRequest, e.ErrNotInteger.Error()
	case errors.Is(err, e.ErrInvalidDiscountType):
		return http.StatusBadRequest, e.ErrInvalidDiscountType.Error()
	case errors.Is(err, e.ErrInvalidIndex):
		return http.StatusBadRequest, e.ErrInvalidIndex.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// formValues читает обязательные поля формы. Пустое значение допустимо,
// отсутствующее поле считается ошибкой.
func formValues(r *http.Request, keys ...string) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	values := make(map[string]string, len(keys))
	var missing []string
	for _, key := range keys {
		if !r.PostForm.Has(key) {
			missing = append(missing, key)
			continue
		}
		values[key] = strings.TrimSpace(r.PostForm.Get(key))
	}

	if len(missing) > 0 {
		return nil, e.Wrap(strings.Join(missing, ", "), e.ErrMissingFields)
	}
	return values, nil
}

// parseDecimal разбирает число из формы. Знак не проверяется:
// отрицательные значения передаются в модель как есть.
func parseDecimal(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, e.Wrap(field, e.ErrMissingFields)
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, e.Wrap(fmt.Sprintf("%s: %q", field, s), e.ErrInvalidNumber)
	}
	return d, nil
}

// parseInteger разбирает целое ("12", "12.0"); дробные значения отклоняются.
func parseInteger(field, s string) (int64, error) {
	d, err := parseDecimal(field, s)
	if err != nil {
		return 0, err
	}

	if !d.IsInteger() {
		return 0, e.Wrap(fmt.Sprintf("%s: %q", field, s), e.ErrNotInteger)
	}

	if d.GreaterThan(decimal.NewFromInt(maxInt64)) || d.LessThan(decimal.NewFromInt(minInt64)) {
		return 0, e.Wrap(fmt.Sprintf("%s: %q", field, s), e.ErrInvalidNumber)
	}

	return d.IntPart(), nil
}

func parsePrice(s string) (int64, error) {
	price, err := parseInteger("price", s)
	if err != nil && !errors.Is(err, e.ErrMissingFields) {
		return 0, e.Wrap(err.Error(), e.ErrInvalidPrice)
	}
	return price, err
}

func parseFloat(field, s string) (float64, error) {
	d, err := parseDecimal(field, s)
	if err != nil {
		return 0, err
	}
	return d.InexactFloat64(), nil
}

func parseDiscountType(s string) (domain.DiscountType, error) {
	t := domain.DiscountType(strings.ToLower(s))
	if !t.Valid() {
		return "", e.Wrap(fmt.Sprintf("discount_type: %q", s), e.ErrInvalidDiscountType)
	}
	return t, nil
}

func parseIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

const (
	maxInt64 = int64(^uint64(0) >> 1)
	minInt64 = -maxInt64 - 1
)
