package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/okunevd/streamhub/internal/common"
	"github.com/okunevd/streamhub/internal/server/services"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

// uuidParam reads a path parameter and validates it is a UUID.
func uuidParam(r *http.Request, name string) (string, error) {
	v := chi.URLParam(r, name)
	if _, err := uuid.Parse(v); err != nil {
		return "", fmt.Errorf("%w: %s must be a valid id", common.ErrorInvalidInput, name)
	}
	return v, nil
}

// pagination reads page/limit query params and converts them to limit/offset.
func pagination(r *http.Request) (page, limit, offset int) {
	page, limit = defaultPage, defaultLimit
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v > 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		limit = v
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit, (page - 1) * limit
}

// optionalFormValue returns a pointer to the form value, or nil when absent.
// The form must already be parsed.
func optionalFormValue(r *http.Request, name string) *string {
	if !r.Form.Has(name) && !r.PostForm.Has(name) {
		return nil
	}
	v := r.FormValue(name)
	return &v
}

// decodeJSON reads a JSON request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed json body", common.ErrorInvalidInput)
	}
	return nil
}

// formFile reads a multipart file field. An absent field yields (nil, nil)
// so optional files fall through; callers close the returned cleanup func.
func formFile(r *http.Request, name string) (*services.FileUpload, func(), error) {
	file, header, err := r.FormFile(name)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, func() {}, nil
		}
		return nil, func() {}, fmt.Errorf("%w: invalid %s file", common.ErrorInvalidInput, name)
	}
	upload := &services.FileUpload{
		ContentType: header.Header.Get("Content-Type"),
		Body:        file,
	}
	return upload, func() { _ = file.Close() }, nil
}
