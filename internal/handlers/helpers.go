package handlers

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxBodyBytes bounds every request body the storefront accepts
const maxBodyBytes = 64 << 10

// decodeBody fills dst from a JSON body, or from form values when the request
// is a classic form post. fromForm maps the parsed form onto dst.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, fromForm func(get func(string) string) error) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("invalid form: %w", err)
		}
		return fromForm(r.PostForm.Get)
	default:
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return fmt.Errorf("invalid JSON body: %w", err)
		}
		return nil
	}
}

// itemIDParam reads the {itemId} URL parameter
func itemIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "itemId")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid item id %q", raw)
	}
	return id, nil
}
