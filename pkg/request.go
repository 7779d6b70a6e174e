package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
)

// messages shared by the content handlers
const (
	MsgInvalidBody = "Format request tidak valid"
	MsgInvalidID   = "ID tidak valid"
	MsgNotFound    = "Data tidak ditemukan"
	MsgServerError = "Terjadi kesalahan pada server"
	MsgBodyTooBig  = "Ukuran request terlalu besar"
)

type DeletedResponse struct {
	DeletedID int `json:"deletedId"`
}

// IntVar reads a positive integer route variable.
func IntVar(r *http.Request, name string) (int, error) {
	raw, ok := mux.Vars(r)[name]
	if !ok || raw == "" {
		return 0, fmt.Errorf("route var <%s> missing", name)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("route var <%s>: %w", name, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("route var <%s> must be positive, got %d", name, v)
	}
	return v, nil
}

// DecodeJSONBody decodes a single json object, rejecting unknown fields.
func DecodeJSONBody(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decode json body: %w", err)
	}
	return nil
}

// IsValidImageURL accepts absolute http(s) urls, as returned by the image host.
func IsValidImageURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
