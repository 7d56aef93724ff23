package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/desertthunder/recipebox/internal/models"
	"github.com/desertthunder/recipebox/internal/shared"
)

// maxBodyBytes caps request bodies. Declared column widths sum to well under this.
const maxBodyBytes = 1 << 20

// RecipeRequest is the body accepted by create and update.
//
// Fields are checked in declaration order and the first failure is reported.
// A nil pointer means the member was absent, null, the empty string, or of the wrong type.
type RecipeRequest struct {
	Title        *string `json:"title" validate:"required"`
	Ingredients  *string `json:"ingredients" validate:"required"`
	Instructions *string `json:"instructions" validate:"required"`
	Servings     *int    `json:"servings" validate:"required"`
	Description  *string `json:"description" validate:"required"`
	ImageURL     *string `json:"image_url" validate:"required"`
}

// Fields converts a validated request into recipe fields.
func (req RecipeRequest) Fields() models.Fields {
	return models.Fields{
		Title:        deref(req.Title),
		Ingredients:  deref(req.Ingredients),
		Instructions: deref(req.Instructions),
		Servings:     deref(req.Servings),
		Description:  deref(req.Description),
		ImageURL:     deref(req.ImageURL),
	}
}

func (req *RecipeRequest) decoders() map[string]func(json.RawMessage) error {
	return map[string]func(json.RawMessage) error{
		"title":        func(m json.RawMessage) error { return decodeInto(m, &req.Title) },
		"ingredients":  func(m json.RawMessage) error { return decodeInto(m, &req.Ingredients) },
		"instructions": func(m json.RawMessage) error { return decodeInto(m, &req.Instructions) },
		"servings":     func(m json.RawMessage) error { return decodeServings(m, &req.Servings) },
		"description":  func(m json.RawMessage) error { return decodeInto(m, &req.Description) },
		"image_url":    func(m json.RawMessage) error { return decodeInto(m, &req.ImageURL) },
	}
}

// RequestError is a client error with the message sent back in the response body.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return shared.ErrInvalidInput }

// RequestDecoder turns request bodies into validated [RecipeRequest] values.
type RequestDecoder struct {
	validate *validator.Validate
}

// NewRequestDecoder creates a decoder whose validation errors name fields by their JSON key.
func NewRequestDecoder() *RequestDecoder {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestDecoder{validate: v}
}

// Decode reads a JSON object from body and validates it.
//
// Errors are *[RequestError] for client mistakes, or a wrapped validator error otherwise.
func (d *RequestDecoder) Decode(body io.Reader) (*RecipeRequest, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, &RequestError{Message: msgInvalidJSON}
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil || members == nil {
		return nil, &RequestError{Message: msgInvalidJSON}
	}

	var req RecipeRequest
	invalid := map[string]bool{}
	decoders := req.decoders()
	for key, raw := range members {
		decode, ok := decoders[key]
		if !ok || isBlank(raw) {
			continue
		}
		if err := decode(raw); err != nil {
			invalid[key] = true
		}
	}

	if err := d.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) || len(verrs) == 0 {
			return nil, fmt.Errorf("failed to validate request: %w", err)
		}

		field := verrs[0].Field()
		if invalid[field] {
			return nil, &RequestError{Message: fmt.Sprintf("Invalid value for field: '%s'", field)}
		}
		return nil, &RequestError{Message: fmt.Sprintf("Missing required field: '%s'", field)}
	}

	return &req, nil
}

// isBlank reports whether a JSON value is null or the empty string.
func isBlank(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	var s string
	return json.Unmarshal(trimmed, &s) == nil && s == ""
}

// decodeInto sets *dst only when raw decodes cleanly into T.
func decodeInto[T any](raw json.RawMessage, dst **T) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = &v
	return nil
}

// decodeServings accepts anything an INTEGER column would store as an integer:
// JSON integers, whole-valued numbers like 2.0, and numeric strings like "4".
func decodeServings(raw json.RawMessage, dst **int) error {
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		n = json.Number(strings.TrimSpace(s))
	}

	if i, err := strconv.Atoi(n.String()); err == nil {
		*dst = &i
		return nil
	}

	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt64 || f < math.MinInt64 {
		return fmt.Errorf("servings %q is not a whole number", n)
	}
	i := int(f)
	*dst = &i
	return nil
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
