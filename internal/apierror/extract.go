package apierror

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrContentType is returned by CheckJSONContentType when a request body is
// not declared as JSON.
var ErrContentType = errors.New("expected request with Content-Type: application/json")

// CheckJSONContentType accepts application/json and application/*+json media
// types (parameters such as charset are ignored).
func CheckJSONContentType(ct string) error {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return ErrContentType
	}
	if mt == "application/json" {
		return nil
	}
	if strings.HasPrefix(mt, "application/") && strings.HasSuffix(mt, "+json") {
		return nil
	}
	return ErrContentType
}

// FromBody converts a JSON body binding error into a body decode failure.
// It returns nil for a nil error and f unchanged when err already is a
// *Failure.
func FromBody(err error) *Failure {
	if err == nil {
		return nil
	}
	if f, ok := asFailure(err); ok {
		return f
	}

	var (
		syntaxErr *json.SyntaxError
		typeErr   *json.UnmarshalTypeError
		tooLarge  *http.MaxBytesError
		vErrs     validator.ValidationErrors
	)
	switch {
	case errors.Is(err, ErrContentType):
		return BodyDecode(CauseContentType, http.StatusUnsupportedMediaType, err)
	case errors.As(err, &tooLarge):
		return BodyDecode(CauseBodyRead, http.StatusRequestEntityTooLarge, err)
	case errors.As(err, &syntaxErr),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return BodyDecode(CauseSyntax, http.StatusBadRequest, err)
	case errors.As(err, &typeErr), errors.As(err, &vErrs):
		return BodyDecode(CauseData, http.StatusUnprocessableEntity, err)
	default:
		return BodyDecode(CauseOther, http.StatusBadRequest, err)
	}
}

// FromPath converts a URI binding error into a path decode failure.
func FromPath(err error) *Failure {
	if err == nil {
		return nil
	}
	if f, ok := asFailure(err); ok {
		return f
	}

	var (
		numErr *strconv.NumError
		vErrs  validator.ValidationErrors
	)
	switch {
	case errors.As(err, &vErrs):
		for _, fe := range vErrs {
			if fe.Tag() == "required" {
				return PathDecode(CauseMissing, http.StatusBadRequest, err)
			}
		}
		return PathDecode(CauseData, http.StatusBadRequest, err)
	case errors.As(err, &numErr):
		return PathDecode(CauseData, http.StatusBadRequest, err)
	default:
		return PathDecode(CauseOther, http.StatusBadRequest, err)
	}
}

// FromQuery converts a query-string binding error into a query decode
// failure. Missing and malformed values are both data mismatches.
func FromQuery(err error) *Failure {
	if err == nil {
		return nil
	}
	if f, ok := asFailure(err); ok {
		return f
	}

	var (
		numErr *strconv.NumError
		vErrs  validator.ValidationErrors
	)
	if errors.As(err, &vErrs) || errors.As(err, &numErr) {
		return QueryDecode(CauseData, http.StatusBadRequest, err)
	}
	return QueryDecode(CauseOther, http.StatusBadRequest, err)
}

func asFailure(err error) (*Failure, bool) {
	var f *Failure
	if errors.As(err, &f) && f != nil {
		return f, true
	}
	return nil, false
}
