package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// tokenExpiredCode is the machine-readable code the server puts in a 401 body
// when the access token (not the session) has expired and a refresh is worth
// attempting.
const tokenExpiredCode = "TOKEN_EXPIRED"

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}

// isTokenExpired reports whether resp is a 401 whose body carries the
// TOKEN_EXPIRED code, i.e. the one failure mode the adapter may recover from
// by refreshing.
func isTokenExpired(resp *resty.Response) bool {
	if resp.StatusCode() != http.StatusUnauthorized {
		return false
	}

	var body errorBody
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		return false
	}

	return body.Code == tokenExpiredCode
}
