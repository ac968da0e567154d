package httpapi

import (
	"encoding/json"
	"strings"

	"github.com/azacreation/adminsdk/pkg/errors"
	"github.com/azacreation/adminsdk/pkg/models"
)

// Decode unwraps the standard {success, message, data} envelope and
// returns the data field typed as T. A success=false envelope becomes
// an application error carrying the server message verbatim, whatever
// the HTTP status was.
func Decode[T any](resp *Response) (T, error) {
	var zero T

	var envelope models.APIResponse
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return zero, errors.Decode(err)
	}

	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "Request failed"
		}
		return zero, errors.Application(message)
	}

	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return zero, nil
	}

	var data T
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return zero, errors.Decode(err)
	}
	return data, nil
}

// DecodeMessage unwraps an envelope whose payload of interest is the
// message itself, e.g. delete confirmations.
func DecodeMessage(resp *Response) (string, error) {
	var envelope models.APIResponse
	if err := json.Unmarshal(resp.Body, &envelope); err != nil {
		return "", errors.Decode(err)
	}
	if !envelope.Success {
		message := envelope.Message
		if message == "" {
			message = "Request failed"
		}
		return "", errors.Application(message)
	}
	return envelope.Message, nil
}

// DecodeRaw decodes a legacy endpoint response that carries no
// envelope: the body is the payload.
func DecodeRaw[T any](resp *Response) (T, error) {
	var data T
	if err := json.Unmarshal(resp.Body, &data); err != nil {
		return data, errors.Decode(err)
	}
	return data, nil
}

// DecodeText returns a legacy plain-text body, trimmed.
func DecodeText(resp *Response) string {
	return strings.TrimSpace(string(resp.Body))
}
