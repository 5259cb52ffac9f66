package http

import (
	"bytes"
	"fmt"
	"mime"

	"github.com/goccy/go-json"

	"github.com/exograd/eventline-go/internal/constants"
	"github.com/exograd/eventline-go/pkg/eventline"
)

// DecodeResponse turns a response body into a document. Empty bodies yield a
// nil document whatever the content type; other bodies must be JSON. Numbers
// are kept as json.Number so that integers survive exactly.
func DecodeResponse(contentType string, body []byte) (eventline.Document, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || mediaType != constants.MediaTypeJSON {
		return nil, fmt.Errorf("%w %q", constants.ErrUnsupportedContentType, contentType)
	}

	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()

	var doc interface{}
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding JSON body: %w", err)
	}

	return doc, nil
}

// apiErrorBody is the payload the API attaches to non-2xx responses.
type apiErrorBody struct {
	Message string
	Code    *string
}

func (b *apiErrorBody) ObjectName() string { return "error" }

func (b *apiErrorBody) ReadData(r *eventline.ObjectReader) {
	r.String("error", &b.Message)
	r.OptionalString("code", &b.Code)
}

// decodeErrorBody extracts the error code and message of a failed call. The
// second result is false when the body does not follow the error format.
func decodeErrorBody(contentType string, body []byte) (string, string, bool) {
	doc, err := DecodeResponse(contentType, body)
	if err != nil || doc == nil {
		return "", "", false
	}

	var errBody apiErrorBody
	if err := eventline.Decode(doc, &errBody); err != nil {
		return "", "", false
	}

	code := ""
	if errBody.Code != nil {
		code = *errBody.Code
	}

	return code, errBody.Message, true
}
