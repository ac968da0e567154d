package httpapi

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
)

// Multipart builds a multipart/form-data payload. Field names are
// part of the server's wire contract (one "<entity>Data" field with a
// JSON-stringified payload, repeated "files" fields, an optional
// "replaceAllImages" flag); renaming them breaks the integration, so
// the builder preserves insertion order and never rewrites names.
type Multipart struct {
	fields []formField
	files  []formFile
}

type formField struct {
	name  string
	value string
}

type formFile struct {
	name     string
	filename string
	content  []byte
}

// NewMultipart creates an empty multipart payload builder.
func NewMultipart() *Multipart {
	return &Multipart{}
}

// AddField appends a plain text field.
func (m *Multipart) AddField(name, value string) *Multipart {
	m.fields = append(m.fields, formField{name: name, value: value})
	return m
}

// AddJSONField appends a field whose value is the JSON serialization
// of payload, the way the server expects entity data inside uploads.
func (m *Multipart) AddJSONField(name string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	m.AddField(name, string(data))
	return nil
}

// AddFile appends one file part under the given field name. The same
// field name may repeat; the server reads repeated "files" parts.
func (m *Multipart) AddFile(fieldName, filename string, content []byte) *Multipart {
	m.files = append(m.files, formFile{name: fieldName, filename: filename, content: content})
	return m
}

// FileCount reports how many file parts the payload carries. Zero is
// a valid count: an update without new images is still a well-formed
// multipart request.
func (m *Multipart) FileCount() int {
	return len(m.files)
}

// Encode renders the payload and returns the body along with the
// Content-Type including the boundary.
func (m *Multipart) Encode() ([]byte, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, field := range m.fields {
		if err := writer.WriteField(field.name, field.value); err != nil {
			return nil, "", err
		}
	}

	for _, file := range m.files {
		part, err := writer.CreateFormFile(file.name, file.filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(file.content); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}
