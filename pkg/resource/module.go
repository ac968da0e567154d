package resource

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/azacreation/adminsdk/pkg/errors"
	"github.com/azacreation/adminsdk/pkg/httpapi"
	"github.com/azacreation/adminsdk/pkg/logging"
	"github.com/azacreation/adminsdk/pkg/models"
)

// Options describes one REST resource family.
type Options struct {
	// Name is the entity name used in log fields and error messages.
	Name string
	// Prefix is the endpoint prefix, e.g. "/designs".
	Prefix string
	// DataField is the multipart field carrying the JSON-stringified
	// entity payload in image uploads, e.g. "designData". Fixed by the
	// server's wire contract.
	DataField string
	// StatusNoteField names the extra JSON field sent along with a
	// status update ("adminNotes", "comments"). Empty means status
	// updates carry only the status.
	StatusNoteField string
}

// File is one image attached to a create or update.
type File struct {
	Name    string
	Content []byte
}

// Module is the CRUD surface over one resource family. T is the
// entity record, S its statistics shape. Every method reports
// failures through the client's taxonomy and applies no retries.
type Module[T any, S any] struct {
	client *httpapi.Client
	opts   Options
	logger *logging.Logger
}

// NewModule builds a resource module on top of an API client.
func NewModule[T any, S any](client *httpapi.Client, opts Options) *Module[T, S] {
	return &Module[T, S]{
		client: client,
		opts:   opts,
		logger: logging.GetDefault(),
	}
}

// Name returns the entity name this module serves.
func (m *Module[T, S]) Name() string {
	return m.opts.Name
}

func (m *Module[T, S]) idPath(id int64) string {
	return fmt.Sprintf("%s/%d", m.opts.Prefix, id)
}

// mapNotFound converts a 404 transport failure into a not-found error
// named after the entity; everything else passes through untouched.
func (m *Module[T, S]) mapNotFound(err error) error {
	if err != nil && errors.IsTransport(err) && errors.StatusCodeOf(err) == http.StatusNotFound {
		return errors.Newf(errors.ErrCodeNotFound, "%s not found", m.opts.Name)
	}
	return err
}

// List fetches one page of the collection. Both collection shapes the
// backend serves (bare array, {content:[...]}) come back as the same
// normalized slice.
func (m *Module[T, S]) List(ctx context.Context, page, size int) ([]T, error) {
	resp, err := m.client.GetWithQuery(ctx, m.opts.Prefix, map[string]string{
		"page": strconv.Itoa(page),
		"size": strconv.Itoa(size),
	})
	if err != nil {
		return nil, err
	}

	collection, err := httpapi.Decode[models.Collection[T]](resp)
	if err != nil {
		return nil, err
	}
	return collection.Items, nil
}

// Stats fetches the server-computed aggregate. Pure pass-through; the
// client never derives counts itself.
func (m *Module[T, S]) Stats(ctx context.Context) (S, error) {
	var zero S
	resp, err := m.client.Get(ctx, m.opts.Prefix+"/stats")
	if err != nil {
		return zero, err
	}
	return httpapi.Decode[S](resp)
}

// Get fetches one record by identity.
func (m *Module[T, S]) Get(ctx context.Context, id int64) (T, error) {
	var zero T
	resp, err := m.client.Get(ctx, m.idPath(id))
	if err != nil {
		return zero, m.mapNotFound(err)
	}
	return httpapi.Decode[T](resp)
}

// Create submits a new record as JSON.
func (m *Module[T, S]) Create(ctx context.Context, payload interface{}) (T, error) {
	var zero T
	resp, err := m.client.Post(ctx, m.opts.Prefix, payload)
	if err != nil {
		return zero, err
	}
	return httpapi.Decode[T](resp)
}

// CreateWithImages submits a new record as multipart: the payload
// JSON-stringified under the entity data field, each file under a
// repeated "files" field.
func (m *Module[T, S]) CreateWithImages(ctx context.Context, payload interface{}, files []File) (T, error) {
	var zero T

	form := httpapi.NewMultipart()
	if err := form.AddJSONField(m.opts.DataField, payload); err != nil {
		return zero, errors.Wrap(err, errors.ErrCodeValidation, "Failed to serialize entity data")
	}
	for _, file := range files {
		form.AddFile("files", file.Name, file.Content)
	}

	resp, err := m.client.Do(ctx, &httpapi.Request{
		Method:    http.MethodPost,
		Path:      m.opts.Prefix + "/with-images",
		Multipart: form,
	})
	if err != nil {
		return zero, err
	}
	return httpapi.Decode[T](resp)
}

// Update applies a partial update: only the supplied fields change.
func (m *Module[T, S]) Update(ctx context.Context, id int64, partial map[string]interface{}) (T, error) {
	var zero T
	resp, err := m.client.Put(ctx, m.idPath(id), partial)
	if err != nil {
		return zero, m.mapNotFound(err)
	}
	return httpapi.Decode[T](resp)
}

// UpdateWithImages applies a partial update with image changes.
// replaceAll=true swaps the full image set; false appends. Zero files
// is a valid shape: the flag and data field still go on the wire.
func (m *Module[T, S]) UpdateWithImages(ctx context.Context, id int64, partial map[string]interface{}, files []File, replaceAll bool) (T, error) {
	var zero T

	form := httpapi.NewMultipart()
	if err := form.AddJSONField(m.opts.DataField, partial); err != nil {
		return zero, errors.Wrap(err, errors.ErrCodeValidation, "Failed to serialize entity data")
	}
	for _, file := range files {
		form.AddFile("files", file.Name, file.Content)
	}
	form.AddField("replaceAllImages", strconv.FormatBool(replaceAll))

	resp, err := m.client.Do(ctx, &httpapi.Request{
		Method:    http.MethodPut,
		Path:      m.idPath(id) + "/with-images",
		Multipart: form,
	})
	if err != nil {
		return zero, m.mapNotFound(err)
	}
	return httpapi.Decode[T](resp)
}

// UpdateStatus transitions the record's lifecycle state through the
// dedicated status endpoint. The note rides along under the
// entity-specific field name when configured.
func (m *Module[T, S]) UpdateStatus(ctx context.Context, id int64, status string, note string) (T, error) {
	var zero T

	body := map[string]interface{}{"status": status}
	if m.opts.StatusNoteField != "" && note != "" {
		body[m.opts.StatusNoteField] = note
	}

	resp, err := m.client.Put(ctx, m.idPath(id)+"/status", body)
	if err != nil {
		return zero, m.mapNotFound(err)
	}
	return httpapi.Decode[T](resp)
}

// Delete removes one record and returns the server's confirmation
// message.
func (m *Module[T, S]) Delete(ctx context.Context, id int64) (string, error) {
	resp, err := m.client.Delete(ctx, m.idPath(id))
	if err != nil {
		return "", m.mapNotFound(err)
	}
	return httpapi.DecodeMessage(resp)
}
