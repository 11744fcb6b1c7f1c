package assets

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

// SupabaseStore keeps objects in a Supabase Storage bucket using the service role key.
type SupabaseStore struct {
	BaseURL    string
	ServiceKey string
	Bucket     string
}

func NewSupabaseStore(baseURL, serviceKey, bucket string) *SupabaseStore {
	return &SupabaseStore{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		ServiceKey: serviceKey,
		Bucket:     bucket,
	}
}

// client builds a fresh storage client per call. Upload options are stored
// on the client's shared headers, so one client must never serve two requests.
func (s *SupabaseStore) client() *storage_go.Client {
	return storage_go.NewClient(s.BaseURL+"/storage/v1", s.ServiceKey, map[string]string{
		"apikey": s.ServiceKey,
	})
}

func mapStorageError(op, objectPath string, err error) error {
	var storageErr *storage_go.StorageError
	if !errors.As(err, &storageErr) {
		return fmt.Errorf("supabase storage %s %s: %w", op, objectPath, err)
	}
	message := strings.ToLower(storageErr.Message)
	switch {
	case storageErr.Status == 404 || strings.Contains(message, "not found"):
		return fmt.Errorf("%w: %s", ErrNotFound, storageErr.Message)
	case storageErr.Status == 409 || strings.Contains(message, "already exists"):
		return fmt.Errorf("%w: %s", ErrExists, storageErr.Message)
	}
	return fmt.Errorf("supabase storage %s %s: %s", op, objectPath, storageErr.Message)
}

func (s *SupabaseStore) Upload(ctx context.Context, objectPath string, data []byte, opts UploadOptions) (*Object, error) {
	if objectPath == "" || strings.Contains(objectPath, "..") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, objectPath)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contentType := opts.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	fileOpts := storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &opts.Upsert,
	}
	if opts.CacheControl != "" {
		cacheControl := opts.CacheControl
		fileOpts.CacheControl = &cacheControl
	}

	if _, err := s.client().UploadFile(s.Bucket, objectPath, bytes.NewReader(data), fileOpts); err != nil {
		return nil, mapStorageError("upload", objectPath, err)
	}
	return &Object{Path: objectPath, URL: s.PublicURL(objectPath), ETag: ETag(data)}, nil
}

func (s *SupabaseStore) PublicURL(objectPath string) string {
	return s.client().GetPublicUrl(s.Bucket, objectPath).SignedURL
}

func (s *SupabaseStore) Download(ctx context.Context, objectPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.client().DownloadFile(s.Bucket, objectPath)
	if err != nil {
		return nil, mapStorageError("download", objectPath, err)
	}
	return data, nil
}

func (s *SupabaseStore) Remove(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.client().RemoveFile(s.Bucket, paths); err != nil {
		return mapStorageError("remove", strings.Join(paths, ","), err)
	}
	return nil
}

func (s *SupabaseStore) PathFromURL(publicURL string) (string, bool) {
	parsed, err := url.Parse(publicURL)
	if err != nil {
		return "", false
	}
	marker := "/storage/v1/object/public/" + s.Bucket + "/"
	idx := strings.Index(parsed.Path, marker)
	if idx == -1 {
		return "", false
	}
	objectPath := parsed.Path[idx+len(marker):]
	if objectPath == "" {
		return "", false
	}
	return objectPath, true
}

var _ Store = (*SupabaseStore)(nil)
