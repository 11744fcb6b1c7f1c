package assets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

type fileMeta struct {
	ContentType  string `json:"content_type"`
	CacheControl string `json:"cache_control"`
	ETag         string `json:"etag"`
}

const metaSuffix = ".meta.json"

// FileStore keeps objects on local disk and serves them under BaseURL.
type FileStore struct {
	Root    string
	BaseURL string
}

func NewFileStore(root, baseURL string) *FileStore {
	return &FileStore{Root: root, BaseURL: strings.TrimRight(baseURL, "/")}
}

func (s *FileStore) resolve(objectPath string) (string, error) {
	cleaned := path.Clean("/" + objectPath)
	if cleaned == "/" || strings.HasSuffix(cleaned, metaSuffix) || objectPath != strings.TrimPrefix(cleaned, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, objectPath)
	}
	return filepath.Join(s.Root, filepath.FromSlash(cleaned)), nil
}

func (s *FileStore) Upload(ctx context.Context, objectPath string, data []byte, opts UploadOptions) (*Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.resolve(objectPath)
	if err != nil {
		return nil, err
	}
	if !opts.Upsert {
		if _, err := os.Stat(target); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrExists, objectPath)
		}
	}
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return nil, fmt.Errorf("create directory for %s: %w", objectPath, err)
	}

	etag := ETag(data)
	if err := writeFileAtomic(target, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", objectPath, err)
	}

	meta, _ := json.Marshal(fileMeta{ContentType: opts.ContentType, CacheControl: opts.CacheControl, ETag: etag})
	if err := writeFileAtomic(target+metaSuffix, meta); err != nil {
		return nil, fmt.Errorf("write metadata for %s: %w", objectPath, err)
	}

	return &Object{Path: objectPath, URL: s.PublicURL(objectPath), ETag: etag}, nil
}

func writeFileAtomic(target string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), ".upload-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), target)
}

func (s *FileStore) PublicURL(objectPath string) string {
	return s.BaseURL + "/" + objectPath
}

func (s *FileStore) Download(ctx context.Context, objectPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := s.resolve(objectPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(target)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, objectPath)
	}
	return data, err
}

func (s *FileStore) Remove(ctx context.Context, paths ...string) error {
	for _, objectPath := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		target, err := s.resolve(objectPath)
		if err != nil {
			return err
		}
		for _, file := range []string{target, target + metaSuffix} {
			if err := os.Remove(file); err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("remove %s: %w", objectPath, err)
			}
		}
	}
	return nil
}

func (s *FileStore) PathFromURL(publicURL string) (string, bool) {
	prefix := s.BaseURL + "/"
	if !strings.HasPrefix(publicURL, prefix) {
		return "", false
	}
	objectPath := strings.TrimPrefix(publicURL, prefix)
	if i := strings.IndexAny(objectPath, "?#"); i >= 0 {
		objectPath = objectPath[:i]
	}
	if _, err := s.resolve(objectPath); err != nil {
		return "", false
	}
	return objectPath, true
}

// Handler serves stored objects with the headers recorded at upload time.
// Mount it with http.StripPrefix so request paths are object paths.
func (s *FileStore) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		target, err := s.resolve(strings.TrimPrefix(r.URL.Path, "/"))
		if err != nil {
			http.NotFound(w, r)
			return
		}

		var meta fileMeta
		if raw, err := os.ReadFile(target + metaSuffix); err == nil {
			_ = json.Unmarshal(raw, &meta)
		}
		if meta.ContentType != "" {
			w.Header().Set("Content-Type", meta.ContentType)
		}
		if meta.CacheControl != "" {
			w.Header().Set("Cache-Control", meta.CacheControl)
		} else {
			w.Header().Set("Cache-Control", DefaultCacheControl)
		}
		if meta.ETag != "" {
			w.Header().Set("ETag", `"`+meta.ETag+`"`)
		}
		http.ServeFile(w, r, target)
	})
}

var _ Store = (*FileStore)(nil)
