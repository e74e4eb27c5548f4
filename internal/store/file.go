package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileStore persists each key as a JSON document in a data directory.
type FileStore struct {
	dir    string
	logger *zap.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed. Directory creation failure is logged, not fatal;
// subsequent writes will report false.
func NewFileStore(dir string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		logger.Warn("failed to create data directory",
			zap.String("op", "store.NewFileStore"),
			zap.String("dir", dir),
			zap.Error(err),
		)
	}
	return &FileStore{dir: dir, logger: logger}
}

// Load reads and deserializes the document for key. Missing files are a plain
// miss; unreadable or corrupt documents are logged and treated as absent.
func (s *FileStore) Load(key string, out interface{}) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("storage load failed",
				zap.String("op", "store.Load"),
				zap.String("key", key),
				zap.Error(err),
			)
		}
		return false
	}

	if err := json.Unmarshal(data, out); err != nil {
		s.logger.Warn("corrupt stored document treated as absent",
			zap.String("op", "store.Load"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Save serializes value and writes it under key. Failures are logged and the
// write is dropped.
func (s *FileStore) Save(key string, value interface{}) bool {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("storage save failed to serialize",
			zap.String("op", "store.Save"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}

	if err := os.WriteFile(s.path(key), data, 0644); err != nil {
		s.logger.Warn("storage save failed",
			zap.String("op", "store.Save"),
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
