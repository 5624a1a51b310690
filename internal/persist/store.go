package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/pslog"
	"pkt.systems/routedrop/schema"
)

// Store persists the config document to a single JSON file. Saves are
// atomic: the document is written to a temp file in the same directory
// and renamed over the target.
type Store struct {
	path string
	log  pslog.Logger
}

// NewStore constructs a store for the given document path.
func NewStore(path string) (*Store, error) {
	return NewStoreWithLogger(path, nil)
}

// NewStoreWithLogger constructs a store with logging.
func NewStoreWithLogger(path string, logger pslog.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("config path is required")
	}
	if logger != nil {
		logger = logger.With("config_path", path)
	}
	return &Store{path: path, log: logger}, nil
}

// Path reports the document location on disk.
func (s *Store) Path() string {
	return s.path
}

// Load reads the config document. A missing file is not an error: the
// zero document is returned with ok=false. An unreadable or unparsable
// file returns schema.ErrCorruptConfig.
func (s *Store) Load() (schema.ConfigDocument, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if s.log != nil {
				s.log.Debug("config load miss")
			}
			return schema.ConfigDocument{}, false, nil
		}
		if s.log != nil {
			s.log.Warn("config load failed", "err", err)
		}
		return schema.ConfigDocument{}, false, fmt.Errorf("%w: %v", schema.ErrCorruptConfig, err)
	}
	var doc schema.ConfigDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		if s.log != nil {
			s.log.Warn("config load failed", "err", err)
		}
		return schema.ConfigDocument{}, false, fmt.Errorf("%w: %v", schema.ErrCorruptConfig, err)
	}
	if s.log != nil {
		s.log.Debug("config load ok", "tabs", len(doc.Tabs))
	}
	return doc, true, nil
}

// Save writes the config document to disk atomically.
func (s *Store) Save(doc schema.ConfigDocument) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		if s.log != nil {
			s.log.Warn("config save failed", "err", err)
		}
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		if s.log != nil {
			s.log.Warn("config save failed", "err", err)
		}
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "config-*.json")
	if err != nil {
		if s.log != nil {
			s.log.Warn("config save failed", "err", err)
		}
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		if s.log != nil {
			s.log.Warn("config save failed", "err", err)
		}
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		if s.log != nil {
			s.log.Warn("config save failed", "err", err)
		}
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		if s.log != nil {
			s.log.Warn("config save failed", "err", err)
		}
		return err
	}
	if err := os.Chmod(tmp.Name(), 0o600); err != nil {
		_ = os.Remove(tmp.Name())
		if s.log != nil {
			s.log.Warn("config save failed", "err", err)
		}
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		if s.log != nil {
			s.log.Warn("config save failed", "err", err)
		}
		return err
	}
	if s.log != nil {
		s.log.Trace("config save ok", "tabs", len(doc.Tabs))
	}
	return nil
}
