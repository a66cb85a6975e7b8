package store

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/speedscore/roundtracker/internal"
)

// FileRepository keeps every account's UserData in a single JSON file
// mapping email to object. Saves are synchronous: Save does not return
// until the file has been rewritten (or the write has failed), so a
// caller's continuation always observes durable state.
type FileRepository struct {
	path     string
	mu       sync.RWMutex
	accounts map[string]*internal.UserData
	logger   internal.Logger
}

func NewFileRepository(path string, logger internal.Logger) (*FileRepository, error) {
	r := &FileRepository{
		path:     path,
		accounts: make(map[string]*internal.UserData),
		logger:   logger,
	}
	if err := r.load(); err != nil {
		logger.Errorf("store: failed to load %s: %v", path, err)
		return nil, err
	}
	return r, nil
}

func (r *FileRepository) load() error {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&r.accounts); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func atomicWriteFileJSON(path string, data interface{}) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

func (r *FileRepository) Load(ctx context.Context, email string) (*internal.UserData, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	data, ok := r.accounts[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	cp := *data
	cp.Rounds = append([]internal.Round(nil), data.Rounds...)
	return &cp, nil
}

func (r *FileRepository) Save(ctx context.Context, email string, data *internal.UserData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *data
	cp.Rounds = append([]internal.Round(nil), data.Rounds...)
	r.accounts[email] = &cp
	return atomicWriteFileJSON(r.path, r.accounts)
}

var _ UserDataRepository = (*FileRepository)(nil)
