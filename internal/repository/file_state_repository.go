package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	errorvalues "github.com/limbo/lifeos/internal/error_values"
	"github.com/limbo/lifeos/pkg/entity"
)

// FileStateRepo keeps each record in its own JSON file inside dir.
type FileStateRepo struct {
	mu          sync.Mutex
	profileFile string
	dataFile    string
}

func NewFileStateRepo(dir string) (*FileStateRepo, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.New("creating state dir error: " + err.Error())
	}
	return &FileStateRepo{
		profileFile: filepath.Join(dir, ProfileRecord+".json"),
		dataFile:    filepath.Join(dir, DataRecord+".json"),
	}, nil
}

func (fr *FileStateRepo) Load(ctx context.Context) (*entity.State, error) {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	p, err := readRecord(fr.profileFile)
	if err != nil {
		return nil, err
	}
	d, err := readRecord(fr.dataFile)
	if err != nil {
		return nil, err
	}
	if len(p) == 0 || len(d) == 0 {
		// present but empty
		return nil, errorvalues.ErrCorruptState
	}
	return decodeState(p, d)
}

func (fr *FileStateRepo) Save(ctx context.Context, profile *entity.Profile, data *entity.AppData) error {
	p, d, err := encodeState(profile, data)
	if err != nil {
		return err
	}
	fr.mu.Lock()
	defer fr.mu.Unlock()
	if err := atomicWriteFile(fr.dataFile, d); err != nil {
		return errors.New("writing app data error: " + err.Error())
	}
	if err := atomicWriteFile(fr.profileFile, p); err != nil {
		return errors.New("writing profile error: " + err.Error())
	}
	return nil
}

func (fr *FileStateRepo) Reset(ctx context.Context) error {
	fr.mu.Lock()
	defer fr.mu.Unlock()
	for _, f := range []string{fr.profileFile, fr.dataFile} {
		if err := os.Remove(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return errors.New("removing state file error: " + err.Error())
		}
	}
	return nil
}

func readRecord(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errorvalues.ErrNoState
		}
		return nil, errors.New("reading state file error: " + err.Error())
	}
	return b, nil
}

// atomicWriteFile replaces path with data through a synced temp file and a rename.
func atomicWriteFile(path string, data []byte) error {
	tempFile := path + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}
	return os.Rename(tempFile, path)
}

var _ StateRepositoryI = (*FileStateRepo)(nil)
