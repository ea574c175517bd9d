package repos

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/devheloisa/Cadastro-Produtos/internal/domain"
)

// FileStore persists the full record set as a line-oriented, ';'-separated
// UTF-8 text file. It moves raw records only; field meaning and validation
// belong to the codec and the catalog service.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore { return &FileStore{path: path} }

func (s *FileStore) Path() string { return s.path }

// Load reads every non-blank line and splits it into fields. A missing file
// is an empty catalog, not an error; any other I/O failure surfaces as a
// StorageError.
func (s *FileStore) Load() ([][]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.StorageError{Op: "load", Path: s.path, Err: err}
	}

	var records [][]string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		records = append(records, strings.Split(line, Separator))
	}
	return records, nil
}

// Save overwrites the file with the given records, creating parent
// directories on first write. The content lands in a uniquely named temp
// file first and is renamed over the target, so readers never observe a
// partially written catalog.
func (s *FileStore) Save(records [][]string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &domain.StorageError{Op: "save", Path: s.path, Err: err}
	}

	var b strings.Builder
	for _, rec := range records {
		b.WriteString(strings.Join(rec, Separator))
		b.WriteByte('\n')
	}

	tmp := filepath.Join(dir, filepath.Base(s.path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, []byte(b.String()), 0o644); err != nil {
		return &domain.StorageError{Op: "save", Path: s.path, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.StorageError{Op: "save", Path: s.path, Err: err}
	}
	return nil
}
