package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStore writes files under baseDir/<orderNumber>/<category>/.
type LocalStore struct {
	baseDir string
}

func NewLocalStore(baseDir string) (*LocalStore, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("storage: base dir is empty")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create base dir: %w", err)
	}
	return &LocalStore{baseDir: baseDir}, nil
}

func (s *LocalStore) Store(src io.Reader, orderNumber, category, description, ext string) (string, error) {
	relDir := filepath.Join(sanitizeName(orderNumber), sanitizeName(category))
	absDir := filepath.Join(s.baseDir, relDir)
	if err := os.MkdirAll(absDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir: %w", err)
	}

	if ext == "" || !strings.HasPrefix(ext, ".") {
		ext = "." + strings.TrimPrefix(ext, ".")
	}
	if ext == "." {
		ext = ".jpg"
	}

	// uuid suffix keeps same-second uploads with equal descriptions apart
	name := fmt.Sprintf("%s_%s_%s%s",
		sanitizeName(description),
		time.Now().Format("02_15_04_05"),
		uuid.New().String()[:8],
		ext,
	)

	relPath := filepath.Join(relDir, name)
	absPath := filepath.Join(s.baseDir, relPath)

	dst, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("storage: create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return "", fmt.Errorf("storage: write file: %w", err)
	}

	return filepath.ToSlash(relPath), nil
}

func (s *LocalStore) Retrieve(relPath string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if os.IsNotExist(err) {
		return nil, ErrFileMissing
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read file: %w", err)
	}
	return data, nil
}

func (s *LocalStore) Remove(relPath string) error {
	err := os.Remove(filepath.Join(s.baseDir, filepath.FromSlash(relPath)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove file: %w", err)
	}
	return nil
}

func sanitizeName(name string) string {
	name = filepath.Base(name)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' {
			return r
		}
		return '_'
	}, name)
	if len(name) > 40 {
		name = name[:40]
	}
	if name == "" {
		return "file"
	}
	return name
}
