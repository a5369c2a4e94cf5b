package vault

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/cameportal/internal/common"
	"github.com/dmitrijs2005/cameportal/internal/filex"
)

// FSBackend stores documents below a root directory, one directory per
// entity.
type FSBackend struct {
	root string
}

func NewFSBackend(root string) (*FSBackend, error) {
	if err := filex.EnsureDir(root); err != nil {
		return nil, err
	}
	return &FSBackend{root: root}, nil
}

func (b *FSBackend) path(key string) string {
	return filepath.Join(b.root, filepath.FromSlash(key))
}

func (b *FSBackend) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := b.path(key)
	if err := filex.EnsureDir(filepath.Dir(p)); err != nil {
		return err
	}
	return filex.WriteFileAtomic(p, data, 0o660)
}

func (b *FSBackend) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, common.ErrorNotFound
	}
	return data, err
}

func (b *FSBackend) Remove(ctx context.Context, key string) error {
	err := os.Remove(b.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (b *FSBackend) List(ctx context.Context, prefix string) ([]Object, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(b.path(prefix))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	out := make([]Object, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filex.IsTemp(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		out = append(out, Object{Name: e.Name(), Size: info.Size(), ModTime: info.ModTime()})
	}
	return out, nil
}

func (b *FSBackend) AppendLine(ctx context.Context, key, line string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p := b.path(key)
	if err := filex.EnsureDir(filepath.Dir(p)); err != nil {
		return err
	}
	return filex.AppendLine(p, line)
}
