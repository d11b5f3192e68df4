package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Guyuepp/blog-discussion/domain"
)

// Local 将附件保存到本地目录，由 gin 静态路由对外提供
type Local struct {
	dir     string
	baseURL string
}

var _ domain.AttachmentStorage = (*Local)(nil)

func NewLocal(dir, baseURL string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Local{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

func (l *Local) Put(ctx context.Context, name string, _ string, body io.Reader) (domain.StoredObject, error) {
	if err := ctx.Err(); err != nil {
		return domain.StoredObject{}, err
	}
	if name == "" || name != filepath.Base(name) {
		return domain.StoredObject{}, fmt.Errorf("invalid object name %q", name)
	}

	path := filepath.Join(l.dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return domain.StoredObject{}, err
	}
	if _, err := io.Copy(f, body); err != nil {
		f.Close()
		os.Remove(path)
		return domain.StoredObject{}, err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return domain.StoredObject{}, err
	}
	return domain.StoredObject{URL: l.baseURL + "/" + name, PublicID: name}, nil
}
