package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

func loadFromFS(ctx context.Context, files fs.FS, name string) ([]byte, error) {
	if name == "" {
		return nil, errors.New("catalog loader: fs path is required")
	}
	if files == nil {
		return nil, errors.New("catalog loader: no file system configured")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("catalog loader: invalid fs path %q", name)
	}

	file, err := files.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = file.Close()
	}()
	return readLimited(file, name)
}
