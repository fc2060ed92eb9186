package codec

import (
	"os"
	"path/filepath"

	"github.com/katalvlaran/matreg/matrix"
)

const (
	ctxWriteFile = "WriteFile"
	ctxReadFile  = "ReadFile"

	fileMode os.FileMode = 0o644
)

// WriteFile encodes m and stores it at path.
//
// The bytes go to a temporary file in the same directory, which is synced and
// then renamed over path. A failure at any step removes the temporary file and
// leaves any previous content of path intact.
//
// Errors: matrix.ErrNilMatrix, ErrIO (wrapping the *fs.PathError).
func WriteFile(path string, m *matrix.Matrix, opts ...Option) (err error) {
	buf, err := Encode(m, opts...)
	if err != nil {
		return codecErrorf(ctxWriteFile, err)
	}
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return ioErrorf(ctxWriteFile, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(buf); err != nil {
		return ioErrorf(ctxWriteFile, err)
	}
	if err = tmp.Sync(); err != nil {
		return ioErrorf(ctxWriteFile, err)
	}
	if err = tmp.Chmod(fileMode); err != nil {
		return ioErrorf(ctxWriteFile, err)
	}
	if err = tmp.Close(); err != nil {
		return ioErrorf(ctxWriteFile, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return ioErrorf(ctxWriteFile, err)
	}

	return nil
}

// ReadFile loads a single-record file in either layout.
//
// Errors: ErrIO (wrapping the *fs.PathError, so fs.ErrNotExist and
// fs.ErrPermission stay matchable) plus everything Decode returns.
func ReadFile(path string, opts ...Option) (*matrix.Matrix, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, ioErrorf(ctxReadFile, err)
	}
	m, err := Decode(b, opts...)
	if err != nil {
		return nil, codecErrorf(ctxReadFile+" "+path, err)
	}

	return m, nil
}
