package fsops

import "github.com/spf13/afero"

// FsDeleter implements Deleter on top of an afero filesystem
type FsDeleter struct {
	Fs afero.Fs
}

// NewFsDeleter returns a deleter backed by fs, or the OS filesystem when fs is nil
func NewFsDeleter(fs afero.Fs) FsDeleter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return FsDeleter{Fs: fs}
}

func (d FsDeleter) Remove(path string) error {
	return d.Fs.Remove(path)
}
