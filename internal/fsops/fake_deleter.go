package fsops

import (
	"os"
	"path/filepath"
)

// FakeDeleter implements Deleter for testing
// Records every call; paths whose base name is in Fail return that error,
// everything else is forwarded to Next when set
type FakeDeleter struct {
	Calls []string
	Fail  map[string]error
	Next  Deleter
}

func (f *FakeDeleter) Remove(path string) error {
	f.Calls = append(f.Calls, "rm:"+path)
	if err, ok := f.Fail[filepath.Base(path)]; ok {
		return &os.PathError{Op: "remove", Path: path, Err: err}
	}
	if f.Next != nil {
		return f.Next.Remove(path)
	}
	return nil
}
