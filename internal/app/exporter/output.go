package exporter

import (
	"bufio"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/peetscott/edict2-browser/internal/domain"
)

// outputPerm is the mode of a new output file, before the umask.
const outputPerm = 0o644

// outputFile buffers the generated script in a temp file next to dest and
// renames it over dest on Commit. Until then an existing dest is untouched.
type outputFile struct {
	dest string
	tmp  *os.File
	bw   *bufio.Writer
	done bool
}

// createOutput opens a temp file for dest. A new file gets outputPerm
// filtered by the umask; a replaced file keeps the mode it had.
func createOutput(dest string, bufSize int) (*outputFile, error) {
	perm, keep, err := destMode(dest)
	if err != nil {
		return nil, domain.NewIOError("stat", dest, err)
	}

	name := filepath.Join(filepath.Dir(dest), ".edict2js-"+uuid.NewString())
	tmp, err := os.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return nil, domain.NewIOError("create", dest, err)
	}
	if keep {
		if err := tmp.Chmod(perm); err != nil {
			_ = tmp.Close()
			_ = os.Remove(name)
			return nil, domain.NewIOError("chmod", dest, err)
		}
	}
	return &outputFile{
		dest: dest,
		tmp:  tmp,
		bw:   bufio.NewWriterSize(tmp, bufSize),
	}, nil
}

func (o *outputFile) Write(p []byte) (int, error) {
	return o.bw.Write(p)
}

// Commit flushes, syncs and renames the temp file into place.
func (o *outputFile) Commit() error {
	if err := o.bw.Flush(); err != nil {
		return domain.NewIOError("write", o.dest, err)
	}
	if err := o.tmp.Sync(); err != nil {
		return domain.NewIOError("sync", o.dest, err)
	}
	if err := o.tmp.Close(); err != nil {
		return domain.NewIOError("close", o.dest, err)
	}
	if err := os.Rename(o.tmp.Name(), o.dest); err != nil {
		return domain.NewIOError("commit", o.dest, err)
	}
	o.done = true
	_ = syncDir(filepath.Dir(o.dest))
	return nil
}

// Abort discards the temp file. It is a no-op after a successful Commit.
func (o *outputFile) Abort() {
	if o.done {
		return
	}
	o.done = true
	_ = o.tmp.Close()
	_ = os.Remove(o.tmp.Name())
}

// destMode returns the permission bits of an existing dest, or outputPerm
// when dest does not exist yet.
func destMode(dest string) (fs.FileMode, bool, error) {
	info, err := os.Stat(dest)
	if errors.Is(err, fs.ErrNotExist) {
		return outputPerm, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return info.Mode().Perm(), true, nil
}

// syncDir fsyncs the parent directory so the rename survives a crash.
func syncDir(dir string) error {
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}
