package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pvoss/grand/errdefs"
)

// Writer sends formatted payloads to standard output or to files. The
// zero value writes to os.Stdout.
type Writer struct {
	Stdout io.Writer
}

// Write sends p to path, creating missing parent directories. Files are
// written through a temporary file and renamed so a successful return
// never leaves a partial file. An empty path writes to standard output:
// raw bytes for binary payloads, the text plus a trailing newline
// otherwise.
func (w Writer) Write(p Payload, path string) error {
	if path == "" {
		return w.writeStdout(p)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errdefs.Wrapf(errdefs.KindOutput, err, "failed to write to %s", path)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return errdefs.Wrapf(errdefs.KindOutput, err, "failed to write to %s", path)
	}
	defer os.Remove(tmp.Name())

	data := p.Bytes
	if !p.Binary {
		data = []byte(p.Text)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errdefs.Wrapf(errdefs.KindOutput, err, "failed to write to %s", path)
	}
	if err := tmp.Close(); err != nil {
		return errdefs.Wrapf(errdefs.KindOutput, err, "failed to write to %s", path)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errdefs.Wrapf(errdefs.KindOutput, err, "failed to write to %s", path)
	}
	return nil
}

func (w Writer) writeStdout(p Payload) error {
	out := w.Stdout
	if out == nil {
		out = os.Stdout
	}
	var err error
	if p.Binary {
		_, err = out.Write(p.Bytes)
	} else {
		_, err = fmt.Fprintln(out, p.Text)
	}
	return errdefs.Wrapf(errdefs.KindOutput, err, "failed to write to stdout")
}
