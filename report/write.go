package report

import (
	"bytes"

	"github.com/google/renameio/v2"
)

// WriteFile atomically writes a rendered Summary (plus any diff text the
// caller appends) to path: write to a temp file in the same directory, then
// rename over the destination, so a reader never observes a partial report.
func WriteFile(path string, s Summary, extra []byte) error {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, s); err != nil {
		return err
	}
	buf.Write(extra)
	return renameio.WriteFile(path, buf.Bytes(), 0o644)
}
