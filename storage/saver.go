package storage

import (
	"bytes"
	"fmt"
	"os"

	"github.com/evilsocket/vek/vector"
)

// Flush serializes v with the binary codec and writes it to fileName, the
// compression is chosen by the file extension.
func Flush[T vector.Float](v vector.Viewer[T], fileName string) error {
	c, _, ok := CompressionFor(fileName)
	if !ok {
		return fmt.Errorf("error while saving vector to %s: not a data file name", fileName)
	}

	var buf bytes.Buffer
	if err := v.AsView().Write(&buf, true); err != nil {
		return fmt.Errorf("error while serializing vector to %s: %w", fileName, err)
	}

	data, err := compress(buf.Bytes(), c)
	if err != nil {
		return fmt.Errorf("error while compressing vector to %s: %w", fileName, err)
	} else if err = os.WriteFile(fileName, data, 0644); err != nil {
		return fmt.Errorf("error while saving vector to %s: %w", fileName, err)
	}
	return nil
}
