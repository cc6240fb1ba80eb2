// Opening files for the reader. Two small comforts over Read(): a
// gzipped file is recognised by its magic number and unpacked on the
// fly, and a plain file is mapped into memory rather than read
// through a buffer.

package pdbio

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/pdbclean/pkg/structure"
)

// ReadFile opens fname and reads it as a pdb file, compressed or
// not.
func ReadFile(fname string) (*structure.Structure, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	var magic [2]byte
	if _, err := io.ReadFull(fp, magic[:]); err == nil &&
		magic[0] == 0x1f && magic[1] == 0x8b {
		if _, err := fp.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		zr, err := gzip.NewReader(fp)
		if err != nil {
			return nil, errors.New("reading " + fname + " " + err.Error())
		}
		defer zr.Close()
		return Read(zr)
	}

	if _, err := fp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil { // an empty file cannot be mapped
		return Read(fp)
	}
	defer mm.Unmap()
	return Read(bytes.NewReader(mm))
}
