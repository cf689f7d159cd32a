package graphson

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/interstatex/pkg"
	"github.com/lintang-b-s/interstatex/pkg/util"
)

type Stats struct {
	Elements int
	Vertices int
	Edges    int
}

func (s Stats) Summary(filename string) string {
	return fmt.Sprintf("Wrote %d GraphSON elements (%d vertices, %d edges) to %s",
		s.Elements, s.Vertices, s.Edges, filename)
}

// Writer writes one compact GraphSON element per line, with no surrounding array.
type Writer struct {
	bw    *bufio.Writer
	enc   *json.Encoder
	stats Stats
}

func NewWriter(w io.Writer) *Writer {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	return &Writer{
		bw:  bw,
		enc: enc,
	}
}

func (w *Writer) Write(el Element) error {
	// Encode terminates every value with '\n'.
	if err := w.enc.Encode(el); err != nil {
		return fmt.Errorf("encode element %s: %w", el.GetID(), err)
	}
	w.stats.Elements++
	switch el.GetType() {
	case pkg.VERTEX_TYPE:
		w.stats.Vertices++
	case pkg.EDGE_TYPE:
		w.stats.Edges++
	}
	return nil
}

func (w *Writer) WriteAll(elements []Element) error {
	for _, el := range elements {
		if err := w.Write(el); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) Flush() error {
	return w.bw.Flush()
}

func (w *Writer) Stats() Stats {
	return w.stats
}

// WriteFile writes elements to filename. Files ending in .bz2 are bzip2 compressed.
func WriteFile(filename string, elements []Element) (Stats, error) {
	f, err := os.Create(filename)
	if err != nil {
		return Stats{}, util.WrapErrorf(err, util.ErrInternalServerError, "create %s", filename)
	}
	defer f.Close()

	var (
		out io.Writer = f
		bz  *bzip2.Writer
	)
	if strings.HasSuffix(filename, pkg.BZIP2_SUFFIX) {
		bz, err = bzip2.NewWriter(f, &bzip2.WriterConfig{})
		if err != nil {
			return Stats{}, util.WrapErrorf(err, util.ErrInternalServerError, "bzip2 writer for %s", filename)
		}
		out = bz
	}

	w := NewWriter(out)
	if err := w.WriteAll(elements); err != nil {
		return Stats{}, util.WrapErrorf(err, util.ErrInternalServerError, "write %s", filename)
	}
	if err := w.Flush(); err != nil {
		return Stats{}, util.WrapErrorf(err, util.ErrInternalServerError, "flush %s", filename)
	}
	if bz != nil {
		if err := bz.Close(); err != nil {
			return Stats{}, util.WrapErrorf(err, util.ErrInternalServerError, "close bzip2 stream %s", filename)
		}
	}
	if err := f.Sync(); err != nil {
		return Stats{}, util.WrapErrorf(err, util.ErrInternalServerError, "sync %s", filename)
	}

	return w.Stats(), nil
}
