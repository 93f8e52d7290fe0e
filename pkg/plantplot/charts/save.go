package charts

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ukaji3/plantstats-go/internal/fileutil"
	"gonum.org/v1/plot"
)

// Save renders p at size and writes it to path. The image format follows the
// file extension (png, svg, pdf, ...). An existing file is replaced
// atomically.
func Save(p *plot.Plot, size FigureSize, path string) error {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if format == "" {
		return fmt.Errorf("no image format in file name %q", path)
	}

	w, h := size.Canvas()
	wt, err := p.WriterTo(w, h, format)
	if err != nil {
		return err
	}

	return fileutil.WriteFileAtomically(path, 0644, func(w io.Writer) error {
		_, err := wt.WriteTo(w)
		return err
	})
}
