// Package export writes consolidated code tables as CSV.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Veraticus/sorteio/internal/draw"
	"github.com/Veraticus/sorteio/internal/model"
)

// File names used when both views of a draw are exported.
const (
	FullFileName     = "numeros_gerados.csv"
	FilteredFileName = "numeros_filtrados.csv"
)

// ErrInvalidHeader is returned when a CSV does not start with the expected header.
var ErrInvalidHeader = errors.New("invalid csv header")

var header = []string{"numero", "bilhete"}

// WriteCSV writes the table as two columns, numero and bilhete, in table order.
func WriteCSV(w io.Writer, table model.CodeTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range table {
		if err := cw.Write([]string{e.Code, string(e.Ticket)}); err != nil {
			return fmt.Errorf("failed to write code %s: %w", e.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a table written by WriteCSV. Only the code and the
// representative ticket survive the round trip.
func ReadCSV(r io.Reader) (model.CodeTable, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrInvalidHeader)
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if first[0] != header[0] || first[1] != header[1] {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidHeader, first)
	}

	table := model.CodeTable{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		table = append(table, model.CodeEntry{Code: record[0], Ticket: model.Ticket(record[1])})
	}
	return table, nil
}

// WriteAnalysis writes both views of an analysis into dir, prefixing the file
// names with prefix when it is not empty. It returns the paths written.
func WriteAnalysis(dir, prefix string, a *draw.Analysis) ([]string, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}

	views := []struct {
		table model.CodeTable
		name  string
	}{
		{name: FullFileName, table: a.Full},
		{name: FilteredFileName, table: a.Filtered},
	}

	paths := make([]string, 0, len(views))
	for _, v := range views {
		name := v.name
		if prefix != "" {
			name = prefix + "_" + name
		}
		path := filepath.Join(dir, name)
		if err := writeFile(path, v.table); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeFile(path string, table model.CodeTable) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is built from the configured export directory
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
	}()

	if err := WriteCSV(f, table); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
