package utility

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/kbukum/streamkit/errors"
	"github.com/kbukum/streamkit/stream"
)

// CSVRecords reads the CSV file and returns one column-name-to-value map
// per data row, using the first row as the header.
func CSVRecords(file string) ([]map[string]string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.FileError(file, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.FileError(file, err)
	}

	var out []map[string]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errors.FileError(file, err)
		}
		record := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				record[col] = row[i]
			}
		}
		out = append(out, record)
	}
}

// CSVStream reads the CSV file and returns a stream over its rows.
func CSVStream(file string) (*stream.Stream[map[string]string], error) {
	records, err := CSVRecords(file)
	if err != nil {
		return nil, err
	}
	return stream.FromSlice(records), nil
}
