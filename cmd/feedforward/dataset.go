package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// dataset is a list of samples split into input and target columns.
type dataset struct {
	inputs  [][]float32
	targets [][]float32
}

func (d dataset) inputWidth() int  { return len(d.inputs[0]) }
func (d dataset) targetWidth() int { return len(d.targets[0]) }

// xorDataset is the classic non-linearly separable toy problem.
func xorDataset() dataset {
	return dataset{
		inputs:  [][]float32{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
		targets: [][]float32{{0}, {1}, {1}, {0}},
	}
}

func loadCSV(path string, inputCols int, header bool) (dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataset{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	return readCSV(f, inputCols, header)
}

// readCSV parses rows of numbers; the first inputCols columns are inputs and
// the rest are targets. Every row must have the same number of columns.
func readCSV(r io.Reader, inputCols int, header bool) (dataset, error) {
	if inputCols <= 0 {
		return dataset{}, fmt.Errorf("input column count must be positive, got %d", inputCols)
	}

	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var ds dataset
	for line := 1; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return dataset{}, fmt.Errorf("read dataset: %w", err)
		}
		if header && line == 1 {
			continue
		}
		if len(record) <= inputCols {
			return dataset{}, fmt.Errorf("line %d: need more than %d columns, got %d", line, inputCols, len(record))
		}

		row := make([]float32, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 32)
			if err != nil {
				return dataset{}, fmt.Errorf("line %d column %d: %w", line, i+1, err)
			}
			row[i] = float32(v)
		}
		ds.inputs = append(ds.inputs, row[:inputCols:inputCols])
		ds.targets = append(ds.targets, row[inputCols:])
	}

	if len(ds.inputs) == 0 {
		return dataset{}, errors.New("dataset is empty")
	}
	return ds, nil
}
