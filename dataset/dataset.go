/*
Package dataset reads, writes and generates the integer arrays fed to the
scan operations.

Arrays are stored as a single int64 column in Arrow IPC stream files or
Parquet files, or as whitespace separated decimal integers in text files.
*/
package dataset

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	psort "github.com/exascience/parscan/sort"
)

// DefaultColumn is the column name used for Arrow and Parquet files.
const DefaultColumn = "value"

var (
	// ErrNullValue is returned when an input column contains nulls.
	ErrNullValue = errors.New("null value in integer column")

	// ErrColumnNotFound is returned when an Arrow stream lacks the column.
	ErrColumnNotFound = errors.New("column not found")

	// ErrUnsupportedType is returned for non-integer columns.
	ErrUnsupportedType = errors.New("unsupported column type")
)

// Format is a file format understood by Load and Save.
type Format int

const (
	Text Format = iota
	Arrow
	Parquet
)

func (f Format) String() string {
	switch f {
	case Arrow:
		return "arrow"
	case Parquet:
		return "parquet"
	default:
		return "text"
	}
}

// FormatOf derives the format from a file name extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".arrow", ".arrows", ".ipc":
		return Arrow
	case ".parquet":
		return Parquet
	default:
		return Text
	}
}

// Load reads an integer array from path in the format given by its
// extension.
func Load(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var values []int
	switch FormatOf(path) {
	case Arrow:
		values, err = ReadArrow(f, DefaultColumn)
	case Parquet:
		var info os.FileInfo
		if info, err = f.Stat(); err == nil {
			values, err = ReadParquet(f, info.Size())
		}
	default:
		values, err = ReadText(f)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return values, nil
}

// Save writes values to path in the format given by its extension.
func Save(path string, values []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	switch FormatOf(path) {
	case Arrow:
		err = WriteArrow(f, DefaultColumn, values)
	case Parquet:
		err = WriteParquet(f, values)
	default:
		err = WriteText(f, values)
	}
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

// Generate returns n pseudo-random integers in [0, limit), sorted in
// increasing order if sorted is true. Small limits produce many adjacent
// repeats, especially when sorted. A limit below 1 is treated as 1.
func Generate(n, limit int, sorted bool, seed int64) []int {
	if limit < 1 {
		limit = 1
	}
	rnd := rand.New(rand.NewSource(seed))
	values := make([]int, n)
	for i := range values {
		values[i] = rnd.Intn(limit)
	}
	if sorted {
		psort.Ints(values)
	}
	return values
}
