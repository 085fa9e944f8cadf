package dataset

import (
	"errors"
	"io"

	"github.com/parquet-go/parquet-go"
)

type valueRecord struct {
	Value int64 `parquet:"value"`
}

// WriteParquet writes values as a zstd compressed Parquet file with a
// single int64 column named "value".
func WriteParquet(w io.Writer, values []int) error {
	pw := parquet.NewGenericWriter[valueRecord](w, parquet.Compression(&parquet.Zstd))

	rows := make([]valueRecord, len(values))
	for i, v := range values {
		rows[i].Value = int64(v)
	}
	if _, err := pw.Write(rows); err != nil {
		_ = pw.Close()
		return err
	}
	return pw.Close()
}

// ReadParquet reads the "value" column of a Parquet file of the given size.
func ReadParquet(r io.ReaderAt, size int64) ([]int, error) {
	pf, err := parquet.OpenFile(r, size)
	if err != nil {
		return nil, err
	}

	pr := parquet.NewGenericReader[valueRecord](pf)
	defer pr.Close()

	rows := make([]valueRecord, pr.NumRows())
	for read := 0; read < len(rows); {
		n, err := pr.Read(rows[read:])
		read += n
		if errors.Is(err, io.EOF) {
			rows = rows[:read]
			break
		}
		if err != nil {
			return nil, err
		}
	}

	values := make([]int, len(rows))
	for i, row := range rows {
		values[i] = int(row.Value)
	}
	return values, nil
}
