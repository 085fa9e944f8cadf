package dataset

import (
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
)

// WriteArrow writes values as a single int64 column to an Arrow IPC stream.
func WriteArrow(w io.Writer, column string, values []int) error {
	mem := memory.NewGoAllocator()
	schema := arrow.NewSchema([]arrow.Field{
		{Name: column, Type: arrow.PrimitiveTypes.Int64},
	}, nil)

	b := array.NewInt64Builder(mem)
	defer b.Release()
	b.Reserve(len(values))
	for _, v := range values {
		b.Append(int64(v))
	}
	arr := b.NewInt64Array()
	defer arr.Release()

	rec := array.NewRecord(schema, []arrow.Array{arr}, int64(len(values)))
	defer rec.Release()

	writer := ipc.NewWriter(w, ipc.WithSchema(schema), ipc.WithAllocator(mem))
	if err := writer.Write(rec); err != nil {
		_ = writer.Close()
		return err
	}
	return writer.Close()
}

// ReadArrow reads the named integer column of all record batches of an
// Arrow IPC stream.
func ReadArrow(r io.Reader, column string) ([]int, error) {
	reader, err := ipc.NewReader(r, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, err
	}
	defer reader.Release()

	indices := reader.Schema().FieldIndices(column)
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	idx := indices[0]

	values := []int{}
	for reader.Next() {
		rec := reader.Record()
		col := rec.Column(idx)
		if col.NullN() > 0 {
			return nil, fmt.Errorf("%w: column %q", ErrNullValue, column)
		}
		switch c := col.(type) {
		case *array.Int64:
			for _, v := range c.Int64Values() {
				values = append(values, int(v))
			}
		case *array.Int32:
			for _, v := range c.Int32Values() {
				values = append(values, int(v))
			}
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, col.DataType())
		}
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return values, nil
}
