package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ReadText reads whitespace separated decimal integers.
func ReadText(r io.Reader) ([]int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	values := []int{}
	for scanner.Scan() {
		v, err := strconv.Atoi(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", len(values), err)
		}
		values = append(values, v)
	}
	return values, scanner.Err()
}

// WriteText writes one decimal integer per line.
func WriteText(w io.Writer, values []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range values {
		bw.WriteString(strconv.Itoa(v))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
