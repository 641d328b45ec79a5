package data

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

const readBufSize = 4 << 20 // 4 MiB

// ReadLines reads every line from r, keeping each line's "\n" terminator.
// A final line without a terminator is returned as is; an empty tail is dropped.
func ReadLines(r io.Reader) ([]string, error) {
	br := bufio.NewReaderSize(r, readBufSize)
	var lines []string
	for {
		l, err := br.ReadString('\n')
		if err == io.EOF {
			if len(l) > 0 {
				lines = append(lines, l)
			}
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", len(lines)+1, err)
		}
		lines = append(lines, l)
	}
}

// LoadLines opens path and reads all of its lines into memory.
func LoadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}
