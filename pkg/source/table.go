package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table is a fully materialized snapshot of one upstream table. Adapters only
// ever read from a Table, so re-running a stage over the same snapshot always
// yields the same records.
type Table struct {
	Name string
	Rows [][]string
}

// LoadTSV reads a tab-separated table into a snapshot. Blank lines and
// #-comment lines are skipped. Line numbers are kept alongside each row so
// rejected rows can point back at the input.
func LoadTSV(name string, r io.Reader) (Table, error) {
	t := Table{Name: name}

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		t.Rows = append(t.Rows, strings.Split(line, "\t"))
	}

	if err := sc.Err(); err != nil {
		return Table{}, fmt.Errorf("read %s: %w", name, err)
	}

	return t, nil
}

// LoadTSVFile is LoadTSV over a file path, named after its basename.
func LoadTSVFile(name, path string) (Table, error) {
	fh, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer fh.Close()

	return LoadTSV(name, fh)
}
