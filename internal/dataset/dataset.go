// Package dataset reads the play-count track table the selector samples from.
//
// The table is CSV with a header row naming at least the columns "uri" and
// "plays". Column order does not matter and extra columns are ignored. The
// table is read fresh on every run; nothing is cached or written back.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"capsule/internal/shared"
	"github.com/go-resty/resty/v2"
)

// Track is one row of the dataset: an opaque stable URI and its play count.
type Track struct {
	URI   string
	Plays int
}

// Load reads the dataset from a local path or, when the path starts with
// http:// or https://, from a remote URL.
func Load(path string) ([]Track, error) {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return loadURL(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func loadURL(url string) ([]Track, error) {
	client := resty.New()

	resp, err := client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dataset: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("%w: dataset fetch returned status %d", shared.ErrRemoteService, resp.StatusCode())
	}

	return Parse(strings.NewReader(string(resp.Body())))
}

// Parse decodes CSV rows into Track records using the header row to locate
// the "uri" and "plays" columns.
func Parse(r io.Reader) ([]Track, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read header row: %v", shared.ErrInvalidDataset, err)
	}

	uriCol, playsCol := -1, -1
	for i, name := range header {
		switch strings.TrimSpace(name) {
		case "uri":
			uriCol = i
		case "plays":
			playsCol = i
		}
	}

	if uriCol < 0 || playsCol < 0 {
		return nil, fmt.Errorf("%w: header must name uri and plays columns, got %v", shared.ErrInvalidDataset, header)
	}

	var tracks []Track
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", shared.ErrInvalidDataset, line, err)
		}

		if uriCol >= len(record) || playsCol >= len(record) {
			return nil, fmt.Errorf("%w: row %d has %d fields", shared.ErrInvalidDataset, line, len(record))
		}

		plays, err := strconv.Atoi(strings.TrimSpace(record[playsCol]))
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: plays %q is not an integer", shared.ErrInvalidDataset, line, record[playsCol])
		}

		tracks = append(tracks, Track{
			URI:   strings.TrimSpace(record[uriCol]),
			Plays: plays,
		})
	}

	return tracks, nil
}
