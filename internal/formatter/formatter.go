// package formatter renders a sampled track selection to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"capsule/internal/dataset"
	"capsule/internal/sampler"
	"capsule/internal/shared"
)

// Supported output formats.
const (
	FormatText     = "text"
	FormatCSV      = "csv"
	FormatMarkdown = "markdown"
)

// Format renders the selection in the named format.
func Format(format, title string, tracks []dataset.Track) ([]byte, error) {
	switch format {
	case FormatText, "":
		return ToText(title, tracks), nil
	case FormatCSV:
		return ToCSV(tracks)
	case FormatMarkdown:
		return ToMarkdown(title, tracks), nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}
}

// ToCSV renders the selection as CSV with columns: URI, Plays, Stratum
func ToCSV(tracks []dataset.Track) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"URI", "Plays", "Stratum"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range tracks {
		record := []string{
			track.URI,
			strconv.Itoa(track.Plays),
			stratumOf(track).String(),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ToMarkdown renders the selection as a Markdown document grouped by stratum.
func ToMarkdown(title string, tracks []dataset.Track) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(tracks)))

	for _, s := range sampler.Strata {
		buf.WriteString(fmt.Sprintf("## %s\n\n", stratumHeading(s)))
		n := 0
		for _, track := range tracks {
			if !s.Contains(track.Plays) {
				continue
			}
			n++
			buf.WriteString(fmt.Sprintf("%d. `%s` (%d plays)\n", n, track.URI, track.Plays))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// ToText renders the selection as plain text, one track per line.
func ToText(title string, tracks []dataset.Track) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("%s (%d tracks)\n", title, len(tracks)))
	for i, track := range tracks {
		buf.WriteString(fmt.Sprintf("%3d. %-10s %4d plays  %s\n", i+1, stratumOf(track).String(), track.Plays, track.URI))
	}

	return buf.Bytes()
}

func stratumOf(track dataset.Track) sampler.Stratum {
	for _, s := range sampler.Strata {
		if s.Contains(track.Plays) {
			return s
		}
	}
	return sampler.Low
}

func stratumHeading(s sampler.Stratum) string {
	switch s {
	case sampler.High:
		return fmt.Sprintf("High rotation (%d+ plays)", sampler.HighMinPlays)
	case sampler.Medium:
		return fmt.Sprintf("Medium rotation (%d-%d plays)", sampler.MediumMinPlays, sampler.HighMinPlays-1)
	default:
		return fmt.Sprintf("Low rotation (under %d plays)", sampler.MediumMinPlays)
	}
}
