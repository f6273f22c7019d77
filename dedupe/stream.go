package dedupe

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/prom"
	st "github.com/AustralianCyberSecurityCentre/azul-uniquestream.git/settings"
)

// max length of a single post read from a stream
const maxLineBytes = 1024 * 1024

type StreamMode int

const (
	// write every line prefixed with its verdict
	StreamVerdicts StreamMode = iota
	// write only lines that were unique
	StreamUniqueOnly
)

type StreamCounts struct {
	Read                int
	Unique              int
	PotentialDuplicates int
}

// Stream reads newline separated posts from r, checking and recording each one in order.
// Output for each post is written to w according to mode.
func (c *Checker) Stream(ctx context.Context, r io.Reader, w io.Writer, mode StreamMode) (StreamCounts, error) {
	var counts StreamCounts
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	out := bufio.NewWriter(w)
	defer out.Flush()

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return counts, err
		}
		line := scanner.Text()
		counts.Read++
		prom.StreamLines.Mark(1)
		prom.StreamBytes.Inc(int64(len(line)))
		v := c.CheckAndSet(line)
		var err error
		if v == PotentialDuplicate {
			counts.PotentialDuplicates++
			if mode == StreamVerdicts {
				_, err = fmt.Fprintf(out, "%s\t%s\n", v, line)
			}
		} else {
			counts.Unique++
			if mode == StreamVerdicts {
				_, err = fmt.Fprintf(out, "%s\t%s\n", v, line)
			} else {
				_, err = fmt.Fprintln(out, line)
			}
		}
		if err != nil {
			return counts, fmt.Errorf("write verdict: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return counts, fmt.Errorf("read posts: %w", err)
	}
	st.Logger.Debug().Int("read", counts.Read).Int("unique", counts.Unique).
		Int("duplicates", counts.PotentialDuplicates).Msg("stream finished")
	return counts, nil
}

// StreamSummary is written to the stream file log once a source has been read.
type StreamSummary struct {
	Time                string  `json:"time"`
	Source              string  `json:"source"`
	Read                int     `json:"read"`
	Unique              int     `json:"unique"`
	PotentialDuplicates int     `json:"potential_duplicates"`
	BitsSet             uint    `json:"bits_set"`
	FillRatio           float64 `json:"fill_ratio"`
}

// LogStreamSummary records the counts for one source, with the filter fill after reading it.
func (c *Checker) LogStreamSummary(source string, counts StreamCounts) StreamSummary {
	stats := c.Stats()
	summary := StreamSummary{
		Time:                time.Now().Format(time.RFC3339),
		Source:              source,
		Read:                counts.Read,
		Unique:              counts.Unique,
		PotentialDuplicates: counts.PotentialDuplicates,
		BitsSet:             stats.BitsSet,
		FillRatio:           stats.FillRatio,
	}
	st.LogStream.WriteJSON(summary)
	return summary
}
