package verify

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

type Summary struct {
	Total     int
	Equal     int
	Different int
	Failed    int
	Unmatched int
}

func Summarize(results []Result, unmatched []string) Summary {
	s := Summary{Total: len(results), Unmatched: len(unmatched)}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Failed++
		case r.Equal:
			s.Equal++
		default:
			s.Different++
		}
	}
	return s
}

// OK reports whether every discovered pair is equal and parsed.
func (s Summary) OK() bool {
	return s.Equal == s.Total
}

func (s Summary) String() string {
	return fmt.Sprintf("%d pairs: %d equal, %d different, %d failed, %d unmatched",
		s.Total, s.Equal, s.Different, s.Failed, s.Unmatched)
}

type Reporter struct {
	W     io.Writer
	Color bool
	Diff  bool
}

func (r *Reporter) sprintf(attr color.Attribute) func(string, ...any) string {
	c := color.New(attr)
	if r.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintfFunc()
}

// Write prints one verdict line per result, the unmatched files and the
// summary. Mismatch diffs are included when Diff is set.
func (r *Reporter) Write(results []Result, unmatched []string) error {
	ok, bad, warn := r.sprintf(color.FgGreen), r.sprintf(color.FgRed), r.sprintf(color.FgYellow)
	for _, res := range results {
		var err error
		switch {
		case res.Err != nil:
			_, err = fmt.Fprintf(r.W, "%s %s: %v\n", warn("FAIL"), res.Pair.Name, res.Err)
		case res.Equal:
			_, err = fmt.Fprintf(r.W, "%s %s\n", ok("OK  "), res.Pair.Name)
		default:
			_, err = fmt.Fprintf(r.W, "%s %s\n", bad("DIFF"), res.Pair.Name)
			if err == nil && r.Diff && res.Mismatch != nil {
				_, err = io.WriteString(r.W, res.Mismatch.String())
			}
		}
		if err != nil {
			return err
		}
	}
	for _, path := range unmatched {
		if _, err := fmt.Fprintf(r.W, "%s %s: no ts counterpart\n", warn("MISS"), path); err != nil {
			return err
		}
	}

	summary := Summarize(results, unmatched)
	line := summary.String()
	if summary.OK() {
		line = ok("%s", line)
	} else {
		line = bad("%s", line)
	}
	_, err := fmt.Fprintln(r.W, line)
	return err
}
