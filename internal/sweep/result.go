package sweep

import (
	"fmt"
	"io"
)

// Outcome tags what happened to a single directory entry
type Outcome int

const (
	Skipped Outcome = iota
	Deleted
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "SKIP"
	case Deleted:
		return "DELETE"
	case Failed:
		return "ERROR"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// SkipReason explains why an entry was left alone
type SkipReason string

const (
	SkipNone           SkipReason = ""
	SkipSuffixMismatch SkipReason = "suffix_mismatch"
	SkipAllowListed    SkipReason = "allow_listed"
)

// Result is the per-entry record of a sweep
type Result struct {
	Name    string
	Path    string
	Outcome Outcome
	Skip    SkipReason // set when Outcome is Skipped
	Err     error      // set when Outcome is Failed
}

// Report aggregates the results of one sweep in directory order
type Report struct {
	Root    string
	Results []Result
}

// Deleted returns the number of entries actually removed
func (r *Report) Deleted() int {
	return r.count(Deleted)
}

// Failed returns the number of deletion attempts that failed
func (r *Report) Failed() int {
	return r.count(Failed)
}

// Skipped returns the number of entries that were not eligible
func (r *Report) Skipped() int {
	return r.count(Skipped)
}

func (r *Report) count(o Outcome) int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome == o {
			n++
		}
	}
	return n
}

// Print writes one line per deleted or failed entry, then the summary line.
// Skipped entries are silent.
func (r *Report) Print(w io.Writer) error {
	for _, res := range r.Results {
		var err error
		switch res.Outcome {
		case Deleted:
			_, err = fmt.Fprintf(w, "Deleted %s\n", res.Name)
		case Failed:
			_, err = fmt.Fprintf(w, "Error deleting %s: %v\n", res.Name, res.Err)
		}
		if err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Cleanup complete. Deleted %d files.\n", r.Deleted())
	return err
}
