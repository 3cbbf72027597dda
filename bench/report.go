package bench

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// PrintText writes a human-readable results table to w.
func PrintText(w io.Writer, results []Result) {
	for _, r := range results {
		status := "PASS"
		if !r.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(w, "[%s] %-24s N=%-5d P=%-3d count=%-7d size_errs=%-4d dist_errs=%-4d %s\n",
			status, r.Name, r.N, r.P, r.Count, r.SizeErrs, r.DistErrs, r.Duration)
		if r.Detail != "" {
			fmt.Fprintf(w, "         %s\n", r.Detail)
		}
	}
}

// PrintJSON writes results to w as a JSON array.
func PrintJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// PrintCSV writes results to w as CSV with a header row.
func PrintCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"name", "n", "p", "count", "size_errs", "dist_errs", "duration_ms", "pass", "detail"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Name,
			strconv.Itoa(r.N),
			strconv.Itoa(r.P),
			strconv.Itoa(r.Count),
			strconv.Itoa(r.SizeErrs),
			strconv.Itoa(r.DistErrs),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
			strconv.FormatBool(r.Pass),
			r.Detail,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
