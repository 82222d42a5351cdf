package main

import (
	"fmt"
	"io"
	"slices"
	"text/tabwriter"

	"github.com/cwbudde/algo-fastmath/fastmath"
	"github.com/cwbudde/algo-fastmath/measure/spur"
)

// spurBits lists the table sizes reported next to the configured one.
var spurBits = []int{6, 8, 10, 12, 14}

func printSpur(w io.Writer, configured int) error {
	bits := spurBits
	if !slices.Contains(bits, configured) {
		bits = append(append([]int(nil), bits...), configured)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Table\tSource\tSFDR [dB]\tSINAD [dB]\tENOB\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "-----\t------\t---------\t----------\t----\n"); err != nil {
		return err
	}
	for _, b := range bits {
		for _, src := range []fastmath.TableSource{fastmath.SourceReference, fastmath.SourceTaylor} {
			t := fastmath.NewTable(b, src)
			res, err := spur.Measure(t.Sin)
			if err != nil {
				return fmt.Errorf("spur analysis for %d-bit %s table: %w", b, src, err)
			}
			if _, err := fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.2f\n",
				t.Len(), src, res.SFDRdB, res.SINADdB, res.ENOB,
			); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}
