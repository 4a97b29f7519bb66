package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"

	"github.com/antithesishq/snouty/params"
)

var (
	errorStyle = color.New(color.FgRed, color.Bold)
	infoStyle  = color.New(color.FgCyan)
)

// printParams writes a redacted, pretty-printed view of the parameters to
// the error stream so the user can see what is about to be submitted. The
// unredacted values are only ever sent to the API itself.
func printParams(w io.Writer, banner string, p *params.Params) error {
	pretty, err := json.MarshalIndent(p.Redacted(), "", "  ")
	if err != nil {
		return fmt.Errorf("error rendering params: %w", err)
	}
	fmt.Fprintf(w, "\n%s\n%s\n", infoStyle.Sprint(banner), pretty)
	return nil
}

const etaFormat = "Jan 2 at 3:04 PM"

// printRunETA estimates when the report email lands: run duration plus
// roughly ten minutes of report generation.
func printRunETA(w io.Writer, p *params.Params) {
	durationMins := 0
	if n, err := strconv.Atoi(p.GetString("antithesis.duration")); err == nil {
		durationMins = n
	}
	eta := time.Now().Add(time.Duration(durationMins+10) * time.Minute)
	fmt.Fprintf(w, "\nExpect a report email from Antithesis around %s\n", eta.Format(etaFormat))
}

// printDebugETA estimates when the debugging session email lands.
func printDebugETA(w io.Writer) {
	eta := time.Now().Add(10 * time.Minute)
	fmt.Fprintf(w, "\nExpect a debugging session email from Antithesis around %s\n", eta.Format(etaFormat))
}
