// cmd/stats.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kvitre/atxreplay/internal/stats"
	"github.com/kvitre/atxreplay/sink"
	"github.com/kvitre/atxreplay/timebase"
)

var (
	statsInput      string
	statsFormat     string
	statsByteOrder  string
	statsBaseDate   string
	statsStripSeq   bool
	statsBaud       int
	statsCategories string
)

func init() {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise a capture file's category mix without writing objects",
		Long:  "Decode a capture file the same way `dump` does, but discard every decoded object and print only the final per-category counts.",
		RunE:  runStats,
	}

	statsCmd.Flags().StringVarP(&statsInput, "input", "i", "", "Capture file (or serial port path for -f lineserial)")
	statsCmd.MarkFlagRequired("input")
	statsCmd.Flags().StringVarP(&statsFormat, "format", "f", "", "Envelope format: lineserial, ioss, rff, rec, netto")
	statsCmd.MarkFlagRequired("format")
	statsCmd.Flags().StringVar(&statsByteOrder, "byte-order", "big", "Byte order for rff/rec: big, little")
	statsCmd.Flags().StringVar(&statsBaseDate, "base-date", "", "Recording start date YYYY-MM-DD (default: today)")
	statsCmd.Flags().BoolVar(&statsStripSeq, "strip-seq", false, "Strip a leading 4-byte little-endian sequence number (ioss)")
	statsCmd.Flags().IntVar(&statsBaud, "baud", 115200, "Baud rate when -i names a live serial port (lineserial)")
	statsCmd.Flags().StringVar(&statsCategories, "categories", "", "Comma-separated category numbers to decode (default: all)")

	rootCmd.AddCommand(statsCmd)
}

// discardSink drops every object; it exists so `stats` can reuse the
// same decode plumbing as `dump` without writing a single line of
// output.
type discardSink struct{}

func (discardSink) Write(obj any) (sink.Outcome, error) { return sink.Skipped, nil }
func (discardSink) Close() error                        { return nil }

func runStats(cmd *cobra.Command, args []string) error {
	logger := ConfigureLogger(Verbose, JsonLogs)

	bo, err := parseByteOrder(statsByteOrder)
	if err != nil {
		return err
	}
	baseDate, err := parseBaseDate(statsBaseDate)
	if err != nil {
		return err
	}

	reader, err := openReader(statsFormat, statsInput, bo, baseDate, statsStripSeq, statsBaud)
	if err != nil {
		return fmt.Errorf("opening %s reader: %w", statsFormat, err)
	}
	defer reader.Close()

	selected, err := parseCategories(statsCategories)
	if err != nil {
		return err
	}
	uaps, err := buildUAPs(selected, nil)
	if err != nil {
		return err
	}

	state := timebase.NewState(timebase.Date{Year: baseDate.Year, Month: baseDate.Month, Day: baseDate.Day})
	gate := timebase.StartStopGate{}
	msgStats := stats.NewMessageStats()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- processFrames(ctx, reader, uaps, state, gate, discardSink{}, msgStats, logger)
	}()

	var result error
	select {
	case <-sigCh:
		logger.Info("received shutdown signal, terminating")
		cancel()
		result = <-done
	case result = <-done:
	}
	if result != nil && result != io.EOF {
		return result
	}

	msgStats.LogStats(logger, true)
	return nil
}
