// cmd/dump.go
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/kvitre/atxreplay/asterix"
	"github.com/kvitre/atxreplay/envelope"
	"github.com/kvitre/atxreplay/internal/stats"
	"github.com/kvitre/atxreplay/sink"
	"github.com/kvitre/atxreplay/sink/csvsink"
	"github.com/kvitre/atxreplay/sink/jsonsink"
	"github.com/kvitre/atxreplay/sink/listsink"
	"github.com/kvitre/atxreplay/surveillance"
	"github.com/kvitre/atxreplay/timebase"
)

var (
	dumpInput      string
	dumpFormat     string
	dumpOutput     string
	dumpSinkKind   string
	dumpByteOrder  string
	dumpBaseDate   string
	dumpStripSeq   bool
	dumpBaud       int
	dumpCategories string
	dumpVersions   []string
	dumpStart      float64
	dumpStop       float64
	dumpHaveStart  bool
	dumpHaveStop   bool
	dumpTimeBias   float64
	dumpStatsEvery int
)

func init() {
	dumpCmd := &cobra.Command{
		Use:   "dump",
		Short: "Replay a capture file, decoding it to a chosen sink",
		Long: `Read one envelope-framed ASTERIX capture file and decode it into
normalised surveillance objects, written to stdout or a file in one of
three formats: a human-readable listing, CSV, or JSON Lines.`,
		Example: `  # Replay a netto capture, listing every object to stdout
  atxreplay dump -i capture.ast -f netto

  # Replay an IOSS capture to CSV, only CAT021/CAT048
  atxreplay dump -i capture.ioss -f ioss --sink csv -o out.csv --categories 21,48`,
		RunE: runDump,
	}

	dumpCmd.Flags().StringVarP(&dumpInput, "input", "i", "", "Capture file (or serial port path for -f lineserial)")
	dumpCmd.MarkFlagRequired("input")
	dumpCmd.Flags().StringVarP(&dumpFormat, "format", "f", "", "Envelope format: lineserial, ioss, rff, rec, netto")
	dumpCmd.MarkFlagRequired("format")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "", "Output file (default: stdout)")
	dumpCmd.Flags().StringVar(&dumpSinkKind, "sink", "list", "Output sink: list, csv, json")
	dumpCmd.Flags().StringVar(&dumpByteOrder, "byte-order", "big", "Byte order for rff/rec: big, little")
	dumpCmd.Flags().StringVar(&dumpBaseDate, "base-date", "", "Recording start date YYYY-MM-DD (default: today)")
	dumpCmd.Flags().BoolVar(&dumpStripSeq, "strip-seq", false, "Strip a leading 4-byte little-endian sequence number (ioss)")
	dumpCmd.Flags().IntVar(&dumpBaud, "baud", 115200, "Baud rate when -i names a live serial port (lineserial)")
	dumpCmd.Flags().StringVar(&dumpCategories, "categories", "", "Comma-separated category numbers to decode (default: all)")
	dumpCmd.Flags().StringArrayVar(&dumpVersions, "ref-version", nil, "Reference version override CAT=VERSION, repeatable (e.g. 21=1.4)")
	dumpCmd.Flags().Float64Var(&dumpStart, "start", 0, "Start time of day in seconds; frames before it are skipped")
	dumpCmd.Flags().Float64Var(&dumpStop, "stop", 0, "Stop time of day in seconds; replay ends once exceeded")
	dumpCmd.Flags().Float64Var(&dumpTimeBias, "time-bias", 0, "Seconds added to every frame time before filtering/display")
	dumpCmd.Flags().IntVar(&dumpStatsEvery, "stats", 0, "Print progress stats every N seconds (0 = none)")

	dumpCmd.PreRun = func(cmd *cobra.Command, args []string) {
		dumpHaveStart = cmd.Flags().Changed("start")
		dumpHaveStop = cmd.Flags().Changed("stop")
	}

	rootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, args []string) error {
	logger := ConfigureLogger(Verbose, JsonLogs)

	bo, err := parseByteOrder(dumpByteOrder)
	if err != nil {
		return err
	}
	baseDate, err := parseBaseDate(dumpBaseDate)
	if err != nil {
		return err
	}

	reader, err := openReader(dumpFormat, dumpInput, bo, baseDate, dumpStripSeq, dumpBaud)
	if err != nil {
		return fmt.Errorf("opening %s reader: %w", dumpFormat, err)
	}
	defer reader.Close()

	var out io.WriteCloser = os.Stdout
	if dumpOutput != "" {
		f, err := os.Create(dumpOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		out = f
	}

	sk, err := buildSink(dumpSinkKind, out)
	if err != nil {
		if dumpOutput != "" {
			out.Close()
		}
		return err
	}
	defer sk.Close()

	selected, err := parseCategories(dumpCategories)
	if err != nil {
		return err
	}
	overrides, err := parseVersionOverrides(dumpVersions)
	if err != nil {
		return err
	}
	uaps, err := buildUAPs(selected, overrides)
	if err != nil {
		return err
	}

	state := timebase.NewState(timebase.Date{Year: baseDate.Year, Month: baseDate.Month, Day: baseDate.Day})
	state.TimeBias = dumpTimeBias
	for cat, version := range overrides {
		state.SetReferenceVersion(uint8(cat), version)
	}

	gate := timebase.StartStopGate{HaveStart: dumpHaveStart, Start: dumpStart, HaveStop: dumpHaveStop, Stop: dumpStop}

	msgStats := stats.NewMessageStats()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	if dumpStatsEvery > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(dumpStatsEvery) * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					msgStats.LogStats(logger, false)
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	done := make(chan error, 1)
	go func() {
		done <- processFrames(ctx, reader, uaps, state, gate, sk, msgStats, logger)
	}()

	var result error
	select {
	case <-sigCh:
		logger.Info("received shutdown signal, terminating")
		cancel()
		select {
		case result = <-done:
		case <-time.After(2 * time.Second):
			logger.Info("forced shutdown after timeout")
		}
	case result = <-done:
	}

	msgStats.LogStats(logger, true)
	return result
}

func processFrames(
	ctx context.Context,
	reader envelope.FrameReader,
	uaps map[asterix.Category]asterix.UAP,
	state *timebase.State,
	gate timebase.StartStopGate,
	sk sink.Sink,
	msgStats *stats.MessageStats,
	logger *slog.Logger,
) error {
	for {
		select {
		case <-ctx.Done():
			logger.Info("replay canceled")
			return nil
		default:
		}

		frame, err := reader.Next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if t, ok := frame.TimeOfDay.Get(); ok {
			eff := state.EffectiveTime(t)
			admit, stop := gate.Admit(eff)
			if stop {
				return nil
			}
			if !admit {
				continue
			}
			state.UpdateTOD(t, logger)
		}
		if line, ok := frame.Line.Get(); ok {
			state.SetLineNumber(line)
		}

		meta := asterix.FrameMeta{FrameDate: frame.Date, FrameTime: frame.TimeOfDay, Line: frame.Line}
		decodeBlocks(frame.Payload, uaps, meta, state, sk, msgStats, logger)
	}
}

// decodeBlocks walks the (possibly several) concatenated ASTERIX data
// blocks one frame's payload carries, skipping past any block whose
// category this invocation did not select so the walker can resync on
// the next block header rather than aborting the whole frame.
func decodeBlocks(
	payload []byte,
	uaps map[asterix.Category]asterix.UAP,
	meta asterix.FrameMeta,
	state *timebase.State,
	sk sink.Sink,
	msgStats *stats.MessageStats,
	logger *slog.Logger,
) {
	pos := 0
	for pos < len(payload) {
		if pos+3 > len(payload) {
			logger.Warn("trailing bytes shorter than a block header, dropping", "bytes", len(payload)-pos)
			return
		}
		cat := asterix.Category(payload[pos])
		length := int(payload[pos+1])<<8 | int(payload[pos+2])

		uap, ok := uaps[cat]
		if !ok {
			if length < 3 || pos+length > len(payload) {
				logger.Warn("cannot resync past unselected category block", "category", cat.String())
				return
			}
			pos += length
			continue
		}

		n, err := asterix.DecodeBlock(uap, payload[pos:], meta, state, func(obj any) bool {
			msgStats.IncrementCategory(cat)
			if _, werr := sk.Write(obj); werr != nil {
				logger.Error("sink write failed", "error", werr)
			}
			return true
		})
		if err != nil {
			msgStats.IncrementError()
			logger.Warn("block decode error", "error", err, "category", cat.String())
		}
		if n == 0 {
			return
		}
		pos += n
	}
}

func openReader(format, path string, bo envelope.ByteOrder, baseDate surveillance.FrameDate, stripSeq bool, baud int) (envelope.FrameReader, error) {
	switch format {
	case "lineserial":
		return envelope.OpenLineSerial(path, envelope.LineSerialOptions{BaudRate: baud})
	case "ioss":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return envelope.NewIOSSReader(f, envelope.IOSSOptions{StripSequenceNumber: stripSeq, BaseDate: baseDate}), nil
	case "rff":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return envelope.NewRFFReader(f, envelope.RFFOptions{ByteOrder: bo, BaseDate: baseDate}), nil
	case "rec":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return envelope.NewRECReader(f, envelope.RECOptions{ByteOrder: bo}), nil
	case "netto":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		return envelope.NewNettoReader(f), nil
	default:
		return nil, fmt.Errorf("unknown envelope format %q", format)
	}
}

func buildSink(kind string, w io.Writer) (sink.Sink, error) {
	switch kind {
	case "", "list":
		return listsink.New(w), nil
	case "csv":
		return csvsink.New(w), nil
	case "json":
		return jsonsink.New(w), nil
	default:
		return nil, fmt.Errorf("unknown sink %q", kind)
	}
}

func parseByteOrder(s string) (envelope.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "", "big":
		return envelope.BigEndian, nil
	case "little":
		return envelope.LittleEndian, nil
	default:
		return 0, fmt.Errorf("unknown byte order %q", s)
	}
}

func parseBaseDate(s string) (surveillance.FrameDate, error) {
	if s == "" {
		now := time.Now()
		return surveillance.FrameDate{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return surveillance.FrameDate{}, fmt.Errorf("invalid --base-date %q: %w", s, err)
	}
	return surveillance.FrameDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

func parseCategories(s string) ([]asterix.Category, error) {
	if s == "" {
		cats := make([]asterix.Category, 0, len(catalog))
		for _, e := range catalog {
			cats = append(cats, e.Category)
		}
		return cats, nil
	}
	var cats []asterix.Category
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid category %q: %w", part, err)
		}
		cats = append(cats, asterix.Category(n))
	}
	return cats, nil
}

func parseVersionOverrides(flags []string) (map[asterix.Category]string, error) {
	overrides := make(map[asterix.Category]string, len(flags))
	for _, f := range flags {
		parts := strings.SplitN(f, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --ref-version %q, want CAT=VERSION", f)
		}
		n, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid category in --ref-version %q: %w", f, err)
		}
		overrides[asterix.Category(n)] = strings.TrimSpace(parts[1])
	}
	return overrides, nil
}
