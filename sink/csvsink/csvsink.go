// Package csvsink writes decoded objects as Excel-friendly CSV via the
// standard library's encoding/csv, one row per object across a fixed
// column set wide enough to cover every object variant.
package csvsink

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kvitre/atxreplay/sink"
	"github.com/kvitre/atxreplay/surveillance"
)

var header = []string{
	"category", "date", "time", "sac", "sic", "line", "kind",
	"track_number", "address", "lat", "lon", "x", "y", "alt_m",
	"mode3a", "modec_ft", "target_id",
}

// Sink writes one CSV row per object to w, closing the underlying
// writer (and flushing the CSV buffer) when told to.
type Sink struct {
	w      *csv.Writer
	closer io.Closer
	wrote  bool
}

func New(w io.Writer) *Sink {
	closer, _ := w.(io.Closer)
	return &Sink{w: csv.NewWriter(w), closer: closer}
}

func (s *Sink) Write(obj any) (sink.Outcome, error) {
	if !s.wrote {
		if err := s.w.Write(header); err != nil {
			return sink.Skipped, err
		}
		s.wrote = true
	}

	row, ok := flatten(obj)
	if !ok {
		return sink.Skipped, fmt.Errorf("csvsink: unsupported object type %T", obj)
	}
	if err := s.w.Write(row); err != nil {
		return sink.Skipped, err
	}
	s.w.Flush()
	return sink.Written, s.w.Error()
}

func (s *Sink) Close() error {
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return err
	}
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}

func flatten(obj any) ([]string, bool) {
	row := make([]string, len(header))

	var common surveillance.Common
	switch v := obj.(type) {
	case *surveillance.RadarTarget:
		common = v.Common
		row[6] = "radar"
		if tn, ok := v.TrackNumber.Get(); ok {
			row[7] = strconv.Itoa(int(tn))
		}
		if addr, ok := v.Address.Get(); ok {
			row[8] = fmt.Sprintf("%06X", addr)
		}
		if p, ok := v.Calculated.Get(); ok {
			row[11], row[12] = formatFloat(p.X), formatFloat(p.Y)
		}
		if m3a, ok := v.Mode3AInfo.Get(); ok {
			row[14] = fmt.Sprintf("%04o", m3a.Code)
		}
		if mc, ok := v.ModeCInfo.Get(); ok {
			row[15] = formatFloat(mc.ValueFeet)
		}
		if id, ok := v.TargetID.Get(); ok {
			row[16] = id
		}
	case *surveillance.Mlat:
		common = v.Common
		row[6] = "mlat"
		if addr, ok := v.Address.Get(); ok {
			row[8] = fmt.Sprintf("%06X", addr)
		}
		if p, ok := v.WGS84.Get(); ok {
			row[9], row[10] = formatFloat(p.Lat), formatFloat(p.Lon)
		}
		if p, ok := v.Calculated.Get(); ok {
			row[11], row[12] = formatFloat(p.X), formatFloat(p.Y)
		}
		if m3a, ok := v.Mode3AInfo.Get(); ok {
			row[14] = fmt.Sprintf("%04o", m3a.Code)
		}
		if mc, ok := v.ModeCInfo.Get(); ok {
			row[15] = formatFloat(mc.ValueFeet)
		}
		if id, ok := v.TargetID.Get(); ok {
			row[16] = id
		}
	case *surveillance.Adsb:
		common = v.Common
		row[6] = "adsb"
		if addr, ok := v.Address.Get(); ok {
			row[8] = fmt.Sprintf("%06X", addr)
		}
		if p, ok := v.WGS84.Get(); ok {
			row[9], row[10] = formatFloat(p.Lat), formatFloat(p.Lon)
		}
		if alt, ok := v.GeometricAlt.Get(); ok {
			row[13] = formatFloat(alt)
		} else if alt, ok := v.BarometricAlt.Get(); ok {
			row[13] = formatFloat(alt)
		}
		if id, ok := v.TargetID.Get(); ok {
			row[16] = id
		}
	case *surveillance.SystemTrack:
		common = v.Common
		row[6] = "systrack"
		if tn, ok := v.TrackNumber.Get(); ok {
			row[7] = strconv.Itoa(int(tn))
		}
		if p, ok := v.CalculatedWGS84.Get(); ok {
			row[9], row[10] = formatFloat(p.Lat), formatFloat(p.Lon)
		}
		if p, ok := v.CalculatedLocal.Get(); ok {
			row[11], row[12] = formatFloat(p.X), formatFloat(p.Y)
		}
		if m3a, ok := v.Mode3AInfo.Get(); ok {
			row[14] = fmt.Sprintf("%04o", m3a.Code)
		}
	case *surveillance.RadarService:
		common = v.Common
		row[6] = "service"
	default:
		return nil, false
	}

	row[0] = strconv.Itoa(int(common.AsterixCategory))
	if d, ok := common.FrameDate.Get(); ok {
		row[1] = fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	if t, ok := common.FrameTime.Get(); ok {
		row[2] = formatFloat(t)
	}
	row[3] = strconv.Itoa(int(common.DataSourceIdentifier.SAC))
	row[4] = strconv.Itoa(int(common.DataSourceIdentifier.SIC))
	if l, ok := common.LineNumber.Get(); ok {
		row[5] = strconv.Itoa(int(l))
	}
	return row, true
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
