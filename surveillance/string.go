package surveillance

import (
	"fmt"
	"strings"
)

// mode3AFlags renders a Mode-3A code's garbled/invalid/smoothed tri-bools
// as a fixed-width g/i/l letter triple, '-' where the bit isn't set.
func mode3AFlags(m Mode3A) string {
	flag := func(t TriBool, c byte) byte {
		if t == True {
			return c
		}
		return '-'
	}
	return string([]byte{flag(m.Garbled, 'g'), flag(m.Invalid, 'i'), flag(m.Smoothed, 'l')})
}

// commonString renders the fields every object shares, as the common
// prefix of that object's String().
func (c Common) commonString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CAT%03d", c.AsterixCategory)
	if d, ok := c.FrameDate.Get(); ok {
		fmt.Fprintf(&b, " %04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
	if t, ok := c.FrameTime.Get(); ok {
		fmt.Fprintf(&b, " t=%.3f", t)
	}
	fmt.Fprintf(&b, " sac/sic=%d/%d", c.DataSourceIdentifier.SAC, c.DataSourceIdentifier.SIC)
	if l, ok := c.LineNumber.Get(); ok {
		fmt.Fprintf(&b, " line=%d", l)
	}
	return b.String()
}

func (r *RadarTarget) String() string {
	var b strings.Builder
	b.WriteString(r.commonString())
	if r.IsRadarTrack {
		b.WriteString(" track")
	} else {
		b.WriteString(" plot")
	}
	if tn, ok := r.TrackNumber.Get(); ok {
		fmt.Fprintf(&b, " trk=%d", tn)
	}
	if p, ok := r.Calculated.Get(); ok {
		fmt.Fprintf(&b, " xy=(%.0f,%.0f)", p.X, p.Y)
	} else if p, ok := r.Measured.Get(); ok {
		fmt.Fprintf(&b, " polar=(%.0fm,%.3frad)", p.RangeM, p.AzimuthR)
	}
	if m3a, ok := r.Mode3AInfo.Get(); ok {
		fmt.Fprintf(&b, " a=%04o/%s", m3a.Code, mode3AFlags(m3a))
	}
	if mc, ok := r.ModeCInfo.Get(); ok {
		fmt.Fprintf(&b, " fl=%.0fft", mc.ValueFeet)
	}
	if id, ok := r.TargetID.Get(); ok {
		fmt.Fprintf(&b, " id=%q", id)
	}
	return b.String()
}

func (m *Mlat) String() string {
	var b strings.Builder
	b.WriteString(m.commonString())
	if m.IsStatusMessage {
		b.WriteString(" status")
		return b.String()
	}
	b.WriteString(" mlat")
	if p, ok := m.WGS84.Get(); ok {
		fmt.Fprintf(&b, " latlon=(%.6f,%.6f)", p.Lat, p.Lon)
	} else if p, ok := m.Calculated.Get(); ok {
		fmt.Fprintf(&b, " xy=(%.0f,%.0f)", p.X, p.Y)
	}
	if m3a, ok := m.Mode3AInfo.Get(); ok {
		fmt.Fprintf(&b, " a=%04o/%s", m3a.Code, mode3AFlags(m3a))
	}
	if mc, ok := m.ModeCInfo.Get(); ok {
		fmt.Fprintf(&b, " fl=%.0fft", mc.ValueFeet)
	}
	if id, ok := m.TargetID.Get(); ok {
		fmt.Fprintf(&b, " id=%q", id)
	}
	return b.String()
}

func (a *Adsb) String() string {
	var b strings.Builder
	b.WriteString(a.commonString())
	b.WriteString(" adsb")
	if addr, ok := a.Address.Get(); ok {
		fmt.Fprintf(&b, " addr=%06X", addr)
	}
	if p, ok := a.WGS84.Get(); ok {
		fmt.Fprintf(&b, " latlon=(%.6f,%.6f)", p.Lat, p.Lon)
	}
	if alt, ok := a.GeometricAlt.Get(); ok {
		fmt.Fprintf(&b, " galt=%.1fm", alt)
	}
	if alt, ok := a.BarometricAlt.Get(); ok {
		fmt.Fprintf(&b, " balt=%.1fm", alt)
	}
	if id, ok := a.TargetID.Get(); ok {
		fmt.Fprintf(&b, " id=%q", id)
	}
	if len(a.BDSRegisters) > 0 {
		fmt.Fprintf(&b, " bds=%d", len(a.BDSRegisters))
	}
	return b.String()
}

func (s *SystemTrack) String() string {
	var b strings.Builder
	b.WriteString(s.commonString())
	b.WriteString(" systrack")
	if tn, ok := s.TrackNumber.Get(); ok {
		fmt.Fprintf(&b, " trk=%d", tn)
	}
	if p, ok := s.CalculatedWGS84.Get(); ok {
		fmt.Fprintf(&b, " latlon=(%.6f,%.6f)", p.Lat, p.Lon)
	} else if p, ok := s.CalculatedLocal.Get(); ok {
		fmt.Fprintf(&b, " xy=(%.0f,%.0f)", p.X, p.Y)
	}
	if m3a, ok := s.Mode3AInfo.Get(); ok {
		fmt.Fprintf(&b, " a=%04o", m3a.Code)
	}
	return b.String()
}

func (r *RadarService) String() string {
	var b strings.Builder
	b.WriteString(r.commonString())
	b.WriteString(" service")
	if az, ok := r.AntennaAzimuthR.Get(); ok {
		fmt.Fprintf(&b, " az=%.3frad", az)
	}
	if sn, ok := r.SectorNumber.Get(); ok {
		fmt.Fprintf(&b, " sector=%d", sn)
	}
	if len(r.StatusWords) > 0 {
		fmt.Fprintf(&b, " words=%d", len(r.StatusWords))
	}
	return b.String()
}
