package surveillance

import (
	"strings"
	"testing"
)

func TestOptionalZeroValueIsAbsent(t *testing.T) {
	var o Optional[int]
	if _, ok := o.Get(); ok {
		t.Fatal("zero-value Optional must not be present")
	}
	o = Some(42)
	v, ok := o.Get()
	if !ok || v != 42 {
		t.Errorf("Get() = %d,%v, want 42,true", v, ok)
	}
}

func TestTriBoolString(t *testing.T) {
	cases := map[TriBool]string{Undefined: "undefined", True: "true", False: "false"}
	for tb, want := range cases {
		if got := tb.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", tb, got, want)
		}
	}
}

func TestDataSourceIDPacked(t *testing.T) {
	d := DataSourceID{SAC: 0x01, SIC: 0x02}
	if got := d.Packed(); got != 0x0102 {
		t.Errorf("Packed() = %#x, want 0x0102", got)
	}
}

func TestRadarTargetString(t *testing.T) {
	r := &RadarTarget{
		Common: Common{
			AsterixCategory:      48,
			DataSourceIdentifier: DataSourceID{SAC: 1, SIC: 2},
		},
		TrackNumber: Some(uint16(100)),
		Mode3AInfo:  Some(Mode3A{Code: 0o1200}),
	}
	s := r.String()
	if !strings.Contains(s, "CAT048") || !strings.Contains(s, "trk=100") || !strings.Contains(s, "1200") {
		t.Errorf("String() = %q, missing expected fields", s)
	}
}

func TestAdsbStringOmitsAbsentFields(t *testing.T) {
	a := &Adsb{Common: Common{AsterixCategory: 21}}
	s := a.String()
	if strings.Contains(s, "latlon") {
		t.Errorf("String() = %q, should not render absent WGS84", s)
	}
	if !strings.Contains(s, "CAT021 sac/sic=0/0 adsb") {
		t.Errorf("String() = %q, missing category/kind", s)
	}
}
