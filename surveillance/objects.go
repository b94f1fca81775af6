package surveillance

// DataFormat distinguishes the wire format an object was decoded from.
// The decoder only ever produces Asterix; Other exists so sinks can
// share one object shape with non-ASTERIX collaborators without a type
// switch.
type DataFormat uint8

const (
	Asterix DataFormat = iota
	Other
)

// DataSourceID is the packed (SAC, SIC) data-source identifier carried
// by almost every category's first data item.
type DataSourceID struct {
	SAC uint8
	SIC uint8
}

func (d DataSourceID) Packed() uint16 {
	return uint16(d.SAC)<<8 | uint16(d.SIC)
}

// Common carries the fields every normalised object has regardless of
// detection class: the envelope and timing metadata attached by the
// record walker, plus the data-source identifier.
type Common struct {
	AsterixCategory uint8
	DataFormat      DataFormat

	FrameDate Optional[FrameDate]
	FrameTime Optional[float64] // seconds of day

	LineNumber Optional[uint32]

	DataSourceIdentifier DataSourceID
}

// FrameDate is a plain Y/M/D calendar date, free of time zone or clock
// concerns - the envelope readers deal only in the recording's local
// calendar.
type FrameDate struct {
	Year, Month, Day int
}

// Mode3A is a 12-bit transponder identity code with validity flags,
// modelled tri-valued because "invalid"/"garbled"/"smoothed" are
// distinct unknown states, not a single present/absent bit.
type Mode3A struct {
	Code      uint16 // octal-encoded value, e.g. 0o1200
	Invalid   TriBool
	Garbled   TriBool
	Smoothed  TriBool
}

// ModeC is barometric altitude reported via the Mode-C transponder
// mode, held in both its wire unit (feet, via 100ft increments) and
// its SI-converted metric value.
type ModeC struct {
	ValueFeet   float64
	ValueMeters float64
	Invalid     TriBool
	Garbled     TriBool
}

// PolarPosition is a radar's local measured position: slant range in
// metres, azimuth in radians.
type PolarPosition struct {
	RangeM   float64
	AzimuthR float64
}

// CartesianPosition is a local Cartesian position in metres, as produced
// by calculated-position items (I048/042, I062/100, ...).
type CartesianPosition struct {
	X, Y float64
	Z    Optional[float64]
}

// WGS84Position is a geodetic position in radians - wire values are
// always degrees, always converted at parse time.
type WGS84Position struct {
	Lat, Lon      float64
	HighPrecision bool
}

// GroundVector is a velocity expressed as ground speed (m/s) and track
// angle (radians), the SI-unit form of the wire's kt/NM-per-12s and
// degree encodings.
type GroundVector struct {
	GroundSpeedMS float64
	TrackAngleR   float64
}

// CartesianVelocity is a velocity expressed as x/y components in m/s,
// as produced by items that report computed velocity in Cartesian
// rather than polar form (I010/202).
type CartesianVelocity struct {
	VX, VY float64
}

// RadarTarget represents a primary/secondary/combined radar plot or
// radar track (CAT001, CAT002, CAT016, CAT048).
type RadarTarget struct {
	Common

	TimeOfDay Optional[float64] // seconds of day, 1/128s LSB

	Measured   Optional[PolarPosition]
	Calculated Optional[CartesianPosition]

	Mode3AInfo Optional[Mode3A]
	ModeCInfo  Optional[ModeC]

	TrackNumber Optional[uint16]
	Address     Optional[uint32] // 24-bit Mode-S address

	DetectionType Optional[uint8] // TYP subfield of the target report descriptor

	GroundVector Optional[GroundVector]

	TargetID Optional[string] // Mode S aircraft identification, when reported

	ModeSRegisters map[uint8][]byte // BDS register number -> 7-byte MB data

	IsRadarTrack bool // set by CAT016's I016/020 first-octet high bit, or by the presence of a track-only item in CAT048
}

// Mlat represents a multilateration report (CAT010) or system status
// (CAT019).
type Mlat struct {
	Common

	TimeOfDay Optional[float64]

	Calculated Optional[CartesianPosition]
	WGS84      Optional[WGS84Position]
	Velocity   Optional[GroundVector]
	// ComputedVelocity is I010/202's x/y velocity, distinct from
	// Velocity's polar speed/track form at I010/200 - the two items
	// coexist on a v3 (1.1) record.
	ComputedVelocity Optional[CartesianVelocity]

	Mode3AInfo Optional[Mode3A]
	ModeCInfo  Optional[ModeC]

	Address  Optional[uint32]
	TargetID Optional[string]

	DetectionType Optional[uint8]

	IsStatusMessage bool
}

// Adsb represents an ADS-B report (CAT021/CAT221).
type Adsb struct {
	Common

	WGS84         Optional[WGS84Position]
	GeometricAlt  Optional[float64] // metres
	BarometricAlt Optional[float64] // metres

	GroundVector Optional[GroundVector]
	AirVector    Optional[GroundVector] // true airspeed + heading, when ground vector absent

	TargetID     Optional[string]
	TargetStatus Optional[uint8]

	MOPSVersion Optional[uint8]

	Address Optional[uint32]

	BDSRegisters map[uint8][]byte // register number -> 7-byte MB data
}

// SystemTrack represents a fused/output track (CAT003, CAT062-shaped
// track servers).
type SystemTrack struct {
	Common

	TrackNumber Optional[uint16]

	CalculatedLocal Optional[CartesianPosition]
	CalculatedWGS84 Optional[WGS84Position]

	GroundVector Optional[GroundVector]
	ClimbRateMS  Optional[float64]

	Mode3AInfo Optional[Mode3A]
}

// RadarService represents a sector/status message (CAT002, CAT065).
type RadarService struct {
	Common

	AntennaAzimuthR Optional[float64]
	SectorNumber    Optional[uint8]
	StatusWords     []uint16
}

// CommonFields lets the record walker attach envelope/timing metadata
// (category, frame date/time, line number) to whichever concrete object
// a category produced, without the walker importing each concrete type.
type CommonFields interface {
	CommonFields() *Common
}

func (r *RadarTarget) CommonFields() *Common   { return &r.Common }
func (m *Mlat) CommonFields() *Common          { return &m.Common }
func (a *Adsb) CommonFields() *Common          { return &a.Common }
func (s *SystemTrack) CommonFields() *Common   { return &s.Common }
func (r *RadarService) CommonFields() *Common  { return &r.Common }
