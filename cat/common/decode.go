// Package common holds wire-decoding primitives shared by every
// category's item handlers: the data items that recur, byte-for-byte
// identical or nearly so, across categories (data source identifier,
// time of day, WGS-84 position, Mode-3/A, Mode-C, track number,
// aircraft identification). Each function decodes one item's raw bytes
// into the corresponding surveillance value; it never touches the
// target object or timebase.State directly, so category packages
// compose these with their own field assignment and state propagation.
//
// Grounded on the wire layouts a monoradar plot/track category's data items
// packages, generalised from per-item DataItem.Decode(buf) methods into
// plain functions over a byte slice.
package common

import (
	"fmt"

	"github.com/kvitre/atxreplay/bitutil"
	"github.com/kvitre/atxreplay/surveillance"
)

// DecodeDataSourceID decodes I0xx/010-shaped SAC/SIC pairs (2 bytes).
func DecodeDataSourceID(data []byte) (sac, sic uint8, err error) {
	if len(data) != 2 {
		return 0, 0, fmt.Errorf("data source identifier: need 2 bytes, got %d", len(data))
	}
	return data[0], data[1], nil
}

// DecodeTimeOfDay decodes a 3-byte time-of-day field, LSB = 1/128s.
func DecodeTimeOfDay(data []byte) (float64, error) {
	if len(data) != 3 {
		return 0, fmt.Errorf("time of day: need 3 bytes, got %d", len(data))
	}
	raw := bitutil.BE24(data)
	return float64(raw) / 128.0, nil
}

// DecodeTrackNumber decodes a 2-byte, 12-bit track number (4 spare bits
// in the high nibble).
func DecodeTrackNumber(data []byte) (uint16, error) {
	if len(data) != 2 {
		return 0, fmt.Errorf("track number: need 2 bytes, got %d", len(data))
	}
	return bitutil.BE16(data) & 0x0FFF, nil
}

// wgs84Resolution24 is the LSB of a 3-byte (24-bit), +/-180deg WGS-84
// coordinate: 180 / 2^23 degrees.
const wgs84Resolution24 = 180.0 / (1 << 23)

// DecodeWGS84Position24 decodes a 6-byte WGS-84 lat/lon pair, each a
// 24-bit two's-complement value with LSB 180/2^23 degrees (I021/130-
// shaped low-resolution position), and returns both in radians.
func DecodeWGS84Position24(data []byte) (lat, lon float64, err error) {
	if len(data) != 6 {
		return 0, 0, fmt.Errorf("WGS-84 position: need 6 bytes, got %d", len(data))
	}
	latRaw := bitutil.SignExtend(bitutil.BE24(data[0:3]), 24)
	lonRaw := bitutil.SignExtend(bitutil.BE24(data[3:6]), 24)
	lat = float64(latRaw) * wgs84Resolution24 * (3.14159265358979323846 / 180.0)
	lon = float64(lonRaw) * wgs84Resolution24 * (3.14159265358979323846 / 180.0)
	return lat, lon, nil
}

// wgs84Resolution32 is the LSB of a 4-byte (32-bit) high-resolution
// WGS-84 coordinate: 180 / 2^31 degrees (I021/131 high-res / I010/041).
const wgs84Resolution32 = 180.0 / (1 << 31)

// DecodeWGS84Position32 decodes an 8-byte, high-resolution WGS-84
// lat/lon pair, each a 32-bit two's-complement value, and returns both
// in radians.
func DecodeWGS84Position32(data []byte) (lat, lon float64, err error) {
	if len(data) != 8 {
		return 0, 0, fmt.Errorf("WGS-84 high-res position: need 8 bytes, got %d", len(data))
	}
	latRaw := int32(bitutil.BE32(data[0:4]))
	lonRaw := int32(bitutil.BE32(data[4:8]))
	lat = float64(latRaw) * wgs84Resolution32 * (3.14159265358979323846 / 180.0)
	lon = float64(lonRaw) * wgs84Resolution32 * (3.14159265358979323846 / 180.0)
	return lat, lon, nil
}

// DecodeMeasuredPosition decodes a 4-byte polar position: RHO (range,
// LSB 1/256 NM) and THETA (azimuth, LSB 360/2^16 degrees), both
// unsigned, converted to metres and radians per the module's SI-unit
// contract.
func DecodeMeasuredPosition(data []byte) (rangeM, azimuthR float64, err error) {
	if len(data) != 4 {
		return 0, 0, fmt.Errorf("measured position: need 4 bytes, got %d", len(data))
	}
	rhoNM := float64(bitutil.BE16(data[0:2])) / 256.0
	thetaDeg := float64(bitutil.BE16(data[2:4])) * (360.0 / 65536.0)
	rangeM = rhoNM * 1852.0
	azimuthR = thetaDeg * (3.14159265358979323846 / 180.0)
	return rangeM, azimuthR, nil
}

// cartesianResolution64 is the LSB of a 1/64 NM Cartesian coordinate, in
// metres (I048/042, I062/100-style calculated positions).
const cartesianResolution64 = 1852.0 / 64.0

// DecodeCalculatedPositionCartesian decodes a 4-byte local Cartesian
// position (X, Y), each a 16-bit two's-complement value with LSB 1/64 NM.
func DecodeCalculatedPositionCartesian(data []byte) (x, y float64, err error) {
	if len(data) != 4 {
		return 0, 0, fmt.Errorf("calculated position: need 4 bytes, got %d", len(data))
	}
	xRaw := bitutil.SignExtend(uint32(bitutil.BE16(data[0:2])), 16)
	yRaw := bitutil.SignExtend(uint32(bitutil.BE16(data[2:4])), 16)
	return float64(xRaw) * cartesianResolution64, float64(yRaw) * cartesianResolution64, nil
}

// DecodeMode3A decodes a 2-byte Mode-3/A reply: V (invalid when set), G
// (garbled), L (smoothed when set), and the 12-bit octal-encoded
// code in the low bits.
func DecodeMode3A(data []byte) (surveillance.Mode3A, error) {
	if len(data) != 2 {
		return surveillance.Mode3A{}, fmt.Errorf("mode-3/A: need 2 bytes, got %d", len(data))
	}
	v := data[0]&0x80 != 0
	g := data[0]&0x40 != 0
	l := data[0]&0x20 != 0
	code := bitutil.BE16(data) & 0x0FFF
	return surveillance.Mode3A{
		Code:     code,
		Invalid:  surveillance.TriBoolOf(v),
		Garbled:  surveillance.TriBoolOf(g),
		Smoothed: surveillance.TriBoolOf(l),
	}, nil
}

// DecodeModeC decodes a 2-byte Mode-C flight level: V (invalid), G
// (garbled), and a 14-bit two's-complement value in 1/4 FL units.
func DecodeModeC(data []byte) (surveillance.ModeC, error) {
	if len(data) != 2 {
		return surveillance.ModeC{}, fmt.Errorf("mode-C: need 2 bytes, got %d", len(data))
	}
	v := data[0]&0x80 != 0
	g := data[0]&0x40 != 0
	raw := bitutil.BE16(data) & 0x3FFF
	fl := float64(bitutil.SignExtend(uint32(raw), 14)) / 4.0
	feet := fl * 100.0
	return surveillance.ModeC{
		ValueFeet:   feet,
		ValueMeters: feet * 0.3048,
		Invalid:     surveillance.TriBoolOf(v),
		Garbled:     surveillance.TriBoolOf(g),
	}, nil
}

// DecodeIdentification decodes a 6-byte, 8-character 6-bit-packed
// aircraft/vehicle identification field (I048/240, I021/170) using the
// shared ICAO 6-bit character set.
func DecodeIdentification(data []byte) (string, error) {
	if len(data) != 6 {
		return "", fmt.Errorf("identification: need 6 bytes, got %d", len(data))
	}
	return bitutil.ICAOString(data), nil
}

// DecodeAircraftAddress decodes a 3-byte (24-bit) Mode-S address.
func DecodeAircraftAddress(data []byte) (uint32, error) {
	if len(data) != 3 {
		return 0, fmt.Errorf("aircraft address: need 3 bytes, got %d", len(data))
	}
	return bitutil.BE24(data), nil
}

// DecodeGroundVector decodes a 4-byte ground speed / track angle pair:
// speed LSB 2^-14 NM/s, heading LSB 360/2^16 degrees (I048/200-style).
func DecodeGroundVector(data []byte) (speedMS, trackR float64, err error) {
	if len(data) != 4 {
		return 0, 0, fmt.Errorf("ground vector: need 4 bytes, got %d", len(data))
	}
	speedKt := float64(bitutil.BE16(data[0:2])) * (1.0 / 16384.0) * 3600.0
	headingDeg := float64(bitutil.BE16(data[2:4])) * (360.0 / 65536.0)
	speedMS = speedKt * 0.514444
	trackR = headingDeg * (3.14159265358979323846 / 180.0)
	return speedMS, trackR, nil
}
