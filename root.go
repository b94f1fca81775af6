// Package atxreplay provides a pure Go decoder and replay tool for
// ASTERIX (All Purpose STructured EUROCONTROL SurveIllance Information
// EXchange) surveillance data.
//
// ASTERIX is used in Air Traffic Management for exchanging surveillance
// data between radars, multilateration systems, ADS-B ground stations
// and tracking servers. This module decodes recorded or live ASTERIX
// traffic into normalised surveillance objects for listing, CSV/JSON
// export, and statistics - it never re-encodes data back to the wire.
package atxreplay

const Version = "0.1.0"
