package qrcode

import (
	qr "github.com/skip2/go-qrcode"
)

// Level is the error correction level of a QR symbol.
type Level int

const (
	// Low recovers from ~7% damage.
	Low Level = iota
	// Medium recovers from ~15% damage.
	Medium
	// High recovers from ~25% damage.
	High
	// Highest recovers from ~30% damage.
	Highest
)

// String returns the single-letter QR name of the level.
func (l Level) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case High:
		return "Q"
	case Highest:
		return "H"
	default:
		return "?"
	}
}

func (l Level) recovery() qr.RecoveryLevel {
	switch l {
	case Low:
		return qr.Low
	case High:
		return qr.High
	case Highest:
		return qr.Highest
	default:
		return qr.Medium
	}
}
