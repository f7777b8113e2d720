package wadtype

// Kind identifies which of the two WAD header variants a file carries.
type Kind uint8

const (
	// KindIWAD is a main ("internal") WAD.
	KindIWAD Kind = iota
	// KindPWAD is a patch WAD.
	KindPWAD
)

// KindFromMagic maps a 4-byte header tag to a Kind.
func KindFromMagic(magic [4]byte) (Kind, bool) {
	switch string(magic[:]) {
	case "IWAD":
		return KindIWAD, true
	case "PWAD":
		return KindPWAD, true
	default:
		return 0, false
	}
}

// String returns the header tag of the kind.
func (k Kind) String() string {
	switch k {
	case KindIWAD:
		return "IWAD"
	case KindPWAD:
		return "PWAD"
	default:
		return "unknown"
	}
}
