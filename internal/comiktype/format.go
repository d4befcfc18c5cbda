package comiktype

// Format identifies the container format of a comic archive.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatZip
	FormatRar
)

func (f Format) String() string {
	switch f {
	case FormatZip:
		return "zip"
	case FormatRar:
		return "rar"
	default:
		return "unknown"
	}
}
