package records

import "github.com/distsim/cdis-codec/bitio"

// LayerHeaderBits is the fixed width of a layer header: 10-bit layer
// number, 8-bit layer version, 16-bit layer length (§4.3 "Layer header").
const LayerHeaderBits = 10 + 8 + 16

// LayerHeader precedes every IFF information layer.
type LayerHeader struct {
	Number  uint16
	Version uint8
	// Length is the bit length of the header plus its payload; it is
	// unknown until the payload has been serialized, so it is always
	// back-patched (§9 "Back-patching").
	Length uint16
}

// WriteLayerHeader writes the layer number and version, a placeholder
// zero for length, and returns the bit offset of the length field so the
// caller can patch it once the payload's size is known.
func WriteLayerHeader(w *bitio.Writer, number uint16, version uint8) (lengthFieldAt int) {
	w.WriteUnsigned(10, uint32(number))
	w.WriteUnsigned(8, uint32(version))
	lengthFieldAt = w.BitPos()
	w.WriteUnsigned(16, 0)

	return lengthFieldAt
}

// PatchLayerLength back-patches the 16-bit length field recorded at
// lengthFieldAt with the bit span from the layer header's start (10+8
// bits before lengthFieldAt) through the writer's current position.
func PatchLayerLength(w *bitio.Writer, lengthFieldAt int) {
	headerStart := lengthFieldAt - 10 - 8
	total := w.BitPos() - headerStart
	w.PatchUnsigned(lengthFieldAt, 16, uint32(total))
}

// ReadLayerHeader reads a layer header's number, version and declared
// length. It does not report the header's bit offset or check the
// declared length against what the payload consumes.
func ReadLayerHeader(r *bitio.Reader) (LayerHeader, error) {
	number, err := r.ReadUnsigned(10)
	if err != nil {
		return LayerHeader{}, err
	}
	version, err := r.ReadUnsigned(8)
	if err != nil {
		return LayerHeader{}, err
	}
	length, err := r.ReadUnsigned(16)
	if err != nil {
		return LayerHeader{}, err
	}

	return LayerHeader{Number: uint16(number), Version: uint8(version), Length: uint16(length)}, nil
}
