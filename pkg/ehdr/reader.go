package ehdr

import "encoding/binary"

// fieldReader reads layout fields out of a fully materialized buffer. It
// does no semantic interpretation.
type fieldReader struct {
	buf   []byte
	order binary.ByteOrder
}

func newFieldReader(buf []byte, d Data) (*fieldReader, error) {
	order, err := byteOrder(d)
	if err != nil {
		return nil, err
	}
	return &fieldReader{buf: buf, order: order}, nil
}

func byteOrder(d Data) (binary.ByteOrder, error) {
	switch d {
	case DataLittleEndian:
		return binary.LittleEndian, nil
	case DataBigEndian:
		return binary.BigEndian, nil
	default:
		return nil, &EncodingError{Code: uint8(d)}
	}
}

func (r *fieldReader) read(id FieldID) (uint64, error) {
	f := layout64[id]
	if f.End() > len(r.buf) {
		return 0, &TruncatedError{Field: f.Name, Offset: f.Offset, Need: f.Width, Have: len(r.buf)}
	}
	b := r.buf[f.Offset:f.End()]
	switch f.Width {
	case 2:
		return uint64(r.order.Uint16(b)), nil
	case 4:
		return uint64(r.order.Uint32(b)), nil
	case 8:
		return r.order.Uint64(b), nil
	default:
		panic("ehdr: unsupported field width")
	}
}

func (r *fieldReader) readU16(id FieldID) (uint16, error) {
	v, err := r.read(id)
	return uint16(v), err
}

func (r *fieldReader) readU32(id FieldID) (uint32, error) {
	v, err := r.read(id)
	return uint32(v), err
}

func (r *fieldReader) readU64(id FieldID) (uint64, error) {
	return r.read(id)
}
