package ehdr

import (
	"encoding/binary"
	"fmt"
)

// Header is a decoded 64-bit ELF header. It is produced once per decode call
// and never modified afterwards.
type Header struct {
	Ident     Ident
	Type      Type
	Machine   Machine
	Version   uint32
	Entry     uint64
	PhOff     uint64
	ShOff     uint64
	Flags     uint32
	EhSize    uint16
	PhEntSize uint16
	PhNum     uint16
	ShEntSize uint16
	ShNum     uint16
	ShStrNdx  uint16
}

// Decode decodes the header at the start of b.
//
// The magic bytes are kept but not checked, and any class byte is accepted;
// use DecodeStrict to reject input that is not an ELF64 file. On error no
// Header is returned.
func Decode(b []byte) (*Header, error) {
	id, err := DecodeIdent(b)
	if err != nil {
		return nil, err
	}
	return decodeFields(b, id)
}

// DecodeStrict is Decode with the magic and class treated as preconditions.
// Both are checked before any field is read.
func DecodeStrict(b []byte) (*Header, error) {
	id, err := DecodeIdent(b)
	if err != nil {
		return nil, err
	}
	if !id.HasMagic() {
		return nil, fmt.Errorf("%w: % x", ErrInvalidMagic, id.Magic[:])
	}
	if id.Class != Class64 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedClass, id.Class)
	}
	return decodeFields(b, id)
}

func decodeFields(b []byte, id Ident) (*Header, error) {
	r, err := newFieldReader(b, id.Data)
	if err != nil {
		return nil, err
	}

	h := Header{Ident: id}
	var typ, machine uint16
	steps := []struct {
		id  FieldID
		u16 *uint16
		u32 *uint32
		u64 *uint64
	}{
		{id: FieldType, u16: &typ},
		{id: FieldMachine, u16: &machine},
		{id: FieldVersion, u32: &h.Version},
		{id: FieldEntry, u64: &h.Entry},
		{id: FieldPhOff, u64: &h.PhOff},
		{id: FieldShOff, u64: &h.ShOff},
		{id: FieldFlags, u32: &h.Flags},
		{id: FieldEhSize, u16: &h.EhSize},
		{id: FieldPhEntSize, u16: &h.PhEntSize},
		{id: FieldPhNum, u16: &h.PhNum},
		{id: FieldShEntSize, u16: &h.ShEntSize},
		{id: FieldShNum, u16: &h.ShNum},
		{id: FieldShStrNdx, u16: &h.ShStrNdx},
	}
	for _, s := range steps {
		switch {
		case s.u16 != nil:
			*s.u16, err = r.readU16(s.id)
		case s.u32 != nil:
			*s.u32, err = r.readU32(s.id)
		default:
			*s.u64, err = r.readU64(s.id)
		}
		if err != nil {
			return nil, err
		}
	}
	h.Type = Type(typ)
	h.Machine = Machine(machine)
	return &h, nil
}

// ByteOrder returns the byte order the header was decoded with.
func (h *Header) ByteOrder() binary.ByteOrder {
	order, _ := byteOrder(h.Ident.Data)
	return order
}
