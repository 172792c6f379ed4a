package ehdr

import (
	"encoding/binary"
	"errors"
	"strings"
	"testing"
)

type sample struct {
	class     Class
	data      Data
	osabi     OSABI
	typ       Type
	machine   Machine
	version   uint32
	entry     uint64
	phoff     uint64
	shoff     uint64
	flags     uint32
	ehsize    uint16
	phentsize uint16
	phnum     uint16
	shentsize uint16
	shnum     uint16
	shstrndx  uint16
}

func defaultSample() sample {
	return sample{
		class:     Class64,
		data:      DataLittleEndian,
		typ:       TypeExec,
		machine:   MachineX86_64,
		version:   1,
		entry:     0x400000,
		phoff:     64,
		shoff:     14712,
		ehsize:    64,
		phentsize: 56,
		phnum:     13,
		shentsize: 64,
		shnum:     31,
		shstrndx:  30,
	}
}

// build lays s out at hand-written offsets so the tests do not share the
// layout table with the decoder.
func (s sample) build() []byte {
	b := make([]byte, 64)
	copy(b, Magic)
	b[4] = byte(s.class)
	b[5] = byte(s.data)
	b[6] = 1
	b[7] = byte(s.osabi)

	var order binary.ByteOrder = binary.LittleEndian
	if s.data == DataBigEndian {
		order = binary.BigEndian
	}
	order.PutUint16(b[16:], uint16(s.typ))
	order.PutUint16(b[18:], uint16(s.machine))
	order.PutUint32(b[20:], s.version)
	order.PutUint64(b[24:], s.entry)
	order.PutUint64(b[32:], s.phoff)
	order.PutUint64(b[40:], s.shoff)
	order.PutUint32(b[48:], s.flags)
	order.PutUint16(b[52:], s.ehsize)
	order.PutUint16(b[54:], s.phentsize)
	order.PutUint16(b[56:], s.phnum)
	order.PutUint16(b[58:], s.shentsize)
	order.PutUint16(b[60:], s.shnum)
	order.PutUint16(b[62:], s.shstrndx)
	return b
}

func TestLayoutOffsets(t *testing.T) {
	want := map[FieldID]int{
		FieldType:      16,
		FieldMachine:   18,
		FieldVersion:   20,
		FieldEntry:     24,
		FieldPhOff:     32,
		FieldShOff:     40,
		FieldFlags:     48,
		FieldEhSize:    52,
		FieldPhEntSize: 54,
		FieldPhNum:     56,
		FieldShEntSize: 58,
		FieldShNum:     60,
		FieldShStrNdx:  62,
	}
	for id, off := range want {
		if got := id.Field().Offset; got != off {
			t.Errorf("%s offset: got %d want %d", id.Field().Name, got, off)
		}
	}
	if HeaderSize64 != 64 {
		t.Fatalf("HeaderSize64: got %d want 64", HeaderSize64)
	}
	if n := len(Layout()); n != int(numFields) {
		t.Fatalf("Layout length: got %d want %d", n, numFields)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()
	s := defaultSample()
	h, err := Decode(s.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if h.Ident.Class != Class64 {
		t.Fatalf("class: got %v", h.Ident.Class)
	}
	if h.Type != TypeExec {
		t.Fatalf("type: got %v", h.Type)
	}
	if h.Machine != 62 {
		t.Fatalf("machine: got %d", h.Machine)
	}
	if h.Entry != 0x400000 {
		t.Fatalf("entry: got 0x%x", h.Entry)
	}
	if h.PhOff != 64 || h.ShOff != 14712 || h.PhNum != 13 || h.ShNum != 31 || h.ShStrNdx != 30 {
		t.Fatalf("unexpected header fields: %+v", *h)
	}
	if !h.Ident.HasMagic() {
		t.Fatalf("expected magic to be recognised")
	}

	out := Format(h)
	for _, want := range []string{
		"0x400000",
		"Advanced Micro Devices X86-64",
		"EXEC (Executable file)",
		"ELF64",
		"2's complement, little endian",
		"Magic:   7f 45 4c 46 02 01 01 00 ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestDecodeDeterministic(t *testing.T) {
	t.Parallel()
	buf := defaultSample().build()
	a, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	b, err := Decode(append([]byte(nil), buf...))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if Format(a) != Format(b) {
		t.Fatalf("reports differ for identical input")
	}
}

func TestDecodeEndiannessEquivalence(t *testing.T) {
	t.Parallel()
	le := defaultSample()
	le.flags = 0x5000200
	be := le
	be.data = DataBigEndian

	hle, err := Decode(le.build())
	if err != nil {
		t.Fatalf("little endian: %v", err)
	}
	hbe, err := Decode(be.build())
	if err != nil {
		t.Fatalf("big endian: %v", err)
	}

	// Only the declared encoding differs.
	hbe.Ident.Data = hle.Ident.Data
	hbe.Ident.Raw[5] = hle.Ident.Raw[5]
	if *hle != *hbe {
		t.Fatalf("records differ:\nle=%+v\nbe=%+v", *hle, *hbe)
	}
	if Format(hle) != Format(hbe) {
		t.Fatalf("reports differ:\n%s\n%s", Format(hle), Format(hbe))
	}
}

func TestDecodeTruncated(t *testing.T) {
	t.Parallel()
	full := defaultSample().build()

	tests := []struct {
		name  string
		n     int
		field string
	}{
		{name: "empty", n: 0, field: "e_ident"},
		{name: "short ident", n: 15, field: "e_ident"},
		{name: "ident only", n: 16, field: "e_type"},
		{name: "half type", n: 17, field: "e_type"},
		{name: "inside entry", n: 30, field: "e_entry"},
		{name: "before shstrndx", n: 63, field: "e_shstrndx"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := Decode(full[:tt.n])
			if h != nil {
				t.Fatalf("expected no header, got %+v", *h)
			}
			if !errors.Is(err, ErrTruncatedInput) {
				t.Fatalf("expected ErrTruncatedInput, got %v", err)
			}
			var te *TruncatedError
			if !errors.As(err, &te) {
				t.Fatalf("expected *TruncatedError, got %T", err)
			}
			if te.Field != tt.field {
				t.Fatalf("field: got %s want %s", te.Field, tt.field)
			}
			if te.Have != tt.n {
				t.Fatalf("have: got %d want %d", te.Have, tt.n)
			}
		})
	}
}

func TestDecodeIdentShort(t *testing.T) {
	t.Parallel()
	if _, err := DecodeIdent(make([]byte, 15)); !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("expected ErrTruncatedInput, got %v", err)
	}
	id, err := DecodeIdent(defaultSample().build()[:16])
	if err != nil {
		t.Fatalf("DecodeIdent: %v", err)
	}
	if id.Class != Class64 || id.Data != DataLittleEndian || id.Version != 1 {
		t.Fatalf("unexpected ident: %+v", id)
	}
}

func TestDecodeUnsupportedEncoding(t *testing.T) {
	t.Parallel()
	for _, code := range []Data{DataNone, 3, 0xff} {
		s := defaultSample()
		buf := s.build()
		buf[5] = byte(code)
		h, err := Decode(buf)
		if h != nil {
			t.Fatalf("data %d: expected no header", code)
		}
		if !errors.Is(err, ErrUnsupportedEncoding) {
			t.Fatalf("data %d: expected ErrUnsupportedEncoding, got %v", code, err)
		}
		var ee *EncodingError
		if !errors.As(err, &ee) || ee.Code != uint8(code) {
			t.Fatalf("data %d: expected *EncodingError with code, got %v", code, err)
		}
	}
}

func TestDecodePermissiveIdent(t *testing.T) {
	t.Parallel()
	s := defaultSample()
	s.class = 7
	s.osabi = 200
	s.machine = 9999
	s.typ = 0x1234
	buf := s.build()
	copy(buf, "NOPE")

	h, err := Decode(buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if h.Ident.HasMagic() {
		t.Fatalf("expected magic mismatch to be recorded")
	}
	out := Format(h)
	for _, want := range []string{
		"Unknown Class:[7]",
		"Unknown OS/ABI:[200]",
		"Unknown Machine:[9999]",
		"Unknown Type:[4660]",
		"Magic:   4e 4f 50 45 ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		if _, err := DecodeStrict(defaultSample().build()); err != nil {
			t.Fatalf("DecodeStrict: %v", err)
		}
	})

	t.Run("bad magic", func(t *testing.T) {
		buf := defaultSample().build()
		buf[0] = 0
		if _, err := DecodeStrict(buf); !errors.Is(err, ErrInvalidMagic) {
			t.Fatalf("expected ErrInvalidMagic, got %v", err)
		}
	})

	t.Run("32-bit class", func(t *testing.T) {
		s := defaultSample()
		s.class = Class32
		if _, err := DecodeStrict(s.build()); !errors.Is(err, ErrUnsupportedClass) {
			t.Fatalf("expected ErrUnsupportedClass, got %v", err)
		}
	})

	t.Run("short input still reports truncation", func(t *testing.T) {
		if _, err := DecodeStrict([]byte(Magic)); !errors.Is(err, ErrTruncatedInput) {
			t.Fatalf("expected ErrTruncatedInput, got %v", err)
		}
	})
}

func TestHeaderByteOrder(t *testing.T) {
	t.Parallel()
	s := defaultSample()
	s.data = DataBigEndian
	h, err := Decode(s.build())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if h.ByteOrder() != binary.BigEndian {
		t.Fatalf("expected big endian order, got %v", h.ByteOrder())
	}
}
