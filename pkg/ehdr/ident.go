package ehdr

// Class is the EI_CLASS byte.
type Class uint8

const (
	ClassNone Class = 0
	Class32   Class = 1
	Class64   Class = 2
)

// Known reports whether c is one of the defined classes.
func (c Class) Known() bool { return c <= Class64 }

func (c Class) String() string { return ClassName(c) }

// Data is the EI_DATA byte, the byte order of every multi-byte field.
type Data uint8

const (
	DataNone         Data = 0
	DataLittleEndian Data = 1
	DataBigEndian    Data = 2
)

// Known reports whether d is one of the defined encodings.
func (d Data) Known() bool { return d <= DataBigEndian }

func (d Data) String() string { return DataName(d) }

// OSABI is the EI_OSABI byte.
type OSABI uint8

// Known reports whether the code has an entry in the OS/ABI registry.
func (o OSABI) Known() bool {
	_, ok := osabiNames[o]
	return ok
}

func (o OSABI) String() string { return OSABIName(o) }

// Ident is the decoded e_ident block. Classification fields are
// informational; nothing here rejects a value.
type Ident struct {
	Raw        [IdentSize]byte
	Magic      [4]byte
	Class      Class
	Data       Data
	Version    uint8
	OSABI      OSABI
	ABIVersion uint8
}

// DecodeIdent copies the first IdentSize bytes of b and classifies them.
func DecodeIdent(b []byte) (Ident, error) {
	if len(b) < IdentSize {
		return Ident{}, &TruncatedError{Field: "e_ident", Offset: 0, Need: IdentSize, Have: len(b)}
	}
	var id Ident
	copy(id.Raw[:], b[:IdentSize])
	copy(id.Magic[:], b[:4])
	id.Class = Class(b[identClass])
	id.Data = Data(b[identData])
	id.Version = b[identVersion]
	id.OSABI = OSABI(b[identOSABI])
	id.ABIVersion = b[identABIVersion]
	return id, nil
}

// HasMagic reports whether the ident starts with "\x7fELF".
func (id Ident) HasMagic() bool {
	return string(id.Magic[:]) == Magic
}
