package ehdr

// FieldKind is the ELF data type a header field is declared with.
type FieldKind uint8

const (
	KindHalf FieldKind = iota // Elf64_Half
	KindWord                  // Elf64_Word
	KindAddr                  // Elf64_Addr
	KindOff                   // Elf64_Off
)

func (k FieldKind) String() string {
	switch k {
	case KindHalf:
		return "half"
	case KindWord:
		return "word"
	case KindAddr:
		return "addr"
	case KindOff:
		return "off"
	default:
		return "unknown"
	}
}

// FieldID names a field of the 64-bit header that follows the ident block.
type FieldID int

const (
	FieldType FieldID = iota
	FieldMachine
	FieldVersion
	FieldEntry
	FieldPhOff
	FieldShOff
	FieldFlags
	FieldEhSize
	FieldPhEntSize
	FieldPhNum
	FieldShEntSize
	FieldShNum
	FieldShStrNdx

	numFields
)

// Field describes one fixed-width header field.
type Field struct {
	Name   string
	Width  int
	Kind   FieldKind
	Offset int
}

// layout64 is ordered exactly as the fields appear in the file. Offsets are
// filled in by prefix-sum at init; nothing else in the package spells out an
// offset.
var layout64 = buildLayout([numFields]Field{
	FieldType:      {Name: "e_type", Width: 2, Kind: KindHalf},
	FieldMachine:   {Name: "e_machine", Width: 2, Kind: KindHalf},
	FieldVersion:   {Name: "e_version", Width: 4, Kind: KindWord},
	FieldEntry:     {Name: "e_entry", Width: 8, Kind: KindAddr},
	FieldPhOff:     {Name: "e_phoff", Width: 8, Kind: KindOff},
	FieldShOff:     {Name: "e_shoff", Width: 8, Kind: KindOff},
	FieldFlags:     {Name: "e_flags", Width: 4, Kind: KindWord},
	FieldEhSize:    {Name: "e_ehsize", Width: 2, Kind: KindHalf},
	FieldPhEntSize: {Name: "e_phentsize", Width: 2, Kind: KindHalf},
	FieldPhNum:     {Name: "e_phnum", Width: 2, Kind: KindHalf},
	FieldShEntSize: {Name: "e_shentsize", Width: 2, Kind: KindHalf},
	FieldShNum:     {Name: "e_shnum", Width: 2, Kind: KindHalf},
	FieldShStrNdx:  {Name: "e_shstrndx", Width: 2, Kind: KindHalf},
})

// HeaderSize64 is the total size of the 64-bit header, ident included.
var HeaderSize64 = layout64[numFields-1].Offset + layout64[numFields-1].Width

func buildLayout(fields [numFields]Field) [numFields]Field {
	off := IdentSize
	for i := range fields {
		fields[i].Offset = off
		off += fields[i].Width
	}
	return fields
}

// Layout returns a copy of the 64-bit field layout in file order.
func Layout() []Field {
	out := make([]Field, len(layout64))
	copy(out, layout64[:])
	return out
}

// Field returns the layout entry for id.
func (id FieldID) Field() Field {
	return layout64[id]
}

// End is the first byte past the field.
func (f Field) End() int {
	return f.Offset + f.Width
}
