// Package ehdr decodes the fixed-size ELF file header.
//
// Decoding is pure: it takes the leading bytes of an object file and returns
// an immutable Header, or a typed error when the bytes are too short or the
// declared data encoding is not one the decoder can honour. Unknown
// enumerated codes are never errors; they resolve to a labelled fallback when
// the header is presented.
//
// Only the 64-bit header layout is decoded.
package ehdr

// Ident block constants must never change.
const (
	// IdentSize is the size of the e_ident block at the start of every ELF file.
	IdentSize = 16

	// Magic is the four byte sequence expected at the start of an ELF file.
	Magic = "\x7fELF"
)

// Ident byte indices.
const (
	identClass      = 4
	identData       = 5
	identVersion    = 6
	identOSABI      = 7
	identABIVersion = 8
)

// CurrentVersion is the only defined ELF version.
const CurrentVersion = 1
