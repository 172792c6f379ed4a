package ehdr

import "fmt"

// Code pairs a raw enumerated value with its resolved label.
type Code struct {
	Value uint64 `json:"value"`
	Name  string `json:"name"`
	Known bool   `json:"known"`
}

// Summary is a serializable projection of a Header with every enumerated
// field resolved. Addresses and offsets stay numeric.
type Summary struct {
	Magic      string `json:"magic"`
	ValidMagic bool   `json:"valid_magic"`
	Class      Code   `json:"class"`
	Data       Code   `json:"data"`
	IdentVer   uint8  `json:"ident_version"`
	OSABI      Code   `json:"os_abi"`
	ABIVersion uint8  `json:"abi_version"`
	Type       Code   `json:"type"`
	Machine    Code   `json:"machine"`
	Version    uint32 `json:"version"`
	Entry      string `json:"entry"`
	PhOff      uint64 `json:"program_header_offset"`
	ShOff      uint64 `json:"section_header_offset"`
	Flags      uint32 `json:"flags"`
	EhSize     uint16 `json:"header_size"`
	PhEntSize  uint16 `json:"program_header_entry_size"`
	PhNum      uint16 `json:"program_header_count"`
	ShEntSize  uint16 `json:"section_header_entry_size"`
	ShNum      uint16 `json:"section_header_count"`
	ShStrNdx   uint16 `json:"section_header_string_index"`
}

// Summarize resolves h into a Summary.
func Summarize(h *Header) Summary {
	id := h.Ident
	return Summary{
		Magic:      fmt.Sprintf("%x", id.Magic[:]),
		ValidMagic: id.HasMagic(),
		Class:      Code{Value: uint64(id.Class), Name: id.Class.String(), Known: id.Class.Known()},
		Data:       Code{Value: uint64(id.Data), Name: id.Data.String(), Known: id.Data.Known()},
		IdentVer:   id.Version,
		OSABI:      Code{Value: uint64(id.OSABI), Name: id.OSABI.String(), Known: id.OSABI.Known()},
		ABIVersion: id.ABIVersion,
		Type:       Code{Value: uint64(h.Type), Name: h.Type.String(), Known: h.Type.Known()},
		Machine:    Code{Value: uint64(h.Machine), Name: h.Machine.String(), Known: h.Machine.Known()},
		Version:    h.Version,
		Entry:      fmt.Sprintf("0x%x", h.Entry),
		PhOff:      h.PhOff,
		ShOff:      h.ShOff,
		Flags:      h.Flags,
		EhSize:     h.EhSize,
		PhEntSize:  h.PhEntSize,
		PhNum:      h.PhNum,
		ShEntSize:  h.ShEntSize,
		ShNum:      h.ShNum,
		ShStrNdx:   h.ShStrNdx,
	}
}
