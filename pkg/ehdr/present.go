package ehdr

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// labelWidth is the column the values of a report line start at, after the
// two space indent.
const labelWidth = 35

// Write renders h as a readelf style report. Field order and labels are
// fixed; only the sink's error is returned.
func Write(w io.Writer, h *Header) error {
	bw := bufio.NewWriter(w)
	line := func(label string, format string, args ...any) {
		fmt.Fprintf(bw, "  %-*s%s\n", labelWidth, label+":", fmt.Sprintf(format, args...))
	}

	id := h.Ident
	fmt.Fprintln(bw, "ELF Header:")
	fmt.Fprintf(bw, "  Magic:   %s\n", hexBytes(id.Raw[:]))
	line("Class", "%s", id.Class)
	line("Data", "%s", id.Data)
	line("Version", "%s", formatIdentVersion(id.Version))
	line("OS/ABI", "%s", id.OSABI)
	line("ABI Version", "%d", id.ABIVersion)
	line("Type", "%s", h.Type)
	line("Machine", "%s", h.Machine)
	line("Version", "0x%x", h.Version)
	line("Entry point address", "0x%x", h.Entry)
	line("Start of program headers", "%d (bytes into file)", h.PhOff)
	line("Start of section headers", "%d (bytes into file)", h.ShOff)
	line("Flags", "0x%x", h.Flags)
	line("Size of this header", "%d (bytes)", h.EhSize)
	line("Size of program headers", "%d (bytes)", h.PhEntSize)
	line("Number of program headers", "%d", h.PhNum)
	line("Size of section headers", "%d (bytes)", h.ShEntSize)
	line("Number of section headers", "%d", h.ShNum)
	line("Section header string table index", "%d", h.ShStrNdx)
	return bw.Flush()
}

// Format returns the report Write would produce.
func Format(h *Header) string {
	var sb strings.Builder
	_ = Write(&sb, h)
	return sb.String()
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}

func formatIdentVersion(v uint8) string {
	if v == CurrentVersion {
		return fmt.Sprintf("%d (current)", v)
	}
	return fmt.Sprintf("%d", v)
}
