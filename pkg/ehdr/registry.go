package ehdr

import "fmt"

// Type is the e_type field.
type Type uint16

const (
	TypeNone Type = 0
	TypeRel  Type = 1
	TypeExec Type = 2
	TypeDyn  Type = 3
	TypeCore Type = 4

	typeLoOS   Type = 0xfe00
	typeHiOS   Type = 0xfeff
	typeLoProc Type = 0xff00
)

// Known reports whether t is one of the generic object types.
func (t Type) Known() bool { return t <= TypeCore }

func (t Type) String() string { return TypeName(t) }

// Machine is the e_machine field.
type Machine uint16

const (
	MachineNone    Machine = 0
	Machine386     Machine = 3
	MachineARM     Machine = 40
	MachineX86_64  Machine = 62
	MachineAArch64 Machine = 183
	MachineRISCV   Machine = 243
)

// Known reports whether m has an entry in the machine table.
func (m Machine) Known() bool {
	_, ok := lookupMachine(m)
	return ok
}

func (m Machine) String() string { return MachineName(m) }

var classNames = [...]string{
	ClassNone: "none",
	Class32:   "ELF32",
	Class64:   "ELF64",
}

var dataNames = [...]string{
	DataNone:         "none",
	DataLittleEndian: "2's complement, little endian",
	DataBigEndian:    "2's complement, big endian",
}

var typeNames = [...]string{
	TypeNone: "NONE (No file type)",
	TypeRel:  "REL (Relocatable file)",
	TypeExec: "EXEC (Executable file)",
	TypeDyn:  "DYN (Shared object file)",
	TypeCore: "CORE (Core file)",
}

var osabiNames = map[OSABI]string{
	0:   "UNIX - System V",
	1:   "HP-UX",
	2:   "NetBSD",
	3:   "UNIX - GNU",
	6:   "Sun Solaris",
	7:   "IBM AIX",
	8:   "SGI Irix",
	9:   "FreeBSD",
	10:  "Compaq TRU64 UNIX",
	11:  "Novell Modesto",
	12:  "OpenBSD",
	13:  "OpenVMS",
	14:  "HP Non-Stop Kernel",
	15:  "AROS",
	16:  "FenixOS",
	17:  "Nuxi CloudABI",
	18:  "Stratus Technologies OpenVOS",
	64:  "ARM EABI",
	97:  "ARM",
	255: "Standalone (embedded) application",
}

// machineNames is scanned linearly. At most a handful of lookups happen per
// process, so a map buys nothing.
var machineNames = []struct {
	code Machine
	name string
}{
	{MachineNone, "No machine"},
	{2, "SPARC"},
	{Machine386, "Intel 80386"},
	{8, "MIPS R3000"},
	{20, "PowerPC"},
	{21, "PowerPC64"},
	{22, "IBM S/390"},
	{MachineARM, "ARM"},
	{43, "SPARC v9"},
	{50, "Intel IA-64"},
	{MachineX86_64, "Advanced Micro Devices X86-64"},
	{173, "Renesas RX"},
	{MachineAArch64, "ARM AARCH64"},
	{MachineRISCV, "RISC-V"},
	{247, "Linux BPF"},
	{258, "LoongArch"},
}

func unknown(kind string, code uint64) string {
	return fmt.Sprintf("Unknown %s:[%d]", kind, code)
}

// ClassName resolves an EI_CLASS code. It never fails.
func ClassName(c Class) string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return unknown("Class", uint64(c))
}

// DataName resolves an EI_DATA code. It never fails.
func DataName(d Data) string {
	if int(d) < len(dataNames) {
		return dataNames[d]
	}
	return unknown("Data", uint64(d))
}

// OSABIName resolves an EI_OSABI code. It never fails.
func OSABIName(o OSABI) string {
	if name, ok := osabiNames[o]; ok {
		return name
	}
	return unknown("OS/ABI", uint64(o))
}

// TypeName resolves an e_type code. Codes in the OS and processor specific
// ranges are reported as such, with the raw value.
func TypeName(t Type) string {
	switch {
	case int(t) < len(typeNames):
		return typeNames[t]
	case t >= typeLoOS && t <= typeHiOS:
		return fmt.Sprintf("OS Specific: (0x%x)", uint16(t))
	case t >= typeLoProc:
		return fmt.Sprintf("Processor Specific: (0x%x)", uint16(t))
	default:
		return unknown("Type", uint64(t))
	}
}

// MachineName resolves an e_machine code, e.g. "Unknown Machine:[9999]" for
// a code missing from the table.
func MachineName(m Machine) string {
	if name, ok := lookupMachine(m); ok {
		return name
	}
	return unknown("Machine", uint64(m))
}

func lookupMachine(m Machine) (string, bool) {
	for _, e := range machineNames {
		if e.code == m {
			return e.name, true
		}
	}
	return "", false
}
