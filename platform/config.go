package platform

// ModuleConfig is the closed set of module descriptions a platform can hold:
// a CPU, a DRAM bank, or a generic peripheral.
type ModuleConfig interface {
	isModuleConfig()
}

// LoaderKind distinguishes the boot-loader entry variants.
type LoaderKind string

const (
	// LoaderBin is a raw binary loaded at an explicit address.
	LoaderBin LoaderKind = "bin"
	// LoaderElf is an executable image carrying its own load addresses.
	LoaderElf LoaderKind = "elf"
)

// LoaderEntry is a single boot-loader item. Address is only meaningful for
// raw binaries.
type LoaderEntry struct {
	Kind    LoaderKind
	Path    string
	Address uint64
}

// BinEntry returns a raw-binary loader entry with an explicit load address.
func BinEntry(path string, address uint64) LoaderEntry {
	return LoaderEntry{Kind: LoaderBin, Path: path, Address: address}
}

// ElfEntry returns an executable-image loader entry.
func ElfEntry(path string) LoaderEntry {
	return LoaderEntry{Kind: LoaderElf, Path: path}
}

// CPUConfig describes the processor complex: ISA, reset vector, the fixed
// memory-mapped infrastructure apertures, and the boot-loader contents.
type CPUConfig struct {
	ISA         string
	ResetVector uint64

	BootROMBase uint64
	BootROMSize uint64
	CLINTBase   uint64
	CLINTSize   uint64
	PLICBase    uint64
	PLICSize    uint64
	ResetBase   uint64
	ResetSize   uint64

	LoaderEntries []LoaderEntry
}

// NewCPUConfig returns a CPU description with the default apertures and boot
// images. The loader list is a fresh copy per instance so callers can append
// to it without affecting other platforms.
func NewCPUConfig() *CPUConfig {
	return &CPUConfig{
		ISA:         "riscv64",
		ResetVector: 0x00000000,
		BootROMBase: 0x00000000,
		BootROMSize: 0x2000,
		CLINTBase:   0x02004000,
		CLINTSize:   0x8000,
		PLICBase:    0x0C000000,
		PLICSize:    0x400000,
		ResetBase:   0x00100000,
		ResetSize:   0x1000,
		LoaderEntries: []LoaderEntry{
			BinEntry("fw/bootstub.bin", 0x00000000),
			BinEntry("fw/bootstub.bin", 0x00001000),
			ElfEntry("fw/cpu_demo.elf"),
		},
	}
}

func (*CPUConfig) isModuleConfig() {}

// DRAMConfig describes a DRAM bank by size and base address.
type DRAMConfig struct {
	SizeMB int
	Base   uint64
}

// NewDRAMConfig returns a DRAM description at the default base address.
func NewDRAMConfig(sizeMB int) *DRAMConfig {
	return &DRAMConfig{
		SizeMB: sizeMB,
		Base:   0x80000000,
	}
}

// SizeBytes returns the bank size in bytes.
func (d *DRAMConfig) SizeBytes() uint64 {
	return uint64(d.SizeMB) * 1024 * 1024
}

func (*DRAMConfig) isModuleConfig() {}

// PeripheralConfig describes a memory-mapped peripheral. Nil pointer fields
// and empty strings mean "unset": the layout assigner falls back to class
// defaults or the auto-increment counters.
type PeripheralConfig struct {
	AddrSpaceSize uint64

	Base       *uint64
	IRQ        *int
	ModuleType string

	// Transport endpoints, bridge-class peripherals only.
	TxURI         string
	RxURI         string
	QueueCapacity int
	FreshQueue    bool
	MaxRate       int

	// UART only.
	RegShift *int
	BaudBase *int
}

// NewPeripheralConfig returns a peripheral description with the given
// address-space size and everything else unset.
func NewPeripheralConfig(addrSpaceSize uint64) *PeripheralConfig {
	return &PeripheralConfig{
		AddrSpaceSize: addrSpaceSize,
		MaxRate:       -1,
	}
}

func (*PeripheralConfig) isModuleConfig() {}

// Uint64 returns a pointer to v, for filling optional config fields.
func Uint64(v uint64) *uint64 {
	return &v
}

// Int returns a pointer to v, for filling optional config fields.
func Int(v int) *int {
	return &v
}
