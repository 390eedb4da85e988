package platform

import (
	"strings"

	"github.com/chiplab/chipletc/util"
)

// Auto-increment counter seeds for peripherals without explicit placement.
const (
	layoutBaseStart uint64 = 0x30000000
	layoutIRQStart  int    = 8
)

// genericModuleType is the fallback for peripherals with no explicit
// module-type and no class profile.
const genericModuleType = "generic_device"

// PeripheralLayout is the fully resolved placement of one peripheral:
// everything the emitter needs, with all precedence rules already applied.
type PeripheralLayout struct {
	Name        string
	DisplayName string
	ConstPrefix string
	ModuleType  string

	Base uint64
	Size uint64
	IRQ  *int

	TxURI string
	RxURI string

	RegShift *int
	BaudBase *int

	QueueCapacity int
	FreshQueue    bool
	MaxRate       int
}

// ClassProfile carries the per-class defaults applied to recognized module
// names.
type ClassProfile struct {
	Name        string
	DisplayName string
	ModuleType  string
	ConstPrefix string
	TxURI       string
	RxURI       string

	regShift *int
	baudBase *int
}

var classProfiles = map[string]ClassProfile{
	"UART": {
		Name:        "UART",
		DisplayName: "uart0",
		ModuleType:  "uart_16550",
		ConstPrefix: "UART",
		regShift:    Int(2),
		baudBase:    Int(3686400),
	},
	"VADD": {
		Name:        "VADD",
		DisplayName: "sb_vadd",
		ModuleType:  "SbVaddBridge",
		ConstPrefix: "SB_VADD",
		TxURI:       "ipc:///tmp/qbox_vadd_tx",
		RxURI:       "ipc:///tmp/qbox_vadd_rx",
	},
	"GPU": {
		Name:        "GPU",
		DisplayName: "sb_cuda",
		ModuleType:  "SbCudaBridge",
		ConstPrefix: "SB_CUDA",
		TxURI:       "ipc:///tmp/qbox_cuda_tx",
		RxURI:       "ipc:///tmp/qbox_cuda_rx",
	},
	"SENSOR": {
		Name:        "SENSOR",
		DisplayName: "sb_sensor",
		ModuleType:  "SbSensorBridge",
		ConstPrefix: "SB_SENSOR",
		TxURI:       "ipc:///tmp/qbox_sensor_tx",
		RxURI:       "ipc:///tmp/qbox_sensor_rx",
	},
}

// ClassProfiles returns the recognized class profiles sorted by name.
func ClassProfiles() []ClassProfile {
	profiles := make([]ClassProfile, 0, len(classProfiles))
	for _, p := range classProfiles {
		profiles = append(profiles, p)
	}
	return util.SliceOrderedBy(profiles, func(p *ClassProfile) string { return p.Name })
}

// assignLayout resolves a concrete placement for every peripheral, in
// declaration order. Per field the first non-absent value wins: explicit
// config value, then class-profile default, then counter (base and IRQ only).
func assignLayout(peripherals []namedPeripheral) []PeripheralLayout {
	layout := make([]PeripheralLayout, 0, len(peripherals))
	nextBase := layoutBaseStart
	nextIRQ := layoutIRQStart

	for _, periph := range peripherals {
		cfg := periph.cfg
		profile := classProfiles[strings.ToUpper(periph.name)]

		rec := PeripheralLayout{
			Name:          periph.name,
			Size:          cfg.AddrSpaceSize,
			QueueCapacity: cfg.QueueCapacity,
			FreshQueue:    cfg.FreshQueue,
			MaxRate:       cfg.MaxRate,
		}

		rec.DisplayName = profile.DisplayName
		if rec.DisplayName == "" {
			rec.DisplayName = strings.ToLower(periph.name)
		}

		rec.ConstPrefix = profile.ConstPrefix
		if rec.ConstPrefix == "" {
			rec.ConstPrefix = util.SanitizeIdentifier(periph.name)
		}

		switch {
		case cfg.ModuleType != "":
			rec.ModuleType = cfg.ModuleType
		case profile.ModuleType != "":
			rec.ModuleType = profile.ModuleType
		default:
			rec.ModuleType = genericModuleType
		}

		if cfg.Base != nil {
			rec.Base = *cfg.Base
		} else {
			rec.Base = nextBase
		}

		if cfg.IRQ != nil {
			rec.IRQ = Int(*cfg.IRQ)
		} else {
			rec.IRQ = Int(nextIRQ)
		}

		rec.TxURI = cfg.TxURI
		if rec.TxURI == "" {
			rec.TxURI = profile.TxURI
		}
		rec.RxURI = cfg.RxURI
		if rec.RxURI == "" {
			rec.RxURI = profile.RxURI
		}

		rec.RegShift = cfg.RegShift
		if rec.RegShift == nil {
			rec.RegShift = profile.regShift
		}
		rec.BaudBase = cfg.BaudBase
		if rec.BaudBase == nil {
			rec.BaudBase = profile.baudBase
		}

		// Both counters advance for every peripheral, even when the
		// peripheral pinned its own base or interrupt. The resulting
		// address/IRQ gaps are part of the output contract.
		nextBase += cfg.AddrSpaceSize
		nextIRQ++

		layout = append(layout, rec)
	}

	return layout
}
