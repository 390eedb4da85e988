// Package platform compiles an in-memory chiplet-platform description into
// the Lua configuration consumed by the simulation runtime. Callers construct
// a Platform, add modules (CPU, DRAM, peripherals), optionally connect them,
// and call Generate.
package platform

import (
	"fmt"

	"github.com/chiplab/chipletc/util"
)

// DefaultConnectionType is the interconnect assumed when none is given.
const DefaultConnectionType = "UCIe"

// Connection records a declared interconnect between two named modules.
// Connections are bookkeeping only: the emitted configuration does not
// depend on them.
type Connection struct {
	Src  string
	Dst  string
	Type string
}

// Platform is an ordered registry of named modules plus their declared
// connections. Module names are unique; adding a module under an existing
// name replaces the previous entry (last writer wins) while keeping the
// original declaration position.
type Platform struct {
	name        string
	modules     util.OrderedMap[string, ModuleConfig]
	connections []Connection
}

// New creates an empty platform with the given name.
func New(name string) *Platform {
	modules := util.NewOrderedMap[string, ModuleConfig]()
	modules.AllowOverrides()
	return &Platform{
		name:    name,
		modules: modules,
	}
}

// Name returns the platform name.
func (p *Platform) Name() string {
	return p.name
}

// AddModule stores config under name. The config type is not validated
// against the name.
func (p *Platform) AddModule(name string, config ModuleConfig) {
	p.modules.Insert(name, config)
}

// ConnectModules records a connection between two named modules. An empty
// connectionType means DefaultConnectionType. Endpoints are not validated.
func (p *Platform) ConnectModules(src, dst, connectionType string) {
	if connectionType == "" {
		connectionType = DefaultConnectionType
	}
	p.connections = append(p.connections, Connection{Src: src, Dst: dst, Type: connectionType})
}

// Connections returns the declared connections in declaration order.
func (p *Platform) Connections() []Connection {
	result := make([]Connection, len(p.connections))
	copy(result, p.connections)
	return result
}

type namedPeripheral struct {
	name string
	cfg  *PeripheralConfig
}

// cpu returns the first CPU module in declaration order. Exactly one CPU must
// exist per platform; its absence is a configuration error.
func (p *Platform) cpu() (*CPUConfig, error) {
	for _, entry := range p.modules.Entries() {
		switch cfg := entry.Value.(type) {
		case *CPUConfig:
			return cfg, nil
		case *DRAMConfig, *PeripheralConfig:
			// keep scanning
		}
	}
	return nil, fmt.Errorf("platform %q declares no CPU module", p.name)
}

// dram returns the first DRAM module in declaration order, or nil. DRAM is
// optional.
func (p *Platform) dram() *DRAMConfig {
	for _, entry := range p.modules.Entries() {
		switch cfg := entry.Value.(type) {
		case *DRAMConfig:
			return cfg
		case *CPUConfig, *PeripheralConfig:
			// keep scanning
		}
	}
	return nil
}

// peripherals returns all peripheral modules in declaration order.
func (p *Platform) peripherals() []namedPeripheral {
	var result []namedPeripheral
	for _, entry := range p.modules.Entries() {
		switch cfg := entry.Value.(type) {
		case *PeripheralConfig:
			result = append(result, namedPeripheral{name: entry.Key, cfg: cfg})
		case *CPUConfig, *DRAMConfig:
			// keep scanning
		}
	}
	return result
}

// Render resolves the peripheral layout and returns the full configuration
// text. It is a pure function of the registry's current contents.
func (p *Platform) Render() (string, error) {
	cpu, err := p.cpu()
	if err != nil {
		return "", err
	}
	dram := p.dram()
	layout := assignLayout(p.peripherals())
	return renderConfiguration(cpu, dram, layout), nil
}

// Generate renders the configuration and writes it to outputPath. Nothing is
// written unless the full text was assembled successfully.
func (p *Platform) Generate(outputPath string) error {
	text, err := p.Render()
	if err != nil {
		return err
	}
	if err := util.WriteFile(outputPath, []byte(text)); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}
