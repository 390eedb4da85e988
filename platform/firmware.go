package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type firmwareManifest struct {
	Images []firmwareImage `yaml:"images"`
}

type firmwareImage struct {
	Type    string  `yaml:"type"`
	Path    string  `yaml:"path"`
	Address *uint64 `yaml:"address"`
}

// LoadLoaderEntries reads a firmware manifest and returns the boot-loader
// entries it declares, in file order. The manifest is a YAML document:
//
//	images:
//	  - type: bin
//	    path: fw/bootstub.bin
//	    address: 0x00000000
//	  - type: elf
//	    path: fw/cpu_demo.elf
//
// Raw binaries need a load address; executable images must not carry one.
func LoadLoaderEntries(file string) ([]LoaderEntry, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("reading firmware manifest: %w", err)
	}

	var manifest firmwareManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing firmware manifest %s: %w", file, err)
	}

	entries := make([]LoaderEntry, 0, len(manifest.Images))
	for i, img := range manifest.Images {
		if img.Path == "" {
			return nil, fmt.Errorf("firmware manifest %s: image %d has no path", file, i)
		}
		switch LoaderKind(img.Type) {
		case LoaderBin:
			if img.Address == nil {
				return nil, fmt.Errorf("firmware manifest %s: raw binary %q needs a load address", file, img.Path)
			}
			entries = append(entries, BinEntry(img.Path, *img.Address))
		case LoaderElf:
			if img.Address != nil {
				return nil, fmt.Errorf("firmware manifest %s: executable image %q must not carry a load address", file, img.Path)
			}
			entries = append(entries, ElfEntry(img.Path))
		default:
			return nil, fmt.Errorf("firmware manifest %s: image %q has unknown type %q", file, img.Path, img.Type)
		}
	}
	return entries, nil
}
