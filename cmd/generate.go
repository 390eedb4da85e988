package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chiplab/chipletc/config"
	"github.com/chiplab/chipletc/log"
	"github.com/chiplab/chipletc/platform"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Args:  cobra.NoArgs,
	Short: "Generates the configuration for the MVP reference platform",
	Long: `Generates the configuration for the MVP reference platform: a RISC-V CPU,
a UART, the VADD/GPU/SENSOR bridge peripherals, and 256 MB of DRAM. The
command doubles as a usage example for the platform package.`,
	Run: runGenerate,
}

var (
	outputPath       string
	firmwareManifest string
	dramSizeMB       int
)

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Path of the generated configuration file")
	generateCmd.Flags().StringVar(&firmwareManifest, "firmware", "", "Firmware manifest replacing the default boot-loader entries")
	generateCmd.Flags().IntVar(&dramSizeMB, "dram-mb", 256, "DRAM size in megabytes")
}

func runGenerate(cmd *cobra.Command, args []string) {
	cfg := config.GetConfig()
	if outputPath == "" {
		outputPath = cfg.Output
	}
	if firmwareManifest == "" {
		firmwareManifest = cfg.FirmwareManifest
	}

	p := platform.New("MVP")

	cpu := platform.NewCPUConfig()
	if firmwareManifest != "" {
		entries, err := platform.LoadLoaderEntries(firmwareManifest)
		if err != nil {
			log.Fatal("%s\n", err)
		}
		log.Debug("Loaded %d boot-loader entries from %s.\n", len(entries), firmwareManifest)
		cpu.LoaderEntries = entries
	}
	p.AddModule("CPU", cpu)

	p.AddModule("UART", platform.NewPeripheralConfig(0x1000))
	p.AddModule("VADD", platform.NewPeripheralConfig(0x1000))
	p.AddModule("GPU", platform.NewPeripheralConfig(0x1000))
	p.AddModule("SENSOR", platform.NewPeripheralConfig(0x1000))
	p.AddModule("DRAM", platform.NewDRAMConfig(dramSizeMB))

	p.ConnectModules("CPU", "UART", "UCIe")
	p.ConnectModules("CPU", "VADD", "UCIe")
	p.ConnectModules("CPU", "GPU", "UCIe")
	p.ConnectModules("CPU", "SENSOR", "UCIe")
	p.ConnectModules("CPU", "DRAM", "DDR5")

	if err := p.Generate(outputPath); err != nil {
		log.Fatal("Generating %s failed: %s\n", outputPath, err)
	}
	log.Log("Wrote %s.\n", outputPath)
}
