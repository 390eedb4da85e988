package platform

import (
	"fmt"
	"strings"

	"github.com/chiplab/chipletc/lua"
)

const qemuInstanceArg = `{ "&platform.qemu_inst" }`

// routerSocket renders a socket wired to the bus router at the aperture
// named by the given base/size constants.
func routerSocket(base, size string) string {
	return fmt.Sprintf(`{ address = %s, size = %s, bind = "&router.initiator_socket" }`, base, size)
}

// isBridge classifies bridge-style peripherals: those that talk to an
// external process over transport endpoints instead of being device models.
func isBridge(moduleType string) bool {
	return strings.Contains(moduleType, "Bridge") ||
		strings.HasPrefix(strings.ToLower(moduleType), "sb")
}

// renderConfiguration serializes the resolved platform into the target text
// format. Structure and punctuation are part of the compatibility contract
// with the runtime that loads the file.
func renderConfiguration(cpu *CPUConfig, dram *DRAMConfig, layout []PeripheralLayout) string {
	var buf lua.Buffer
	emitHeader(&buf)
	emitConstants(&buf, cpu, dram, layout)
	buf.Blank()
	emitPlatform(&buf, cpu, dram, layout)
	buf.Append("return platform")
	return buf.String()
}

// emitHeader writes the boilerplate preamble, including the top() helper the
// runtime uses to resolve firmware paths relative to the configuration file.
func emitHeader(buf *lua.Buffer) {
	buf.Comment("Auto-generated by chipletc")
	buf.Blank()
	buf.Append(
		"local function top()",
		`    local info = debug.getinfo(2, "S").source`,
		`    if info:sub(1, 1) == "@" then`,
		"        info = info:sub(2)",
		"    end",
		`    local dir = info:match("(.*/)")`,
		"    if dir then",
		"        return dir",
		"    end",
		`    return "./"`,
		"end",
	)
	buf.Blank()
	buf.Comment("Base and Size")
	buf.Comment("Qbox Space")
}

func emitConstants(buf *lua.Buffer, cpu *CPUConfig, dram *DRAMConfig, layout []PeripheralLayout) {
	buf.Local("BOOTROM_BASE", lua.Hex(cpu.BootROMBase))
	buf.Local("BOOTROM_SIZE", lua.Hex(cpu.BootROMSize))
	buf.Blank()
	buf.Local("CLINT_BASE", lua.Hex(cpu.CLINTBase))
	buf.Local("CLINT_SIZE", lua.Hex(cpu.CLINTSize))
	buf.Local("PLIC_BASE", lua.Hex(cpu.PLICBase))
	buf.Local("PLIC_SIZE", lua.Hex(cpu.PLICSize))
	buf.Local("RESET_BASE", lua.Hex(cpu.ResetBase))
	buf.Local("RESET_SIZE", lua.Hex(cpu.ResetSize))
	buf.Blank()
	buf.Comment("Base, Size, IRQ for peripheral")
	buf.Comment(`Base and IRQ_ID may be automatically generated by "Translator"`)
	buf.Comment("User Space")

	if dram != nil {
		buf.Local("DRAM_BASE", lua.Hex(dram.Base))
		buf.Local("DRAM_SIZE", lua.Hex(dram.SizeBytes()))
		buf.Blank()
	}

	for _, periph := range layout {
		buf.Local(periph.ConstPrefix+"_BASE", lua.Hex(periph.Base))
		buf.Local(periph.ConstPrefix+"_SIZE", lua.Hex(periph.Size))
		if periph.IRQ != nil {
			buf.Linef("local %s_IRQ = %d", periph.ConstPrefix, *periph.IRQ)
		}
		buf.Blank()
	}
	buf.TrimBlank()
}

func emitPlatform(buf *lua.Buffer, cpu *CPUConfig, dram *DRAMConfig, layout []PeripheralLayout) {
	buf.Append(
		"platform = {",
		`    moduletype = "Container";`,
		"    quantum_ns = 100000; -- 100 us global quantum",
	)
	buf.Blank()

	router := lua.NewBlock("router")
	router.Field("moduletype", lua.Str("router"))
	router.WriteTo(buf)
	buf.Blank()

	bootrom := lua.NewBlock("bootrom")
	bootrom.Field("moduletype", lua.Str("gs_memory"))
	bootrom.Field("target_socket", routerSocket("BOOTROM_BASE", "BOOTROM_SIZE"))
	bootrom.WriteTo(buf)
	buf.Blank()

	instMgr := lua.NewBlock("qemu_inst_mgr")
	instMgr.Field("moduletype", lua.Str("QemuInstanceManager"))
	instMgr.WriteTo(buf)
	buf.Blank()

	inst := lua.NewBlock("qemu_inst")
	inst.Field("moduletype", lua.Str("QemuInstance"))
	inst.Field("args", `{ "&platform.qemu_inst_mgr", "RISCV64" }`)
	inst.Field("tcg_mode", lua.Str("MULTI"))
	inst.Field("sync_policy", lua.Str("multithread-unconstrained"))
	inst.WriteTo(buf)
	buf.Blank()

	core := lua.NewBlock("cpu_0")
	core.Field("moduletype", lua.Str("cpu_riscv64"))
	core.Field("args", `{ "&platform.qemu_inst", 0 }`)
	core.Field("mem", `{ bind = "&router.target_socket" }`)
	core.Field("reset", `{ bind = "&reset.reset" }`)
	core.Field("reset_vector", lua.Hex(cpu.ResetVector))
	core.WriteTo(buf)
	buf.Blank()

	clint := lua.NewBlock("clint")
	clint.Field("moduletype", lua.Str("riscv_aclint_mtimer"))
	clint.Field("args", qemuInstanceArg)
	clint.Field("mem", routerSocket("CLINT_BASE", "CLINT_SIZE"))
	clint.Field("timecmp_base", "0x0")
	clint.Field("time_base", "0x7ff8")
	clint.Field("provide_rdtime", "true")
	clint.Field("aperture_size", "0x10000")
	clint.Field("num_harts", "1")
	clint.WriteTo(buf)
	buf.Blank()

	plic := lua.NewBlock("plic_0")
	plic.Field("moduletype", lua.Str("plic_sifive"))
	plic.Field("args", qemuInstanceArg)
	plic.Field("mem", routerSocket("PLIC_BASE", "PLIC_SIZE"))
	plic.Field("num_sources", "16")
	plic.Field("num_priorities", "7")
	plic.Field("priority_base", "0x0")
	plic.Field("pending_base", "0x1000")
	plic.Field("enable_base", "0x2000")
	plic.Field("enable_stride", "0x80")
	plic.Field("context_base", "0x200000")
	plic.Field("context_stride", "0x1000")
	plic.Field("aperture_size", "0x400000")
	plic.Field("hart_config", lua.Str("MS"))
	plic.WriteTo(buf)
	buf.Blank()

	reset := lua.NewBlock("reset")
	reset.Field("moduletype", lua.Str("sifive_test"))
	reset.Field("args", qemuInstanceArg)
	reset.Field("target_socket", routerSocket("RESET_BASE", "RESET_SIZE"))
	reset.WriteTo(buf)
	buf.Blank()

	loader := lua.NewBlock("loader")
	loader.Field("moduletype", lua.Str("loader"))
	loader.Field("initiator_socket", `{ bind = "&router.target_socket" }`)
	for _, entry := range cpu.LoaderEntries {
		switch entry.Kind {
		case LoaderBin:
			loader.Raw(fmt.Sprintf("{ bin_file = top() .. %s, address = %s };",
				lua.Str(entry.Path), lua.Hex(entry.Address)))
		case LoaderElf:
			loader.Raw(fmt.Sprintf("{ elf_file = top() .. %s };", lua.Str(entry.Path)))
		}
	}
	loader.Field("reset", `{ bind = "&reset.reset" }`)
	loader.WriteTo(buf)
	buf.Blank()

	for _, periph := range layout {
		emitPeripheral(buf, periph)
	}

	if dram != nil {
		dramBlk := lua.NewBlock("dram")
		dramBlk.Field("moduletype", lua.Str("gs_memory"))
		dramBlk.Field("target_socket", routerSocket("DRAM_BASE", "DRAM_SIZE"))
		dramBlk.WriteTo(buf)
	}

	buf.Append("}")
}

// emitPeripheral dispatches on the resolved module type: UART-class devices
// are memory-mapped with a direct interrupt wire, bridge-class devices carry
// transport endpoints and queue settings, everything else gets a plain
// router socket.
func emitPeripheral(buf *lua.Buffer, periph PeripheralLayout) {
	blk := lua.NewBlock(periph.DisplayName)
	blk.Field("moduletype", lua.Str(periph.ModuleType))
	socket := routerSocket(periph.ConstPrefix+"_BASE", periph.ConstPrefix+"_SIZE")

	switch {
	case periph.ModuleType == "uart_16550":
		blk.Field("args", qemuInstanceArg)
		blk.Field("mem", socket)
		if periph.IRQ != nil {
			blk.Fieldf("irq_out", `{ bind = "&plic_0.irq_in_%d" }`, *periph.IRQ)
		}
		if periph.RegShift != nil {
			blk.Fieldf("regshift", "%d", *periph.RegShift)
		}
		if periph.BaudBase != nil {
			blk.Fieldf("baudbase", "%d", *periph.BaudBase)
		}

	case isBridge(periph.ModuleType):
		blk.Field("target_socket", socket)
		if periph.IRQ != nil {
			blk.Fieldf("irq", `{ bind = "&plic_0.irq_in_" .. tostring(%s_IRQ) }`, periph.ConstPrefix)
		}
		txURI := periph.TxURI
		if txURI == "" {
			txURI = "ipc:///tmp/qbox_tx"
		}
		rxURI := periph.RxURI
		if rxURI == "" {
			rxURI = "ipc:///tmp/qbox_rx"
		}
		blk.Field("tx_uri", lua.Str(txURI))
		blk.Field("rx_uri", lua.Str(rxURI))
		blk.Fieldf("queue_capacity", "%d", periph.QueueCapacity)
		blk.Field("fresh_queue", lua.Bool(periph.FreshQueue))
		blk.Fieldf("max_rate", "%d", periph.MaxRate)

	default:
		blk.Field("target_socket", socket)
		if periph.IRQ != nil {
			blk.Fieldf("irq", `{ bind = "&plic_0.irq_in_%d" }`, *periph.IRQ)
		}
	}

	blk.WriteTo(buf)
	buf.Blank()
}
