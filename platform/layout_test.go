package platform

import "testing"

func namedPeripherals(names []string, cfgs []*PeripheralConfig) []namedPeripheral {
	result := make([]namedPeripheral, len(names))
	for i := range names {
		result[i] = namedPeripheral{name: names[i], cfg: cfgs[i]}
	}
	return result
}

func TestLayoutSequentialBases(t *testing.T) {
	layout := assignLayout(namedPeripherals(
		[]string{"a", "b", "c"},
		[]*PeripheralConfig{
			NewPeripheralConfig(0x1000),
			NewPeripheralConfig(0x2000),
			NewPeripheralConfig(0x1000),
		},
	))

	expectedBases := []uint64{0x30000000, 0x30001000, 0x30003000}
	expectedIRQs := []int{8, 9, 10}
	for i, rec := range layout {
		if rec.Base != expectedBases[i] {
			t.Errorf("peripheral %d: base %#x, want %#x", i, rec.Base, expectedBases[i])
		}
		if rec.IRQ == nil || *rec.IRQ != expectedIRQs[i] {
			t.Errorf("peripheral %d: unexpected irq", i)
		}
	}
}

// Counters advance even for peripherals that pin their own base or interrupt,
// leaving gaps behind them.
func TestLayoutCountersAdvanceUnconditionally(t *testing.T) {
	pinned := NewPeripheralConfig(0x2000)
	pinned.Base = Uint64(0x40000000)
	pinned.IRQ = Int(3)

	layout := assignLayout(namedPeripherals(
		[]string{"a", "b", "c"},
		[]*PeripheralConfig{
			NewPeripheralConfig(0x1000),
			pinned,
			NewPeripheralConfig(0x1000),
		},
	))

	if layout[1].Base != 0x40000000 {
		t.Errorf("pinned base not honored: %#x", layout[1].Base)
	}
	if *layout[1].IRQ != 3 {
		t.Errorf("pinned irq not honored: %d", *layout[1].IRQ)
	}
	if layout[2].Base != 0x30003000 {
		t.Errorf("counter did not advance past pinned peripheral: %#x", layout[2].Base)
	}
	if *layout[2].IRQ != 10 {
		t.Errorf("irq counter did not advance past pinned peripheral: %d", *layout[2].IRQ)
	}
}

func TestLayoutClassProfiles(t *testing.T) {
	layout := assignLayout(namedPeripherals(
		[]string{"sensor", "UART"},
		[]*PeripheralConfig{
			NewPeripheralConfig(0x1000),
			NewPeripheralConfig(0x1000),
		},
	))

	sensor := layout[0]
	if sensor.ModuleType != "SbSensorBridge" {
		t.Errorf("sensor module type: %q", sensor.ModuleType)
	}
	if sensor.DisplayName != "sb_sensor" || sensor.ConstPrefix != "SB_SENSOR" {
		t.Errorf("sensor naming: %q %q", sensor.DisplayName, sensor.ConstPrefix)
	}
	if sensor.TxURI != "ipc:///tmp/qbox_sensor_tx" || sensor.RxURI != "ipc:///tmp/qbox_sensor_rx" {
		t.Errorf("sensor endpoints: %q %q", sensor.TxURI, sensor.RxURI)
	}

	uart := layout[1]
	if uart.ModuleType != "uart_16550" || uart.DisplayName != "uart0" {
		t.Errorf("uart profile not applied: %q %q", uart.ModuleType, uart.DisplayName)
	}
	if uart.RegShift == nil || *uart.RegShift != 2 {
		t.Error("uart regshift default not applied")
	}
	if uart.BaudBase == nil || *uart.BaudBase != 3686400 {
		t.Error("uart baudbase default not applied")
	}
}

func TestLayoutUnrecognizedName(t *testing.T) {
	layout := assignLayout(namedPeripherals(
		[]string{"My-Device!!"},
		[]*PeripheralConfig{NewPeripheralConfig(0x1000)},
	))

	rec := layout[0]
	if rec.DisplayName != "my-device!!" {
		t.Errorf("display name: %q", rec.DisplayName)
	}
	if rec.ConstPrefix != "MY_DEVICE" {
		t.Errorf("const prefix: %q", rec.ConstPrefix)
	}
	if rec.ModuleType != "generic_device" {
		t.Errorf("module type: %q", rec.ModuleType)
	}
	if rec.TxURI != "" || rec.RxURI != "" {
		t.Error("unexpected transport endpoints")
	}
}

func TestLayoutExplicitOverrides(t *testing.T) {
	cfg := NewPeripheralConfig(0x1000)
	cfg.ModuleType = "my_uart"
	cfg.RegShift = Int(0)
	cfg.TxURI = "ipc:///tmp/custom_tx"

	layout := assignLayout(namedPeripherals(
		[]string{"UART"},
		[]*PeripheralConfig{cfg},
	))

	rec := layout[0]
	if rec.ModuleType != "my_uart" {
		t.Errorf("explicit module type not honored: %q", rec.ModuleType)
	}
	if rec.RegShift == nil || *rec.RegShift != 0 {
		t.Error("explicit regshift not honored")
	}
	if rec.BaudBase == nil || *rec.BaudBase != 3686400 {
		t.Error("profile baudbase should still apply")
	}
	if rec.TxURI != "ipc:///tmp/custom_tx" {
		t.Errorf("explicit tx endpoint not honored: %q", rec.TxURI)
	}
}

func TestClassProfilesSorted(t *testing.T) {
	profiles := ClassProfiles()
	expected := []string{"GPU", "SENSOR", "UART", "VADD"}
	if len(profiles) != len(expected) {
		t.Fatal("unexpected number of profiles")
	}
	for i, p := range profiles {
		if p.Name != expected[i] {
			t.Errorf("profile %d: %q, want %q", i, p.Name, expected[i])
		}
	}
}
