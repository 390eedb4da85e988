package lua

import "testing"

func TestHex(t *testing.T) {
	cases := []struct {
		in  uint64
		out string
	}{
		{0, "0x00000000"},
		{0x0C000000, "0x0c000000"},
		{0x2000, "0x00002000"},
		{0x80000000, "0x80000000"},
	}
	for _, c := range cases {
		if got := Hex(c.in); got != c.out {
			t.Errorf("Hex(%#x) = %q, want %q", c.in, got, c.out)
		}
	}
}

func TestBlock(t *testing.T) {
	blk := NewBlock("router")
	blk.Field("moduletype", Str("router"))

	var buf Buffer
	blk.WriteTo(&buf)

	expected := "    router = {\n" +
		"        moduletype = \"router\";\n" +
		"    };\n"
	if buf.String() != expected {
		t.Fatalf("unexpected block rendering:\n%s", buf.String())
	}
}

func TestBufferTrimBlank(t *testing.T) {
	var buf Buffer
	buf.Local("UART_BASE", Hex(0x30000000))
	buf.Blank()
	buf.TrimBlank()

	if buf.String() != "local UART_BASE = 0x30000000\n" {
		t.Fatalf("unexpected buffer contents:\n%s", buf.String())
	}
}

func TestBool(t *testing.T) {
	if Bool(true) != "true" || Bool(false) != "false" {
		t.Fatal("unexpected boolean literal")
	}
}
