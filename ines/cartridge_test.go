package ines

import (
	"bytes"
	"testing"
)

func TestLoadNROM(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(rawHeader(1, 1, 0, 0))
	prg := bytes.Repeat([]byte{0xEA}, PrgBankSize)
	chr := bytes.Repeat([]byte{0x11}, ChrBankSize)
	buf.Write(prg)
	buf.Write(chr)

	c, err := Load(buf.Bytes())
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if !bytes.Equal(c.PRG, prg) {
		t.Errorf("PRG mismatch")
	}
	if !bytes.Equal(c.CHR, chr) {
		t.Errorf("CHR mismatch")
	}
	if c.HasChrRAM() {
		t.Errorf("HasChrRAM() = true, want false")
	}
}

func TestLoadChrRAM(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(rawHeader(1, 0, 0, 0))
	buf.Write(bytes.Repeat([]byte{0xEA}, PrgBankSize))

	c, err := Load(buf.Bytes())
	if err != nil {
		t.Fatalf("Load() err = %v", err)
	}
	if !c.HasChrRAM() {
		t.Errorf("HasChrRAM() = false, want true")
	}
}

func TestLoadTruncatedPRG(t *testing.T) {
	b := rawHeader(2, 0, 0, 0)
	if _, err := Load(b); err == nil {
		t.Errorf("Load() err = nil, want truncation error")
	}
}
