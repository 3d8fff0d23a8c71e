package tftlcd

import (
	"reflect"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"
)

func newTestRegs(t *testing.T, wide bool) (*regs, *panel, *sleepClock) {
	t.Helper()
	p := newPanel()
	b, err := NewBus(p.pins())
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	clk := newSleepClock()
	return &regs{bus: b, clk: clk, wide: wide}, p, clk
}

func TestRegisterWrites(t *testing.T) {
	tests := []struct {
		name   string
		wide   bool
		write  func(r *regs) error
		want   []string
		settle int
	}{
		{
			name:  "no data",
			write: func(r *regs) error { return r.writeReg(0x01) },
			want:  []string{"01:"},
		},
		{
			name:  "8-bit",
			write: func(r *regs) error { return r.writeReg(0x16, 0x60) },
			want:  []string{"16:60"},
		},
		{
			name:  "16-bit",
			write: func(r *regs) error { return r.writeReg16(0x44, 0x0002) },
			want:  []string{"44:0002"},
		},
		{
			name:   "24-bit settles before each byte",
			write:  func(r *regs) error { return r.writeReg24(0xB9, 0xFF8357) },
			want:   []string{"b9:ff8357"},
			settle: 3,
		},
		{
			name:   "32-bit",
			write:  func(r *regs) error { return r.writeReg32(0x2A, 0x000100EF) },
			want:   []string{"2a:000100ef"},
			settle: 4,
		},
		{
			name:  "hi/lo pair",
			write: func(r *regs) error { return r.writeRegPair(0x08, 0x09, 0x013F) },
			want:  []string{"08:01", "09:3f"},
		},
		{
			name:  "16-bit address",
			wide:  true,
			write: func(r *regs) error { return r.writeReg16(0x0020, 0x1234) },
			want:  []string{"0020:1234"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, p, clk := newTestRegs(t, tt.wide)
			if err := tt.write(r); err != nil {
				t.Fatalf("write error = %v", err)
			}
			if got := p.ops(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ops = %v, want %v", got, tt.want)
			}
			if len(clk.slept) != tt.settle {
				t.Errorf("slept %d times, want %d", len(clk.slept), tt.settle)
			}
			for _, d := range clk.slept {
				if d != settleDelay {
					t.Errorf("slept %s, want %s", d, settleDelay)
				}
			}
			if p.cs.Read() != gpio.High {
				t.Error("chip still selected after write")
			}
		})
	}
}

func TestReadReg(t *testing.T) {
	r, p, clk := newTestRegs(t, false)
	p.reply = replies(map[byte][]byte{0xD3: {0x00, 0x00, 0x93, 0x41}})

	v, err := r.readReg(0xD3)
	if err != nil {
		t.Fatalf("readReg() error = %v", err)
	}
	if v != 0x9341 {
		t.Errorf("readReg() = 0x%08X, want 0x00009341", v)
	}
	if want := []string{"d3:"}; !reflect.DeepEqual(p.ops(), want) {
		t.Errorf("ops = %v, want %v", p.ops(), want)
	}
	if p.reads != 4 {
		t.Errorf("read strobes = %d, want 4", p.reads)
	}
	if want := []time.Duration{readDelay}; !reflect.DeepEqual(clk.slept, want) {
		t.Errorf("slept %v, want %v", clk.slept, want)
	}
	if r.bus.Direction() != Write {
		t.Errorf("Direction() = %s after read, want write", r.bus.Direction())
	}
	if p.cs.Read() != gpio.High {
		t.Error("chip still selected after read")
	}
}
