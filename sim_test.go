package tftlcd

import (
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/pin"
)

// wire is a fake GPIO line that counts writes and reports level changes.
type wire struct {
	gpiotest.Pin
	outs     int
	fail     error
	onChange func(l gpio.Level)
}

func newWire(name string, num int) *wire {
	return &wire{Pin: gpiotest.Pin{N: name, Num: num}}
}

// Out implements gpio.PinOut.
func (w *wire) Out(l gpio.Level) error {
	if w.fail != nil {
		return w.fail
	}
	w.Lock()
	prev := w.L
	w.L = l
	w.outs++
	w.Unlock()
	if prev != l && w.onChange != nil {
		w.onChange(l)
	}
	return nil
}

// set forces the level seen by Read without counting a write.
func (w *wire) set(l gpio.Level) {
	w.Lock()
	w.L = l
	w.Unlock()
}

// xfer is one byte latched by the simulated controller.
type xfer struct {
	cmd bool
	v   byte
	txn int
}

// panel simulates the controller side of the bus: it latches a byte on
// every rising write strobe while selected, and presents reply bytes on
// every falling read strobe.
type panel struct {
	cs, cd, wr, rd *wire
	d              [8]*wire

	xfers   []xfer
	strobes int
	reads   int
	txn     int

	lastCmd byte
	readIdx int
	reply   func(cmd byte, i int) byte
}

func newPanel() *panel {
	p := &panel{
		cs: newWire("CS", 1),
		cd: newWire("CD", 2),
		wr: newWire("WR", 3),
		rd: newWire("RD", 4),
	}
	for i := range p.d {
		p.d[i] = newWire(fmt.Sprintf("D%d", i), 10+i)
	}
	p.cs.onChange = func(l gpio.Level) {
		if l == gpio.Low {
			p.txn++
		}
	}
	p.wr.onChange = func(l gpio.Level) {
		if l == gpio.High && p.cs.Read() == gpio.Low {
			p.latch()
		}
	}
	p.rd.onChange = func(l gpio.Level) {
		if l == gpio.Low && p.cs.Read() == gpio.Low {
			p.present()
		}
	}
	return p
}

func (p *panel) pins() *Pins {
	pins := &Pins{CS: p.cs, CD: p.cd, WR: p.wr, RD: p.rd}
	for i, w := range p.d {
		pins.D[i] = w
	}
	return pins
}

func (p *panel) value() byte {
	var v byte
	for i, w := range p.d {
		if w.Read() == gpio.High {
			v |= 1 << uint(i)
		}
	}
	return v
}

func (p *panel) latch() {
	x := xfer{cmd: p.cd.Read() == gpio.Low, v: p.value(), txn: p.txn}
	p.xfers = append(p.xfers, x)
	p.strobes++
	if x.cmd {
		p.lastCmd = x.v
		p.readIdx = 0
	}
}

func (p *panel) present() {
	var v byte
	if p.reply != nil {
		v = p.reply(p.lastCmd, p.readIdx)
	}
	p.readIdx++
	p.reads++
	for i, w := range p.d {
		w.set(gpio.Level(v&(1<<uint(i)) != 0))
	}
}

// drives returns how many times the data lines were driven with a byte.
func (p *panel) drives() int {
	return p.d[0].outs
}

// clear forgets everything recorded so far.
func (p *panel) clear() {
	p.xfers = nil
	p.strobes = 0
	p.reads = 0
	for _, w := range p.d {
		w.outs = 0
	}
	p.cs.outs, p.cd.outs, p.wr.outs, p.rd.outs = 0, 0, 0, 0
}

// op is a register access as seen by the controller: command bytes followed
// by data bytes.
type op struct {
	cmd, data []byte
}

func (o op) String() string {
	return fmt.Sprintf("%x:%x", o.cmd, o.data)
}

// ops groups the latched bytes into register accesses. A new access starts
// at a command byte that follows data, or at a new chip-select transaction.
func (p *panel) ops() []string {
	var out []op
	txn := -1
	for _, x := range p.xfers {
		n := len(out)
		if x.cmd && (n == 0 || len(out[n-1].data) > 0 || x.txn != txn) {
			out = append(out, op{})
			n++
		} else if !x.cmd && (n == 0 || x.txn != txn) {
			out = append(out, op{})
			n++
		}
		txn = x.txn
		if x.cmd {
			out[n-1].cmd = append(out[n-1].cmd, x.v)
		} else {
			out[n-1].data = append(out[n-1].data, x.v)
		}
	}
	s := make([]string, len(out))
	for i, o := range out {
		s[i] = o.String()
	}
	return s
}

// dataBytes returns every data byte latched so far.
func (p *panel) dataBytes() []byte {
	var b []byte
	for _, x := range p.xfers {
		if !x.cmd {
			b = append(b, x.v)
		}
	}
	return b
}

// replies answers reads from a table keyed by the last command byte.
func replies(m map[byte][]byte) func(cmd byte, i int) byte {
	return func(cmd byte, i int) byte {
		if b := m[cmd]; i < len(b) {
			return b[i]
		}
		return 0
	}
}

// sleepClock records sleeps instead of waiting.
type sleepClock struct {
	clockwork.Clock
	slept []time.Duration
}

func newSleepClock() *sleepClock {
	return &sleepClock{Clock: clockwork.NewRealClock()}
}

// Sleep implements clockwork.Clock.
func (c *sleepClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
}

// longSleeps returns the recorded sleeps of at least 1ms, in order.
func (c *sleepClock) longSleeps() []time.Duration {
	var out []time.Duration
	for _, d := range c.slept {
		if d >= time.Millisecond {
			out = append(out, d)
		}
	}
	return out
}

// newTestDev returns a running device for c on a simulated panel with an
// empty recording.
func newTestDev(t *testing.T, c Controller) (*Dev, *panel, *sleepClock) {
	t.Helper()
	p := newPanel()
	b, err := NewBus(p.pins())
	if err != nil {
		t.Fatalf("NewBus() error = %v", err)
	}
	clk := newSleepClock()
	d, err := New(b, &Opts{Controller: c, Clock: clk})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := d.Begin(); err != nil {
		t.Fatalf("Begin() error = %v", err)
	}
	p.clear()
	clk.slept = nil
	return d, p, clk
}

// fakeGroup is a gpio.Group over eight wires.
type fakeGroup struct {
	w     [8]*wire
	outs  int
	reads int
}

func (g *fakeGroup) Pins() []pin.Pin {
	pins := make([]pin.Pin, len(g.w))
	for i, w := range g.w {
		pins[i] = w
	}
	return pins
}

func (g *fakeGroup) ByOffset(offset int) pin.Pin {
	return g.w[offset]
}

func (g *fakeGroup) ByName(name string) pin.Pin {
	for _, w := range g.w {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

func (g *fakeGroup) ByNumber(number int) pin.Pin {
	for _, w := range g.w {
		if w.Number() == number {
			return w
		}
	}
	return nil
}

func (g *fakeGroup) Out(value, mask gpio.GPIOValue) error {
	g.outs++
	for i, w := range g.w {
		if mask&(1<<uint(i)) != 0 {
			w.set(gpio.Level(value&(1<<uint(i)) != 0))
		}
	}
	return nil
}

func (g *fakeGroup) Read(mask gpio.GPIOValue) (gpio.GPIOValue, error) {
	g.reads++
	var v gpio.GPIOValue
	for i, w := range g.w {
		if w.Read() == gpio.High {
			v |= 1 << uint(i)
		}
	}
	return v & mask, nil
}

func (g *fakeGroup) WaitForEdge(timeout time.Duration) (int, gpio.Edge, error) {
	return 0, gpio.NoEdge, gpio.ErrGroupFeatureNotImplemented
}

func (g *fakeGroup) String() string {
	return "fakeGroup"
}

func (g *fakeGroup) Halt() error {
	return nil
}
