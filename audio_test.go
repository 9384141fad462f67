package gobble

import (
	"encoding/binary"
	"testing"
	"time"
)

func TestEncodeTone(t *testing.T) {
	data := encodeTone(440, 100*time.Millisecond, 0.5)

	frames := SampleRate / 10
	if len(data) != frames*bytesPerFrame {
		t.Fatalf("len = %d, want %d", len(data), frames*bytesPerFrame)
	}

	peak := 0
	for i := 0; i < frames; i++ {
		left := int16(binary.LittleEndian.Uint16(data[i*4:]))
		right := int16(binary.LittleEndian.Uint16(data[i*4+2:]))
		if left != right {
			t.Fatalf("frame %d: left %d != right %d", i, left, right)
		}
		peak = max(peak, int(left), -int(left))
	}
	if peak == 0 || peak > 32767/2 {
		t.Fatalf("peak = %d, want within (0, %d]", peak, 32767/2)
	}

	if first := int16(binary.LittleEndian.Uint16(data)); first != 0 {
		t.Fatalf("tone starts at %d, want 0", first)
	}
}

func TestClampVolume(t *testing.T) {
	for in, want := range map[float64]float64{-1: 0, 0: 0, 0.3: 0.3, 1: 1, 4: 1} {
		if got := clampVolume(in); got != want {
			t.Errorf("clampVolume(%v) = %v, want %v", in, got, want)
		}
	}
}
