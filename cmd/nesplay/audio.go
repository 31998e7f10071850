package main

import (
	"encoding/binary"
	"sync"
)

// sampleRate is the playback rate ebiten's audio context mixes at;
// every front end that opens an audio.Context must agree on one rate.
const sampleRate = 44100

// apuSampleRate is the NES APU's native sample-production rate: one
// float32 sample per APU cycle, which ticks at half the 2A03's CPU
// clock (1.789773 MHz NTSC).
const apuSampleRate = 1789773 / 2

// sampleStream is an io.Reader adapting the APU's float32 sample
// stream into the 16-bit little-endian stereo PCM ebiten's audio
// package expects, decimating from the APU's native rate down to
// sampleRate by fixed-ratio decimation.
type sampleStream struct {
	mu      sync.Mutex
	pending []float32
	carry   float64 // fractional decimation phase
}

func newSampleStream() *sampleStream {
	return &sampleStream{}
}

// feed appends newly produced APU samples for Read to decimate and
// drain; called once per emulated frame from the game loop.
func (s *sampleStream) feed(samples []float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = append(s.pending, samples...)
}

// Read decimates pending APU samples by the fixed ratio
// apuSampleRate/sampleRate and emits them as interleaved stereo
// 16-bit PCM, the format ebiten's audio.Player requires. When no
// samples are pending yet it emits silence rather than blocking, so
// ebiten's mixer never stalls waiting on the emulation loop.
func (s *sampleStream) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	const bytesPerFrame = 4 // 2 channels * 2 bytes
	ratio := float64(apuSampleRate) / float64(sampleRate)

	n := 0
	for n+bytesPerFrame <= len(p) {
		idx := int(s.carry)
		if idx >= len(s.pending) {
			binary.LittleEndian.PutUint16(p[n:], 0)
			binary.LittleEndian.PutUint16(p[n+2:], 0)
			n += bytesPerFrame
			continue
		}
		v := int16(s.pending[idx] * 32767)
		binary.LittleEndian.PutUint16(p[n:], uint16(v))
		binary.LittleEndian.PutUint16(p[n+2:], uint16(v))
		n += bytesPerFrame
		s.carry += ratio
	}

	// Drop consumed samples once the carry has advanced past them,
	// keeping the pending buffer from growing without bound.
	if consumed := int(s.carry); consumed > 0 && consumed <= len(s.pending) {
		s.pending = s.pending[consumed:]
		s.carry -= float64(consumed)
	} else if consumed > len(s.pending) {
		s.pending = s.pending[:0]
		s.carry = 0
	}

	return n, nil
}
