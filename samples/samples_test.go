// This file is part of Mirage09.
//
// Mirage09 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Mirage09 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Mirage09.  If not, see <https://www.gnu.org/licenses/>.

package samples_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory/wav"
	"github.com/mirage09/mirage09/samples"
	"github.com/mirage09/mirage09/test"
)

func sawtooth(n int) []uint8 {
	d := make([]uint8, n)
	for i := range d {
		d[i] = uint8(i%0xff) + 1
	}
	return d
}

func TestQuantise(t *testing.T) {
	p := samples.PCM{
		SampleRate: 100,
		Data:       []float32{0, 1, -1, 0.5, -2, 2},
	}
	q := p.Quantise(-1)
	test.ExpectEquality(t, len(q), 6)
	test.ExpectEquality(t, q[0], uint8(samples.Silence))
	test.ExpectEquality(t, q[1], uint8(0xff))

	// never zero
	test.ExpectEquality(t, q[2], uint8(0x01))
	test.ExpectEquality(t, q[3], uint8(0xc0))
	test.ExpectEquality(t, q[4], uint8(0x01))
	test.ExpectEquality(t, q[5], uint8(0xff))

	test.ExpectEquality(t, len(p.Quantise(4)), 4)
}

func TestResample(t *testing.T) {
	p := samples.PCM{
		SampleRate: 100,
		Data:       []float32{0, 0.25, 0.5, 0.75},
	}
	r := p.Resample(200)
	test.ExpectEquality(t, r.SampleRate, 200.0)
	test.ExpectEquality(t, len(r.Data), 8)
	test.ExpectEquality(t, r.Data[2], float32(0.25))
	test.ExpectEquality(t, r.Duration(), p.Duration())

	test.ExpectEquality(t, len(p.Resample(0).Data), 4)
}

func TestRoundTrip(t *testing.T) {
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)

	src := wav.NewWAV(env.Prefs, 0x0400)
	test.DemandSuccess(t, src.Load(2, sawtooth(0x0400)))

	fn := filepath.Join(t.TempDir(), "bank.wav")
	test.DemandSuccess(t, samples.Export(fn, src, 2, samples.DefaultSampleRate))

	dst := wav.NewWAV(env.Prefs, 0x0400)
	n, err := samples.Import(env, fn, dst, 1, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0x0400)

	a, err := src.Bank(2)
	test.DemandSuccess(t, err)
	b, err := dst.Bank(1)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(a, b))

	// other banks untouched
	c, err := dst.Bank(2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c[0], uint8(0))
}

// speech.mp3 is 40 frames of mono MPEG-2 layer III at 22050Hz
const speechFrames = 40

func TestDecodeMP3(t *testing.T) {
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)

	f, err := os.Open(filepath.Join("testdata", "speech.mp3"))
	test.DemandSuccess(t, err)
	defer f.Close()

	p, err := samples.Decode(env, "speech.mp3", f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.SampleRate, 22050.0)
	test.ExpectEquality(t, len(p.Data), speechFrames*576)
	for _, v := range p.Data {
		if v < -1.0 || v > 1.0 {
			t.Fatalf("sample out of range: %f", v)
		}
	}
}

func TestImportMP3(t *testing.T) {
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)

	w := wav.NewWAV(env.Prefs, 0x8000)
	n, err := samples.Import(env, filepath.Join("testdata", "speech.mp3"), w, 3, samples.DefaultSampleRate)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, speechFrames*576*samples.DefaultSampleRate/22050)

	data, err := w.Bank(3)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, bytes.IndexByte(data[:n], 0), -1)
}

func TestTruncation(t *testing.T) {
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)

	fn := filepath.Join(t.TempDir(), "long.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, samples.Encode(f, sawtooth(0x0200), samples.DefaultSampleRate))
	test.DemandSuccess(t, f.Close())

	w := wav.NewWAV(env.Prefs, 0x0100)
	n, err := samples.Import(env, fn, w, 0, 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0x0100)
}

func TestBadFiles(t *testing.T) {
	env, err := environment.NewEnvironment(nil)
	test.DemandSuccess(t, err)

	_, err = samples.Decode(env, "sample.aiff", bytes.NewReader(nil))
	test.ExpectSuccess(t, errors.Is(err, samples.ErrFormat))

	_, err = samples.Decode(env, "sample.wav", bytes.NewReader([]byte("not a wav file at all")))
	test.ExpectSuccess(t, errors.Is(err, samples.ErrInvalid))

	w := wav.NewWAV(env.Prefs, 0x0100)
	_, err = samples.Import(env, filepath.Join(t.TempDir(), "missing.wav"), w, 0, 0)
	test.ExpectFailure(t, err)
}

func TestPlot(t *testing.T) {
	var b bytes.Buffer
	test.DemandSuccess(t, samples.Plot(&b, "bank 0", sawtooth(0x0100)))
	test.ExpectSuccess(t, bytes.HasPrefix(b.Bytes(), []byte("\x89PNG")))
}
