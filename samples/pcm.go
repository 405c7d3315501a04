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

package samples

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/logger"
)

const logTag = "samples"

// Sentinel errors returned by Decode().
var (
	ErrFormat   = errors.New("unsupported file type")
	ErrInvalid  = errors.New("not a valid file")
	ErrNoSample = errors.New("no sample data")
)

// Silence is the unsigned 8-bit value of a zero sample.
const Silence = 0x80

// PCM is decoded mono audio. Data values are normalised to the range -1.0 to
// 1.0.
type PCM struct {
	SampleRate float64
	Data       []float32
}

// Duration of the PCM data in seconds.
func (p PCM) Duration() float64 {
	if p.SampleRate == 0 {
		return 0
	}
	return float64(len(p.Data)) / p.SampleRate
}

// Decode the WAV or MP3 data in r. The format is chosen by the extension of
// filename. Only the first (left) channel of a multi-channel file is kept.
func Decode(env *environment.Environment, filename string, r io.ReadSeeker) (PCM, error) {
	var p PCM

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		dec := wav.NewDecoder(r)
		if !dec.IsValidFile() {
			return p, fmt.Errorf("samples: wav: %w", ErrInvalid)
		}

		logger.Log(env, logTag, "decoding wav file")

		buf, err := dec.FullPCMBuffer()
		if err != nil {
			return p, fmt.Errorf("samples: wav: %w", err)
		}

		// 8-bit wav data is unsigned, everything else is two's complement
		var centre, scale float32
		if dec.BitDepth == 8 {
			centre = Silence
			scale = Silence
		} else {
			scale = float32(int(1) << (dec.BitDepth - 1))
		}

		chans := int(dec.NumChans)
		if chans == 0 {
			chans = 1
		}
		p.Data = make([]float32, 0, len(buf.Data)/chans)
		for i := 0; i < len(buf.Data); i += chans {
			p.Data = append(p.Data, (float32(buf.Data[i])-centre)/scale)
		}
		p.SampleRate = float64(dec.SampleRate)

	case ".mp3":
		dec, err := mp3.NewDecoder(r)
		if err != nil {
			return p, fmt.Errorf("samples: mp3: %w", err)
		}

		logger.Log(env, logTag, "decoding mp3 file")

		// the decoded stream is always 16-bit little endian stereo. four
		// bytes per frame and the left channel comes first
		chunk := make([]byte, 4096)
		for err != io.EOF {
			var n int
			n, err = dec.Read(chunk)
			if err != nil && err != io.EOF {
				return p, fmt.Errorf("samples: mp3: %w", err)
			}
			for i := 0; i+1 < n; i += 4 {
				v := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
				p.Data = append(p.Data, float32(v)/32768)
			}
		}
		p.SampleRate = float64(dec.SampleRate())

	default:
		return p, fmt.Errorf("samples: %w: %s", ErrFormat, filepath.Ext(filename))
	}

	if len(p.Data) == 0 {
		return p, fmt.Errorf("samples: %w", ErrNoSample)
	}

	logger.Logf(env, logTag, "sample rate: %0.2fHz", p.SampleRate)
	logger.Logf(env, logTag, "total time: %.02fs", p.Duration())

	return p, nil
}

// Resample returns a copy of the PCM data at the new rate. Nearest neighbour
// only. A rate of zero or the current rate returns the PCM unchanged.
func (p PCM) Resample(rate float64) PCM {
	if rate <= 0 || rate == p.SampleRate || p.SampleRate == 0 {
		return p
	}

	n := int(float64(len(p.Data)) * rate / p.SampleRate)
	r := PCM{
		SampleRate: rate,
		Data:       make([]float32, n),
	}
	for i := range r.Data {
		j := int(float64(i) * p.SampleRate / rate)
		if j >= len(p.Data) {
			j = len(p.Data) - 1
		}
		r.Data[i] = p.Data[j]
	}
	return r
}

// Quantise converts the PCM data to unsigned 8-bit values, truncated to
// limit bytes. Values are clamped to the range 0x01 to 0xff.
func (p PCM) Quantise(limit int) []uint8 {
	n := len(p.Data)
	if limit >= 0 && n > limit {
		n = limit
	}

	q := make([]uint8, n)
	for i := range q {
		v := math.Round(float64(p.Data[i])*Silence) + Silence
		q[i] = uint8(max(1, min(0xff, v)))
	}
	return q
}
