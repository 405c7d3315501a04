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
	"fmt"
	"io"
	"os"

	"github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/mirage09/mirage09/environment"
	"github.com/mirage09/mirage09/hardware/memory/wav"
	"github.com/mirage09/mirage09/logger"
)

// DefaultSampleRate is the rate used when exporting and when no other rate is
// requested on import.
const DefaultSampleRate = 29400

// Import decodes the audio file and loads it into the specified bank of the
// WAV RAM. The audio is resampled to rate if rate is not zero. Audio longer
// than the bank is truncated. Returns the number of bytes loaded.
func Import(env *environment.Environment, filename string, w *wav.WAV, bank int, rate float64) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, fmt.Errorf("samples: %w", err)
	}
	defer f.Close()

	p, err := Decode(env, filename, f)
	if err != nil {
		return 0, err
	}

	data := p.Resample(rate).Quantise(w.Size())
	if len(data) < len(p.Data) {
		logger.Logf(env, logTag, "sample truncated to %d bytes", len(data))
	}

	err = w.Load(bank, data)
	if err != nil {
		return 0, fmt.Errorf("samples: %w", err)
	}

	logger.Logf(env, logTag, "loaded %d bytes into bank %d", len(data), bank)

	return len(data), nil
}

// Encode writes the data as an 8-bit mono WAV stream.
func Encode(ws io.WriteSeeker, data []uint8, rate int) error {
	enc := gowav.NewEncoder(ws, rate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  rate,
		},
		Data:           make([]int, len(data)),
		SourceBitDepth: 8,
	}
	for i, v := range data {
		buf.Data[i] = int(v)
	}

	err := enc.Write(buf)
	if err != nil {
		return fmt.Errorf("samples: wav: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("samples: wav: %w", err)
	}

	return nil
}

// Export the specified bank of WAV RAM to a new WAV file.
func Export(filename string, w *wav.WAV, bank int, rate int) error {
	data, err := w.Bank(bank)
	if err != nil {
		return fmt.Errorf("samples: %w", err)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("samples: %w", err)
	}

	err = Encode(f, data, rate)
	if err != nil {
		_ = f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("samples: %w", err)
	}

	return nil
}
