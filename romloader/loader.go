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

package romloader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/cespare/xxhash"
)

// Sentinel errors returned by Load().
var (
	ErrEmptyArchive = errors.New("archive is empty")
	ErrWrongSize    = errors.New("image is the wrong size")
	ErrHash         = errors.New("unexpected hash value")
)

// FileExtensions is the list of file extensions that are recognised by the
// romloader package.
var FileExtensions = [...]string{".BIN", ".ROM", ".IMG", ".7Z"}

// Loader is used to specify the image to load.
type Loader struct {
	// filename of image to load
	Filename string

	// the required size of the image. zero means the image can be any size
	Size int

	// expected hash of the loaded image. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	//
	// for archives the hash is of the extracted file and not of the archive
	Hash string

	// name of the file extracted from an archive. empty if the file was not
	// an archive
	Archived string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string, size int) Loader {
	return Loader{
		Filename: filename,
		Size:     size,
	}
}

// ShortName returns a shortened version of the Loader filename.
func (ld Loader) ShortName() string {
	s := filepath.Base(ld.Filename)
	return strings.TrimSuffix(s, filepath.Ext(ld.Filename))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Fingerprint returns the hash string for the data.
func Fingerprint(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// Load the image. Does nothing if the image has already been loaded.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return fmt.Errorf("romloader: %w", err)
	}

	if strings.ToUpper(filepath.Ext(ld.Filename)) == ".7Z" {
		data, err = ld.extract(data)
		if err != nil {
			return fmt.Errorf("romloader: %s: %w", ld.Filename, err)
		}
	}

	if ld.Size > 0 && len(data) != ld.Size {
		return fmt.Errorf("romloader: %w: %d bytes (should be %d)", ErrWrongSize, len(data), ld.Size)
	}

	hash := Fingerprint(data)

	// check for hash consistency
	if ld.Hash != "" && ld.Hash != hash {
		return fmt.Errorf("romloader: %w: %s", ErrHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	return nil
}

// extract the first file in the 7-Zip archive
func (ld *Loader) extract(data []byte) ([]byte, error) {
	r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	if len(r.File) == 0 {
		return nil, ErrEmptyArchive
	}

	f, err := r.File[0].Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ld.Archived = r.File[0].Name

	return io.ReadAll(f)
}
