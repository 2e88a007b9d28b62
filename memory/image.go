package memory

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Image is a memory-mapped 64 KiB RAM image file. Hosts use it to load a
// prepared address space and, when mapped writable, to flush a snapshot of
// RAM back to disk.
type Image struct {
	file     *os.File
	mmap     mmap.MMap
	writable bool
}

// MapImage maps an image file. A writable image that does not exist yet is
// created and pre-sized to the full address space.
func MapImage(path string, writable bool) (*Image, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if !writable {
			return nil, fmt.Errorf("image %s: %w", path, err)
		}
		if err := createImage(path); err != nil {
			return nil, err
		}
	}

	flags := os.O_RDONLY
	prot := mmap.RDONLY
	if writable {
		flags = os.O_RDWR
		prot = mmap.RDWR
	}

	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return nil, fmt.Errorf("image %s: %w", path, err)
	}

	m, err := mmap.Map(f, prot, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("image %s: map failed: %w", path, err)
	}

	if len(m) > Size {
		m.Unmap()
		f.Close()
		return nil, fmt.Errorf("image %s: %d bytes exceeds the address space", path, len(m))
	}

	return &Image{file: f, mmap: m, writable: writable}, nil
}

// createImage pre-sizes a new image file by seeking to the last byte and
// writing a single zero.
func createImage(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("image %s: %w", path, err)
	}
	if _, err = f.Seek(Size-1, 0); err != nil {
		f.Close()
		return fmt.Errorf("image %s: %w", path, err)
	}
	if _, err = f.Write([]byte{0}); err != nil {
		f.Close()
		return fmt.Errorf("image %s: %w", path, err)
	}
	return f.Close()
}

// Load copies the image into fresh RAM. Bytes beyond the image length stay
// zero.
func (img *Image) Load() *RAM {
	mem := New()
	copy(*mem, img.mmap)
	return mem
}

// Flush writes RAM back into a writable image and syncs it to disk.
func (img *Image) Flush(mem *RAM) error {
	if !img.writable {
		return fmt.Errorf("image is mapped read-only")
	}
	copy(img.mmap, *mem)
	return img.mmap.Flush()
}

// Close unmaps the image and closes the backing file.
func (img *Image) Close() error {
	if err := img.mmap.Unmap(); err != nil {
		img.file.Close()
		return err
	}
	return img.file.Close()
}
