package memory

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapImageCreatesWritable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ram.img")

	img, err := MapImage(path, true)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != Size {
		t.Errorf("created image is %d bytes, want %d", info.Size(), Size)
	}
}

func TestMapImageMissingReadOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.img")
	if _, err := MapImage(path, false); err == nil {
		t.Error("mapping a missing image read-only should fail")
	}
}

func TestImageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ram.img")

	img, err := MapImage(path, true)
	if err != nil {
		t.Fatal(err)
	}

	mem := img.Load()
	(*mem)[0x1000] = 0xa9
	(*mem)[0xfffc] = 0x00
	(*mem)[0xfffd] = 0x10

	if err := img.Flush(mem); err != nil {
		t.Fatal(err)
	}
	if err := img.Close(); err != nil {
		t.Fatal(err)
	}

	img, err = MapImage(path, false)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	loaded := img.Load()
	if (*loaded)[0x1000] != 0xa9 || (*loaded)[0xfffd] != 0x10 {
		t.Error("reloaded image does not match the flushed RAM")
	}
}

func TestFlushReadOnlyFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ram.img")

	img, err := MapImage(path, true)
	if err != nil {
		t.Fatal(err)
	}
	img.Close()

	img, err = MapImage(path, false)
	if err != nil {
		t.Fatal(err)
	}
	defer img.Close()

	if err := img.Flush(New()); err == nil {
		t.Error("flushing a read-only image should fail")
	}
}
