//go:build linux

package devinput

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keyquery/internal/keystate"
)

// writeNode creates a fake event node holding the given records. Regular
// files read to EOF, which the device treats like an empty evdev queue.
func writeNode(t *testing.T, dir, name string, events ...rawEvent) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, encodeAll(eventSize, events...), 0o600))
	return path
}

func TestEventSize(t *testing.T) {
	assert.Contains(t, []int{16, 24}, eventSize)
}

func TestIsEventNode(t *testing.T) {
	assert.True(t, IsEventNode("event0"))
	assert.True(t, IsEventNode("event17"))
	assert.False(t, IsEventNode("event"))
	assert.False(t, IsEventNode("eventX"))
	assert.False(t, IsEventNode("mouse0"))
	assert.False(t, IsEventNode("js0"))
}

func TestListPathsOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"event10", "event2", "event1", "eventX", "mice"} {
		writeNode(t, dir, name)
	}

	paths, err := ListPaths(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "event1"),
		filepath.Join(dir, "event2"),
		filepath.Join(dir, "event10"),
	}, paths)
}

func TestDeviceDrain(t *testing.T) {
	dir := t.TempDir()
	path := writeNode(t, dir, "event0",
		rawEvent{evMsc, 4, 0x70004},
		rawEvent{evKey, uint16(evdev.KEY_A), 1},
		rawEvent{evSyn, 0, 0},
		rawEvent{evKey, uint16(evdev.KEY_A), 2},
		rawEvent{evKey, uint16(evdev.KEY_ESC), 1},
	)

	dev, err := OpenDevice(path, "Test Keyboard")
	require.NoError(t, err)
	defer dev.Close()

	assert.Equal(t, "Test Keyboard (event0)", dev.Name())
	assert.Equal(t, path, dev.Path())

	events, err := keystate.Drain(dev, nil)
	require.NoError(t, err)
	assert.Equal(t, []keystate.Event{
		{Code: uint16(evdev.KEY_A), Transition: keystate.Pressed},
		{Code: uint16(evdev.KEY_ESC), Transition: keystate.Pressed},
	}, events)

	_, err = dev.Fetch(nil)
	assert.ErrorIs(t, err, keystate.ErrWouldBlock)
}

func TestDeviceOnlyNonKeyRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeNode(t, dir, "event0", rawEvent{evSyn, 0, 0}, rawEvent{evMsc, 4, 1})

	dev, err := OpenDevice(path, "")
	require.NoError(t, err)
	defer dev.Close()

	events, err := dev.Fetch(nil)
	assert.ErrorIs(t, err, keystate.ErrWouldBlock)
	assert.Empty(t, events)
	assert.Equal(t, "event0", dev.Name())
}

func TestDeviceClose(t *testing.T) {
	dir := t.TempDir()
	dev, err := OpenDevice(writeNode(t, dir, "event0"), "")
	require.NoError(t, err)

	require.NoError(t, dev.Close())
	require.NoError(t, dev.Close())

	_, err = dev.Fetch(nil)
	assert.ErrorIs(t, err, keystate.ErrSourceGone)
}

func TestOpenDeviceMissing(t *testing.T) {
	_, err := OpenDevice(filepath.Join(t.TempDir(), "event9"), "")
	assert.Error(t, err)
}

func TestEnumerate(t *testing.T) {
	dir := t.TempDir()
	writeNode(t, dir, "event1", rawEvent{evKey, 30, 1})
	writeNode(t, dir, "event0")
	writeNode(t, dir, "mouse0")

	devices, err := Enumerate(Options{Dir: dir})
	require.NoError(t, err)
	require.Len(t, devices, 2)
	defer func() {
		for _, d := range devices {
			d.Close()
		}
	}()

	assert.Equal(t, filepath.Join(dir, "event0"), devices[0].Path())
	assert.Equal(t, filepath.Join(dir, "event1"), devices[1].Path())
}

func TestEnumerateEmptyDir(t *testing.T) {
	devices, err := Enumerate(Options{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestEnumerateQuietAtInfo(t *testing.T) {
	dir := t.TempDir()
	writeNode(t, dir, "event0")

	var buf bytes.Buffer
	devices, err := Enumerate(Options{Dir: dir, Logger: slog.New(slog.NewTextHandler(&buf, nil))})
	require.NoError(t, err)
	for _, d := range devices {
		d.Close()
	}

	assert.Empty(t, buf.String())
}

func TestEnumerateKeyboardsOnlySkipsUnprobed(t *testing.T) {
	dir := t.TempDir()
	writeNode(t, dir, "event0", rawEvent{evKey, 30, 1})

	devices, err := Enumerate(Options{Dir: dir, KeyboardsOnly: true})
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestListDevicesUnprobed(t *testing.T) {
	dir := t.TempDir()
	writeNode(t, dir, "event0")

	infos, err := ListDevices(Options{Dir: dir})
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.False(t, infos[0].Probed)
	assert.False(t, infos[0].Keyboard)
}

func TestWatchHotplug(t *testing.T) {
	dir := t.TempDir()
	existing := writeNode(t, dir, "event0")

	var (
		mu    sync.Mutex
		added []keystate.Source
	)
	sink := func(src keystate.Source) bool {
		mu.Lock()
		defer mu.Unlock()
		added = append(added, src)
		return true
	}

	w, err := WatchHotplug(Options{Dir: dir}, []string{existing}, sink)
	require.NoError(t, err)
	defer w.Close()

	writeNode(t, dir, "mouse1")
	require.NoError(t, os.Chmod(existing, 0o640))
	writeNode(t, dir, "event4", rawEvent{evKey, 57, 1})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(added) == 1
	}, 2*time.Second, 10*time.Millisecond)

	mu.Lock()
	src := added[0]
	mu.Unlock()
	defer src.Close()

	assert.Equal(t, "event4", src.Name())
	events, err := keystate.Drain(src, nil)
	require.NoError(t, err)
	assert.Equal(t, []keystate.Event{{Code: 57, Transition: keystate.Pressed}}, events)

	// Further changes to known nodes must not open them twice.
	require.NoError(t, os.Chmod(filepath.Join(dir, "event4"), 0o640))
	time.Sleep(50 * time.Millisecond)
	mu.Lock()
	assert.Len(t, added, 1)
	mu.Unlock()
}

func TestWatchHotplugMissingDir(t *testing.T) {
	_, err := WatchHotplug(Options{Dir: filepath.Join(t.TempDir(), "missing")}, nil, func(keystate.Source) bool { return true })
	assert.Error(t, err)
}

func TestAccess(t *testing.T) {
	dir := t.TempDir()
	writeNode(t, dir, "event0")
	writeNode(t, dir, "event1")

	readable, total, err := Access(Options{Dir: dir})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, readable)
}

func TestDeviceSkipsDroppedRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeNode(t, dir, "event0",
		rawEvent{evKey, uint16(evdev.KEY_A), 1},
		rawEvent{evSyn, synDropped, 0},
		rawEvent{evKey, uint16(evdev.KEY_B), 1},
		rawEvent{evSyn, synReport, 0},
		rawEvent{evKey, uint16(evdev.KEY_A), 0},
	)

	dev, err := OpenDevice(path, "")
	require.NoError(t, err)
	defer dev.Close()

	// A regular file has no key bitmap, so only the skip applies.
	events, err := keystate.Drain(dev, nil)
	require.NoError(t, err)
	assert.Equal(t, []keystate.Event{
		{Code: uint16(evdev.KEY_A), Transition: keystate.Pressed},
		{Code: uint16(evdev.KEY_A), Transition: keystate.Released},
	}, events)
}
