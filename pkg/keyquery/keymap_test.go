package keyquery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var nativeTables = map[string]func(KeyCode) (uint16, bool){
	"evdev":  evdevCode,
	"win32":  virtualKey,
	"carbon": carbonKeyCode,
}

func TestNativeTablesTotal(t *testing.T) {
	for name, table := range nativeTables {
		t.Run(name, func(t *testing.T) {
			for _, k := range AllKeyCodes() {
				_, ok := table(k)
				assert.True(t, ok, "%s has no %s code", k, name)
			}
		})
	}
}

func TestNativeTablesInjective(t *testing.T) {
	for name, table := range nativeTables {
		t.Run(name, func(t *testing.T) {
			seen := make(map[uint16]KeyCode)
			for _, k := range AllKeyCodes() {
				code, _ := table(k)
				if prev, dup := seen[code]; dup {
					t.Errorf("%s and %s share code %#x", prev, k, code)
				}
				seen[code] = k
			}
		})
	}
}

func TestNativeTablesRejectInvalid(t *testing.T) {
	for name, table := range nativeTables {
		for _, k := range []KeyCode{0, keyCodeEnd, 255} {
			_, ok := table(k)
			assert.False(t, ok, "%s maps invalid key %d", name, uint8(k))
		}
	}
}

func TestNativeTableSamples(t *testing.T) {
	tests := []struct {
		key               KeyCode
		evdev, vk, carbon uint16
	}{
		{KeyEsc, 1, 0x1B, 0x35},
		{KeyA, 30, 0x41, 0x00},
		{KeySpace, 57, 0x20, 0x31},
		{KeyEnter, 28, 0x0D, 0x24},
		{KeyInsert, 110, 0x2D, 0x72},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			code, _ := evdevCode(tt.key)
			assert.Equal(t, tt.evdev, code)
			code, _ = virtualKey(tt.key)
			assert.Equal(t, tt.vk, code)
			code, _ = carbonKeyCode(tt.key)
			assert.Equal(t, tt.carbon, code)
		})
	}
}

func TestEvdevCodesFitStateTable(t *testing.T) {
	for _, k := range AllKeyCodes() {
		code, _ := evdevCode(k)
		assert.Less(t, int(code), 0x300, "%s", k)
	}
}
