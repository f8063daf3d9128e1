package keyquery

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fakeQuery(raw map[uint16]uint16, err error) syncQuery {
	return syncQuery{
		native: virtualKey,
		state: func(code uint16) (uint16, error) {
			return raw[code], err
		},
		down: asyncDownBit,
	}
}

// asyncDownBit mirrors the GetAsyncKeyState "held" bit.
const asyncDownBit = 0x8000

func TestSyncQueryDownBit(t *testing.T) {
	q := fakeQuery(map[uint16]uint16{
		0x41: 0x8000, // A held
		0x42: 0x8001, // B held, also pressed since last call
		0x43: 0x0001, // C only pressed since last call
	}, nil)

	assert.True(t, q.isPressed(KeyA))
	assert.True(t, q.isPressed(KeyB))
	assert.False(t, q.isPressed(KeyC))
	assert.False(t, q.isPressed(KeyD))
}

func TestSyncQueryFailsClosed(t *testing.T) {
	q := fakeQuery(map[uint16]uint16{0x41: 0xFFFF}, errors.New("boom"))
	assert.False(t, q.isPressed(KeyA))

	calls := 0
	q = syncQuery{
		native: virtualKey,
		state: func(uint16) (uint16, error) {
			calls++
			return 0xFFFF, nil
		},
		down: asyncDownBit,
	}
	assert.False(t, q.isPressed(KeyCode(0)))
	assert.False(t, q.isPressed(keyCodeEnd))
	assert.Zero(t, calls, "unmapped keys must not reach the OS")
}

func TestSyncQueryBooleanBackend(t *testing.T) {
	q := syncQuery{
		native: carbonKeyCode,
		state: func(code uint16) (uint16, error) {
			if code == 0x35 {
				return 1, nil
			}
			return 0, nil
		},
		down: 1,
	}
	assert.True(t, q.isPressed(KeyEsc))
	assert.False(t, q.isPressed(KeyA))
}
