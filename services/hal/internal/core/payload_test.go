package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cameracode-go/errcode"
	"cameracode-go/types"
)

func TestAsConcreteAndPointer(t *testing.T) {
	v, code := As[types.CameraGain](types.CameraGain{Gain: 64})
	assert.Empty(t, code)
	assert.Equal(t, 64, v.Gain)

	v, code = As[types.CameraGain](&types.CameraGain{Gain: 32})
	assert.Empty(t, code)
	assert.Equal(t, 32, v.Gain)
}

func TestAsNilIsZero(t *testing.T) {
	v, code := As[types.CameraStream](nil)
	assert.Empty(t, code)
	assert.False(t, v.On)
}

func TestAsDecodesJSONMap(t *testing.T) {
	// encoding/json produces float64 for numbers.
	v, code := As[types.CameraExposureGain](map[string]any{"lines": 10000.0, "gain": 4000.0})
	assert.Empty(t, code)
	assert.Equal(t, types.CameraExposureGain{Lines: 10000, Gain: 4000}, v)

	m, code := As[types.CameraMode](map[string]any{"width": 2880, "height": 1620, "fps": 60})
	assert.Empty(t, code)
	assert.Equal(t, types.CameraMode{Width: 2880, Height: 1620, FPS: 60}, m)
}

func TestAsRejectsWrongType(t *testing.T) {
	_, code := As[types.CameraGain](types.CameraStream{On: true})
	assert.Equal(t, errcode.InvalidPayload, code)

	_, code = As[types.CameraGain](map[string]any{"gain": "lots"})
	assert.Equal(t, errcode.InvalidPayload, code)
}
