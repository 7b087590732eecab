package scene

import (
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/epmviz/backend/internal/util"
)

var ErrMalformedRelayout = errors.New("scene: malformed relayout event")

const (
	relayoutCameraPath = `scene\.camera`
	relayoutEyePath    = `scene\.camera\.eye`
)

// CameraGuard keeps the camera eye's z coordinate, the renderer's distance
// proxy, inside [MinZ, MaxZ].
type CameraGuard struct {
	MinZ float64 `json:"minZ"`
	MaxZ float64 `json:"maxZ"`
}

func DefaultCameraGuard() CameraGuard {
	return CameraGuard{MinZ: 0.3, MaxZ: 2.0}
}

func (g CameraGuard) Clamp(z float64) float64 {
	return util.Clamp(z, g.MinZ, g.MaxZ)
}

// Correct inspects a relayout event reported by the renderer. When the event
// moves the camera eye out of bounds it returns the relayout patch that puts
// it back, e.g. {"scene.camera.eye":{"x":-1.5,"y":-1.5,"z":2}}. Events that do
// not touch the camera, or stay in bounds, yield changed == false.
func (g CameraGuard) Correct(event []byte) (patch []byte, changed bool, err error) {
	if !gjson.ValidBytes(event) {
		return nil, false, ErrMalformedRelayout
	}

	camera := gjson.GetBytes(event, relayoutCameraPath)
	if !camera.Exists() {
		return nil, false, nil
	}
	eye := camera.Get("eye")
	if !eye.Exists() {
		return nil, false, nil
	}
	z := eye.Get("z")
	if z.Type != gjson.Number {
		return nil, false, errors.Wrap(ErrMalformedRelayout, "camera eye has no numeric z")
	}

	clamped := g.Clamp(z.Float())
	if clamped == z.Float() {
		return nil, false, nil
	}

	corrected, err := sjson.SetBytes([]byte(eye.Raw), "z", clamped)
	if err != nil {
		return nil, false, errors.Wrap(err, "rewrite camera eye")
	}
	patch, err = sjson.SetRawBytes([]byte(`{}`), relayoutEyePath, corrected)
	if err != nil {
		return nil, false, errors.Wrap(err, "build relayout patch")
	}
	return patch, true, nil
}
