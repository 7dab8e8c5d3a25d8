package light

import (
	"math"

	"github.com/Carmen-Shannon/lumen-go/engine/model"
)

// lightImpl is the implementation of the Light interface.
type lightImpl struct {
	color     [4]float32
	direction [3]float32
	intensity float32
}

// Light defines a directional light source for the scene.
//
// Directional lights have no position, only a direction. They affect all
// fragments uniformly with no distance attenuation, which suits large distant
// sources like the sun. The scene marshals the active light into a GPU
// uniform buffer each frame via GPU().
type Light interface {
	// Color returns the RGBA color of the light.
	//
	// Returns:
	//   - [4]float32: color as (r, g, b, a)
	Color() [4]float32

	// Direction returns the normalized world-space direction of the light.
	//
	// Returns:
	//   - [3]float32: normalized direction as (x, y, z)
	Direction() [3]float32

	// Intensity returns the scalar intensity multiplier for the light.
	//
	// Returns:
	//   - float32: the intensity value
	Intensity() float32

	// SetColor sets the RGBA color of the light.
	//
	// Parameters:
	//   - r, g, b, a: color components
	SetColor(r, g, b, a float32)

	// SetDirection sets the direction of the light and normalizes it.
	// A zero vector is ignored.
	//
	// Parameters:
	//   - x, y, z: direction components (will be normalized)
	SetDirection(x, y, z float32)

	// SetIntensity sets the scalar intensity multiplier.
	//
	// Parameters:
	//   - intensity: the intensity value
	SetIntensity(intensity float32)

	// GPU returns the light packed into its GPU uniform layout.
	//
	// Returns:
	//   - model.GPUDirectionalLight: the uniform buffer contents
	GPU() model.GPUDirectionalLight
}

var _ Light = &lightImpl{}

// NewLight creates a new directional Light with sensible defaults and any
// provided options applied. Defaults are white color, straight-down direction,
// and unit intensity.
//
// Parameters:
//   - opts: variadic list of LightBuilderOption functions to configure the light
//
// Returns:
//   - Light: a new Light instance
func NewLight(opts ...LightBuilderOption) Light {
	l := &lightImpl{
		color:     [4]float32{1, 1, 1, 1},
		direction: [3]float32{0, -1, 0},
		intensity: 1.0,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *lightImpl) Color() [4]float32 {
	return l.color
}

func (l *lightImpl) Direction() [3]float32 {
	return l.direction
}

func (l *lightImpl) Intensity() float32 {
	return l.intensity
}

func (l *lightImpl) SetColor(r, g, b, a float32) {
	l.color = [4]float32{r, g, b, a}
}

func (l *lightImpl) SetDirection(x, y, z float32) {
	if n, ok := normalize3(x, y, z); ok {
		l.direction = n
	}
}

func (l *lightImpl) SetIntensity(intensity float32) {
	l.intensity = intensity
}

func (l *lightImpl) GPU() model.GPUDirectionalLight {
	return model.GPUDirectionalLight{
		Color:     l.color,
		Direction: l.direction,
		Intensity: l.intensity,
	}
}

// normalize3 normalizes a 3-component vector. Reports false for a
// zero-length input.
func normalize3(x, y, z float32) ([3]float32, bool) {
	mag := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if mag == 0 {
		return [3]float32{}, false
	}
	return [3]float32{x / mag, y / mag, z / mag}, true
}
