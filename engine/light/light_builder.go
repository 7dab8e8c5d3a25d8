package light

// LightBuilderOption is a functional option for configuring a lightImpl.
// Use the With* functions to create options.
type LightBuilderOption func(l *lightImpl)

// WithColor sets the RGBA color of the light.
//
// Parameters:
//   - r, g, b, a: color components
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithColor(r, g, b, a float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.color = [4]float32{r, g, b, a}
	}
}

// WithDirection sets the direction of the light. The direction is normalized;
// a zero vector leaves the default unchanged.
//
// Parameters:
//   - x, y, z: direction components
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithDirection(x, y, z float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.SetDirection(x, y, z)
	}
}

// WithIntensity sets the scalar intensity multiplier of the light.
//
// Parameters:
//   - intensity: the intensity value
//
// Returns:
//   - LightBuilderOption: option function to apply
func WithIntensity(intensity float32) LightBuilderOption {
	return func(l *lightImpl) {
		l.intensity = intensity
	}
}
