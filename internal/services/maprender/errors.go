package maprender

// RenderError is a custom error type for map rendering errors
type RenderError string

// Error implements the error interface
func (e RenderError) Error() string {
	return string(e)
}

const (
	ErrNilInput         RenderError = "render input cannot be nil"
	ErrNoDestinations   RenderError = "at least one destination is required"
	ErrNotDisplayable   RenderError = "place is too close to a pole to be drawn"
	ErrInvalidImageSize RenderError = "image width and height must be positive"
)
