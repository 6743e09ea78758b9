package maprender

import "context"

// Renderer draws the start and end places of a game onto a map image
//
//go:generate mockgen -package=mocks -destination=mocks/mock_renderer.go github.com/KirkDiggler/jetlag/internal/services/maprender Renderer
type Renderer interface {
	Render(ctx context.Context, input *RenderInput) (*RenderOutput, error)
}
