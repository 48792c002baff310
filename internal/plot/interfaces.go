package plot

import "image"

// Renderer defines the interface for the chart renderer.
type Renderer interface {
	Donut(opts DonutOptions) (image.Image, error)
	Line(opts LineOptions) (image.Image, error)
}

// Service renders charts with the package defaults.
type Service struct{}

// NewService creates a new chart renderer
func NewService() *Service {
	return &Service{}
}

// Donut renders a donut chart
func (s *Service) Donut(opts DonutOptions) (image.Image, error) {
	return RenderDonut(opts)
}

// Line renders a line chart
func (s *Service) Line(opts LineOptions) (image.Image, error) {
	return RenderLine(opts)
}
