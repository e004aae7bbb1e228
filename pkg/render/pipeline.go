package render

import (
	"github.com/taigrr/softcube/pkg/math3d"
	"github.com/taigrr/softcube/pkg/models"
)

// FrameStats counts what happened to a mesh's triangles during Render.
type FrameStats struct {
	Submitted int // triangles read from the mesh
	Culled    int // rejected as back-facing
	Drawn     int // handed to the rasterizer
}

// Pipeline runs a mesh through transform, cull, shade, project and
// rasterize into one Canvas.
type Pipeline struct {
	Camera  *Camera
	Light   Light
	Shading ShadeMode

	// Wireframe draws triangle edges over the filled result.
	Wireframe bool
	WireColor Color

	canvas Canvas
	raster *Rasterizer
	wire   *Wireframe
	edges  []ProjectedTriangle
}

// NewPipeline creates a pipeline with the default camera and light.
func NewPipeline(canvas Canvas) *Pipeline {
	return &Pipeline{
		Camera:    NewCamera(),
		Light:     DefaultLight(),
		WireColor: ColorGreen,
		canvas:    canvas,
		raster:    NewRasterizer(canvas),
		wire:      NewWireframe(canvas),
	}
}

// Rasterizer returns the pipeline's rasterizer, for strategy selection.
func (p *Pipeline) Rasterizer() *Rasterizer {
	return p.raster
}

// Project maps a camera-space triangle to screen space.
func (p *Pipeline) Project(t models.Triangle, width, height int) ProjectedTriangle {
	var out ProjectedTriangle
	for i, v := range t.P {
		out.P[i] = p.Camera.ToScreen(v, width, height)
	}
	return out
}

// Render draws one frame of mesh rotated by rot. The mesh is not modified.
func (p *Pipeline) Render(mesh *models.Mesh, rot Rotation) FrameStats {
	var stats FrameStats

	w, h := p.canvas.Size()
	if w <= 0 || h <= 0 {
		return stats
	}

	offset := math3d.V3(0, 0, p.Camera.Offset).Add(mesh.Position)
	model := ModelMatrix(rot, offset)

	p.edges = p.edges[:0]
	p.raster.Begin()
	for i, tri := range mesh.Triangles {
		stats.Submitted++

		view := TransformTriangle(tri, model)
		if !IsFrontFacing(view.Normal, view.P[0], p.Camera.Position) {
			stats.Culled++
			continue
		}

		color := p.Light.Shade(p.Shading, i, view.Normal)
		proj := p.Project(view, w, h)
		p.raster.Submit(Shaded(proj, color))
		stats.Drawn++

		if p.Wireframe {
			p.edges = append(p.edges, proj)
		}
	}
	p.raster.End()

	for _, t := range p.edges {
		p.wire.DrawTriangle(t, p.WireColor)
	}
	return stats
}
