package anim

import "github.com/san-kum/fractalzoom/internal/fractal"

// WheelTarget returns the viewport that keeps the point under (mouseX, mouseY)
// fixed while scaling by factor.
func WheelTarget(current Viewport, dims fractal.Dimensions, mouseX, mouseY int32, factor float64) Viewport {
	zx, zy := fractal.PixelToComplex(mouseX, mouseY, current, dims)
	return Viewport{
		CenterX: zx + (current.CenterX-zx)*factor,
		CenterY: zy + (current.CenterY-zy)*factor,
		Scale:   current.Scale * factor,
	}
}

// ClickTarget recenters on the clicked pixel and keeps scale.
func ClickTarget(current Viewport, dims fractal.Dimensions, x, y int32, scale float64) Viewport {
	cx, cy := fractal.PixelToComplex(x, y, current, dims)
	return Viewport{CenterX: cx, CenterY: cy, Scale: scale}
}

// ZoomAt starts a wheel zoom toward the cursor. factor is normally ZoomIn or ZoomOut.
func (a *Animator) ZoomAt(mouseX, mouseY int32, factor float64) (Viewport, error) {
	target := WheelTarget(a.state.Current, a.cfg.Dimensions, mouseX, mouseY, factor)
	if err := a.RequestZoom(target.CenterX, target.CenterY, target.Scale); err != nil {
		return Viewport{}, err
	}
	a.notifyTarget(TargetEvent{X: mouseX, Y: mouseY, Target: target, Cause: CauseWheel})
	return target, nil
}

// RecenterAt pans so the clicked point becomes the center. The scale the
// transition is heading to is left as it is.
func (a *Animator) RecenterAt(x, y int32) (Viewport, error) {
	target := ClickTarget(a.state.Current, a.cfg.Dimensions, x, y, a.state.Target.Scale)
	if err := a.RequestZoom(target.CenterX, target.CenterY, target.Scale); err != nil {
		return Viewport{}, err
	}
	a.notifyTarget(TargetEvent{X: x, Y: y, Target: target, Cause: CauseClick})
	return target, nil
}

// ZoomCenter zooms about the middle of the raster.
func (a *Animator) ZoomCenter(factor float64) (Viewport, error) {
	d := a.cfg.Dimensions
	return a.ZoomAt(int32(d.Width/2), int32(d.Height/2), factor)
}
