// SPDX-License-Identifier: Unlicense OR MIT

package glctx

import (
	"image"

	"golang.org/x/image/draw"

	"glctx.org/internal/gl"
)

// UploadImage uploads img into a region of a mip level, converting to
// tightly packed RGBA first. Images that are not *image.RGBA or have a
// non-trivial stride go through an x/image/draw copy.
func (t *Texture) UploadImage(c *Context, level, x, y int, img image.Image) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != w*4 {
		tmp := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(tmp, tmp.Bounds(), img, b.Min, draw.Src)
		rgba = tmp
	}
	c.state.renderer.setUnpackRowLength(c, 0)
	t.SubImage2D(c, level, x, y, w, h, gl.RGBA, gl.UNSIGNED_BYTE, rgba.Pix)
}

// UploadFaceImage uploads img into one face of a cube map, with the
// same conversion rules as UploadImage.
func (t *CubeMapTexture) UploadFaceImage(c *Context, face, level, x, y int, img image.Image) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Stride != w*4 {
		tmp := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(tmp, tmp.Bounds(), img, b.Min, draw.Src)
		rgba = tmp
	}
	c.state.renderer.setUnpackRowLength(c, 0)
	t.SubImage(c, face, level, x, y, w, h, gl.RGBA, gl.UNSIGNED_BYTE, rgba.Pix)
}
