// Package gallery holds the navigation state of a project image viewer:
// a cursor into a fixed image sequence and an open/closed lightbox flag.
package gallery

import "portfolio/model"

type Gallery struct {
	images []model.ProjectImage
	index  int
	open   bool
}

func New(images []model.ProjectImage) *Gallery {
	return &Gallery{images: images}
}

func (g *Gallery) Len() int {
	return len(g.images)
}

// Current returns the image under the cursor.
func (g *Gallery) Current() (model.ProjectImage, bool) {
	if len(g.images) == 0 {
		return model.ProjectImage{}, false
	}
	return g.images[g.index], true
}

func (g *Gallery) Index() int {
	return g.index
}

// Next advances the cursor, wrapping from the last image to the first.
func (g *Gallery) Next() {
	if len(g.images) == 0 {
		return
	}
	g.index = (g.index + 1) % len(g.images)
}

// Prev moves the cursor back, wrapping from the first image to the last.
func (g *Gallery) Prev() {
	if len(g.images) == 0 {
		return
	}
	g.index = (g.index - 1 + len(g.images)) % len(g.images)
}

// Select sets the cursor directly; out-of-range indexes are ignored.
func (g *Gallery) Select(i int) {
	if i < 0 || i >= len(g.images) {
		return
	}
	g.index = i
}

// Open shows the lightbox at the given image.
func (g *Gallery) Open(i int) {
	g.Select(i)
	g.open = true
}

func (g *Gallery) Close() {
	g.open = false
}

func (g *Gallery) IsOpen() bool {
	return g.open
}
