package placement

// Package placement generates candidate positions for stickers around
// the border of the frame canvas and enforces the placement rules: the
// inner photo window stays clear, stickers may bleed past the canvas
// edge only by the configured overlap, and sticker-on-sticker overlap
// is optional. Four strategies are available: random scan, uniform,
// gradient, and corner-weighted.
