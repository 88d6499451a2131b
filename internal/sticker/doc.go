package sticker

// Package sticker loads sticker images from a directory and can draw a
// procedural sample set for first runs and tests.
