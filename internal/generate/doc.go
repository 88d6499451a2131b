package generate

// Package generate implements the frame composition pipeline: picking
// and transforming stickers, gating candidate positions through the
// placement algorithm, compositing onto the canvas, and encoding the
// result. The Service manages task lifecycle, concurrency limits, and
// progress propagation to the UI.
