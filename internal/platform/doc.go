package platform

// Package platform contains OS integration glue: filesystem helpers and
// opening or revealing generated frames with the system's own tools.
