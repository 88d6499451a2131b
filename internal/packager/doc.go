package packager

// Package packager wraps the external packaging tool that turns the
// application into a standalone windowed executable. It cleans prior
// build output, invokes the tool, and reports the outcome from the
// tool's exit status, checking the produced file only as a secondary
// sanity check. Windows builds get an icon and version resource.
