// Package platform provides the filesystem primitives scaffolding steps
// build on: creating directories, moving generated trees, and adjusting
// permission bits. Permission changes are no-ops on Windows, which has no
// Unix mode bits.
package platform
