// Package version provides build and version information.
package version

// Version is the current application version.
// Update this at logical milestones.
const Version = "0.2.0"

// Milestones:
// 0.1.0 - One-shot sorting, cleanup, TOML config with legacy INI import
// 0.2.0 - Watch mode, review TUI, update checks
// 0.3.0 - (planned) Carry subtitle files along with their episodes
// 1.0.0 - (planned) Feature-complete public release
