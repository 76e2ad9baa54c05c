// Package config owns the linkage settings: the five segment lengths and the
// figure settings used by the renderers.
//
// Settings are read from a TOML file:
//
//	[arm]
//	ad = 0.6
//	de = 0.5
//	ab = 0.3
//	bc = 0.4
//	cd = 0.2
//
//	[render]
//	scale = 300
//
// Keys that are absent keep their defaults. Individual segments can be
// overridden with assignments such as "ad=0.7" or, using the names of the
// original settings panel, "a1=0.7".
//
// A [Holder] keeps the canonical arm configuration for long-running callers
// (the interactive UI). Readers take a [Holder.Snapshot] at the start of each
// solve; writers replace the whole value, so a solve never observes a
// half-applied update.
package config
