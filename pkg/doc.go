// Package pkg provides the libraries behind the linkage command.
//
// # Overview
//
// linkage solves a planar five-segment robot arm. A lift arm (AD, DE)
// carries the effector E; a support arm (AB, BC) is tied to it through the
// junction link CD. Given a target point the solver places every joint and
// reports the two drive angles and the base azimuth.
//
// # Data Flow
//
//	settings file / flags
//	         ↓
//	    [config] (segment lengths, render scale)
//	         ↓
//	    [pipeline] (validate, memo, hooks)
//	         ↓
//	    [linkage] (inverse kinematics on [geom] primitives)
//	         ↓
//	    [render] (SVG, JSON, text, reachability grid)
//
// # Quick Start
//
//	cfg := linkage.DefaultConfig()
//	l, err := linkage.Solve(cfg, linkage.Target{X: 0.8})
//	if err != nil {
//	    fmt.Println(errors.UserMessage(err)) // "Position out of range"
//	    return
//	}
//	svg := render.RenderSVG(render.Frame{Config: cfg, Target: linkage.Target{X: 0.8}, Layout: l})
//
// # Main Packages
//
// [geom] - Points, polar placement and the clamped law of cosines.
//
// [linkage] - Arm configuration, targets, layouts and the solver with its
// typed failures.
//
// [config] - TOML settings, segment aliases and a concurrency-safe holder for
// the live configuration.
//
// [render] - Figure transform, styles and the output formats.
//
// [pipeline] - Solve and render orchestration shared by every command.
//
// [observability] - Hook interfaces for metrics and tracing.
//
// [errors] - Coded errors with user-facing messages.
//
// [buildinfo] - Version information stamped in at build time.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/linkage/pkg/geom
// [linkage]: https://pkg.go.dev/github.com/matzehuels/linkage/pkg/linkage
// [config]: https://pkg.go.dev/github.com/matzehuels/linkage/pkg/config
// [render]: https://pkg.go.dev/github.com/matzehuels/linkage/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/linkage/pkg/pipeline
// [observability]: https://pkg.go.dev/github.com/matzehuels/linkage/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/linkage/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/linkage/pkg/buildinfo
package pkg
