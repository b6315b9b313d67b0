// Package gradviz derives the numbers behind an interactive gradient
// visualizer for multivariable scalar functions.
//
// 🚀 What is gradviz?
//
//	For a selected f(x,y) and point (px, py) it computes:
//		• a 50×50 surface/contour grid over [-5,5]²
//		• the value pz and gradient (gx, gy) at the point
//		• the scaled gradient arrow for the contour map
//		• the X- and Y-slices through the point with tangent segments
//
// Under the hood, everything is organized under small subpackages:
//
//	field/  — function registry (closed-form f and grad) + finite-difference check
//	matrix/ — row-major Dense storage for sampled meshes
//	grid/   — Linspace, Mesh and Sample
//	probe/  — point evaluation, domain checks and the gradient arrow
//	slice/  — axis slices and tangent segments
//	frame/  — the full single-pass pipeline and its plain-data export
//
// Rendering is left to an external plotting tool; cmd/gradviz prints a
// frame as text, JSON or YAML.
//
//	go install github.com/katalvlaran/gradviz/cmd/gradviz@latest
package gradviz
