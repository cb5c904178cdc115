// Package pep implements the Prediction-Encoded Pixels codec: a lossless
// image codec for pixel art rasters with 256-color-or-fewer palettes.
//
// A raster is reduced to a first-seen palette and a per-pixel index stream
// (internal/palette), the indices are packed into byte-aligned symbols and
// coded against an adaptive order-2 frequency model (internal/ppm) driven
// by a finite-precision range coder (internal/arith), and the result is
// serialized into a flat container (internal/container) alongside the
// quantized palette and geometry.
//
// This mirrors the teacher's own top-level package shape: a thin Image
// type and Compress/Decompress/Save/Load entry points over the same
// internal pipeline the CLI in cmd/peppack drives.
package pep
