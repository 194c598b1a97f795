// Package imagetile composes multiple images into a single canvas and adds
// text labels to images.
//
// Inputs are polymorphic: a Source is either a filesystem path or an
// already-decoded image.Image (see File, FromImage and AsSource). Tile takes
// a ragged grid of sources, TileAuto takes a flat list and arranges it into
// a near-square grid automatically.
//
// # Layout rules
//
// The grid may be ragged: rows need not have the same length, and the
// longest row determines the column count. Each column is as wide as the
// widest image appearing in it and each row as tall as its tallest image;
// the canvas is the sum of those sizes. Images are pasted at their native
// resolution with the top-left corner at the cumulative column/row offset,
// and every uncovered region is filled with the background color. An
// optional final resize (Lanczos) scales the finished canvas to an exact
// resolution.
//
// # Errors
//
// Failures are classified by the package sentinels ErrInvalidArgument,
// ErrImageLoad and ErrUnsupportedType and can be tested with errors.Is.
// Every error aborts the whole call; there are no partial results.
package imagetile
