// Package layout implements a pure-Go flexbox and grid layout engine that
// works in terminal cells.
//
// Flex containers support both directions, every justify and align mode the
// showcase exercises (including the Default, FlexStart/FlexEnd and Baseline
// variants), gap, padding, margin, grow/shrink and min/max constraints. Grid
// containers support fixed, percent and auto tracks, sparse row-major auto
// placement with explicit column starts and spans, and per-item alignment
// inside the grid area.
//
// The main entry point is [Calculate], which takes a [Layoutable] tree and
// computes absolute [Rect] positions for each node.
package layout
