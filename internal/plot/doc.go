package plot

// Package plot renders the dashboard charts into images. Line charts are drawn
// with go-chart; the donut is rasterized directly with go-chart's drawing
// package so the ring width can be controlled.
