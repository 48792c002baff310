package model

// Package model defines the fixed data shown on the dashboard: mood shares for
// the donut chart, synthetic emotion curves for the line chart, the footer and
// navigation entries, and the footer icon hover state.
