package ui

// Package ui contains the Fyne-based desktop user interface of the dashboard.
// Shell owns the window and scroll container, DashboardView composes the
// sections, and footer icons report pointer events through a HoverTable.
// All UI strings are localized via Localization.
