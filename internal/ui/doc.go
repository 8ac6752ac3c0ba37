package ui

// Package ui contains the Fyne-based user interface for the study screen.
// RootUI renders a viewmodel.ViewModel and forwards every user interaction to
// it; the view-model's update callback triggers a refresh on the UI thread.
// All UI strings are localized via Localization.
