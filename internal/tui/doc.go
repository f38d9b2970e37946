// Package tui implements the interactive ggadmin editor.
//
// The application is a set of Bubble Tea screens coordinated by AppModel:
//
//   - Discovery: scan the local network for backends (or enter a URL manually)
//   - Catalog: pick a record from the backend's index
//   - Editor: edit one record's form with language tabs
//
// # Language Tabs
//
// The editor is built around tabs.Controller. On load, translated field
// groups are bucketed by language and replaced with a tab strip; the last
// chosen language is restored from the config registry. Switching tabs with
// the arrow keys or the alt+N shortcuts persists the choice for the next
// session.
//
// Validation errors arrive two ways: in the submit response, and over the
// backend's WebSocket event stream. Either way the controller scans the
// panels and brings the first one with an error to the front. A short timer
// covers backends without an event stream.
//
// # Layout
//
// Every screen renders through RenderApplicationContainer, which provides
// the full-screen bordered layout with the application header and a
// context-sensitive footer.
package tui
