// Package ui implements the terminal viewer using bubbletea's Elm architecture.
//
// The viewer paints exactly one of three panes, mirroring [view.Machine]:
//  1. Loading : spinner while the collection is fetched, or the error panel if the fetch failed
//  2. List : one entry per sheet, in collection order
//  3. Detail : title, description, PDF and video links of the selected sheet
//
// Navigation goes through a [history.Adapter] backed by an in-memory [history.Stack], so "[" and "]" step
// back and forward through previously visited views the way a browser's buttons do.
//
// Keyboard: enter selects, esc returns to the list, o/v open the PDF/video in the system browser, q quits.
package ui
