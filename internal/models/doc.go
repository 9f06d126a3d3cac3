// Package models defines the data carried by the work instruction sheet viewer.
//
// A [SheetRecord] is one work instruction sheet as it appears in the source document: a stable id,
// a display title, free-text description and links to a PDF and a video. Every field is untrusted
// text; escaping is the renderer's job, not the model's.
package models
