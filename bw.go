// Package bw provides the content-extraction and text-anchoring core of the
// bw capture tool. It turns a noisy HTML page into a clean text payload and
// re-locates previously captured quotes on a page whose DOM may have been
// re-rendered, using a context-bearing text anchor instead of DOM paths.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, rod/).
package bw
