// Package mdpress converts Markdown documents to PDF using a headless
// Chrome/Chromium browser.
//
// # Quick Start
//
// Create a service, convert a document, and close when done:
//
//	svc := mdpress.New()
//	defer svc.Close()
//
//	err := svc.Convert(ctx, mdpress.Input{
//	    Markdown:   "# Hello\n\nWorld",
//	    Title:      "hello",
//	    OutputPath: "hello.pdf",
//	})
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Markdown preprocessing (line normalization, lazy-list fixes,
//     ==highlight== syntax)
//  2. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  3. CSS injection (embedded print stylesheet, page rules, user CSS)
//  4. PDF rendering via headless Chrome
//
// # PDF Engines
//
// Two engines are available behind the same interface:
//
//   - EngineChrome (default) probes a fixed, ordered list of well-known
//     filesystem locations for an installed Chrome/Chromium binary and
//     invokes it as a subprocess with print-to-PDF flags. The first
//     existing path wins; if none exists the conversion fails before any
//     process is spawned.
//   - EngineRod drives a managed Chromium instance over the DevTools
//     protocol via go-rod. Rod downloads its own browser on first run
//     (~/.cache/rod/browser/), so no pre-installed Chrome is required.
//
// Use WithBrowserPaths to substitute the probed locations, for example in
// tests:
//
//	svc := mdpress.New(
//	    mdpress.WithEngine(mdpress.EngineChrome),
//	    mdpress.WithBrowserPaths([]string{"/opt/chrome/chrome"}),
//	)
//
// # Timeouts
//
// The browser wait is bounded (default 30 seconds). On expiry the browser
// process group is killed and the conversion fails. Use WithTimeout or the
// context deadline to adjust.
//
// For containers and CI environments both engines disable the browser
// sandbox automatically; the rod engine additionally honors
// ROD_BROWSER_BIN to reuse a pre-installed browser.
package mdpress
