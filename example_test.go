package mdpress_test

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/mdpress/mdpress"
)

// Example_convertToHTML renders Markdown to the styled HTML document that
// feeds the PDF engine. No browser is involved in this stage.
func Example_convertToHTML() {
	svc := mdpress.New()
	defer svc.Close()

	html, err := svc.ConvertToHTML(context.Background(), mdpress.Input{
		Markdown: "## Features\n\nFast and self-contained.",
		Title:    "report",
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(strings.Contains(html, "<title>report</title>"))
	fmt.Println(strings.Contains(html, "Features"))
	// Output:
	// true
	// true
}

// ExampleNew shows the full conversion. Requires an installed
// Chrome/Chromium (or use WithEngine(mdpress.EngineRod)).
func ExampleNew() {
	svc := mdpress.New(
		mdpress.WithEngine(mdpress.EngineChrome),
	)
	defer svc.Close()

	err := svc.Convert(context.Background(), mdpress.Input{
		Markdown:   "# Hello\n\nWorld",
		Title:      "hello",
		OutputPath: "hello.pdf",
	})
	_ = err // fails when no browser is installed
}
