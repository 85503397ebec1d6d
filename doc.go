/*
Package foyer is a server-rendered application shell: it mounts a route
table, renders a navigation bar on every path except the root, renders one
page per route, and renders a footer on every path.

Pages are opaque Markdown documents with YAML front matter, loaded from a
content directory (or from embedded defaults). The shell owns only the
layout and routing; page content is never interpreted beyond rendering.

# Usage

Initialize the app and mount its handler:

	package main

	import (
		"log"
		"net/http"

		"github.com/arvhem/foyer"
	)

	func main() {
		app, err := foyer.New("./content")
		if err != nil {
			log.Fatal(err)
		}

		log.Fatal(http.ListenAndServe(":8080", app.Handler()))
	}

The foyer CLI wraps the same facade with a serve command, content
validation, terminal preview, and a route table printer.
*/
package foyer
