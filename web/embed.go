// Package web embeds the built-in chat page and serves it over HTTP.
// The page is a single self-contained HTML file that talks to the /chat
// and /history endpoints; there is no build step.
package web

import (
	"embed"
	"net/http"
)

//go:embed static
var staticFS embed.FS

// ChatboxHandler returns an http.Handler that serves the embedded chat
// page.
func ChatboxHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		data, err := staticFS.ReadFile("static/chatbox.html")
		if err != nil {
			http.Error(w, "chat page unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(data)
	})
}
