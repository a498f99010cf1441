//go:build !js
// +build !js

package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"net/http"
)

//go:embed index.html
var indexHTML []byte

// newMux builds the site's routes. Paths other than the index and the API
// are served from staticDir.
func newMux(staticDir string) *http.ServeMux {
	mux := http.NewServeMux()
	files := http.FileServer(http.Dir(staticDir))

	// Serve embedded index.html at root path
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" || r.URL.Path == "/index.html" {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(indexHTML)
			return
		}
		files.ServeHTTP(w, r)
	})

	mux.HandleFunc("/api/effects", handleEffects)
	mux.HandleFunc("/api/poster", handlePoster)

	// Health check
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	})

	return mux
}

func main() {
	port := flag.Int("port", 8080, "HTTP server port")
	staticDir := flag.String("static", ".", "Directory to serve static files from")
	flag.Parse()

	addr := fmt.Sprintf(":%d", *port)
	log.Printf("Backdrop server starting on http://localhost%s", addr)
	log.Printf("Serving static files from: %s", *staticDir)
	log.Printf("Poster endpoint: /api/poster?effect=ID&w=W&h=H&frames=N&seed=S")

	if err := http.ListenAndServe(addr, newMux(*staticDir)); err != nil {
		log.Fatal(err)
	}
}
