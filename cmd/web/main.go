package main

import (
	"flag"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/NSTRvG/Sequence-Analyzer/internal/fasta"
	"github.com/NSTRvG/Sequence-Analyzer/internal/history"
	"github.com/NSTRvG/Sequence-Analyzer/internal/report"
)

// indexHTML renders the history as a plain table with filter and sort
// controls handled server-side.
const indexHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Sequence Analyzer - History</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.4em 0.8em; text-align: left; }
th { background: #f3f4f6; }
</style>
</head>
<body>
<h1>Analysis History</h1>
<form method="get">
<input type="text" name="q" placeholder="filter by name" value="{{.Query}}">
<select name="sort">
<option value="">oldest first</option>
<option value="name" {{if eq .Sort "name"}}selected{{end}}>by name</option>
<option value="gc" {{if eq .Sort "gc"}}selected{{end}}>by GC content</option>
</select>
<button type="submit">Apply</button>
</form>
<p>{{len .Entries}} records - <a href="/export.txt">export.txt</a></p>
<table>
<tr><th>Gen</th><th>Contenido GC (%)</th><th>Funcionalidad Proteína</th><th>Source</th><th>Analyzed</th></tr>
{{range .Entries}}
<tr><td>{{.Name}}</td><td>{{printf "%.2f" .GCContent}}</td><td>{{.Protein}}</td><td>{{.SourceFile}}</td><td>{{.AnalyzedAt.Format "2006-01-02 15:04"}}</td></tr>
{{end}}
</table>
</body>
</html>
`

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// historyPage carries the entries and the query state into the template.
type historyPage struct {
	Entries []history.Entry
	Query   string
	Sort    string
}

// statusResponseWriter captures status and bytes written for logging
type statusResponseWriter struct {
	http.ResponseWriter
	status  int
	written int64
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusResponseWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.written += int64(n)
	return n, err
}

// loggingMiddleware logs each request with method, path, status, size and duration
func loggingMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		srw := &statusResponseWriter{ResponseWriter: w}
		next.ServeHTTP(srw, r)
		if srw.status == 0 {
			srw.status = http.StatusOK
		}
		duration := time.Since(start)
		logger.Printf("%s - %s %s %d %dB %s %q",
			r.RemoteAddr, r.Method, r.URL.RequestURI(), srw.status, srw.written, duration, r.UserAgent())
	})
}

// filterEntries keeps entries whose name, protein or source contains q
// (case-insensitive), then orders them by sortMode.
func filterEntries(entries []history.Entry, q, sortMode string) []history.Entry {
	q = strings.ToLower(strings.TrimSpace(q))
	filtered := make([]history.Entry, 0, len(entries))
	for _, e := range entries {
		if q == "" ||
			strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Protein), q) ||
			strings.Contains(strings.ToLower(e.SourceFile), q) {
			filtered = append(filtered, e)
		}
	}
	switch sortMode {
	case "name":
		sort.Slice(filtered, func(i, j int) bool {
			return strings.ToLower(filtered[i].Name) < strings.ToLower(filtered[j].Name)
		})
	case "gc":
		sort.Slice(filtered, func(i, j int) bool { return filtered[i].GCContent > filtered[j].GCContent })
	}
	return filtered
}

func indexHandler(store *history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.List(r.Context())
		if err != nil {
			http.Error(w, "failed to read history", http.StatusInternalServerError)
			return
		}
		page := historyPage{
			Entries: filterEntries(entries, r.URL.Query().Get("q"), r.URL.Query().Get("sort")),
			Query:   r.URL.Query().Get("q"),
			Sort:    r.URL.Query().Get("sort"),
		}
		if err := indexTemplate.Execute(w, page); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// exportHandler serves the whole history in the same fixed-width text
// format the CLI exports.
func exportHandler(store *history.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.List(r.Context())
		if err != nil {
			http.Error(w, "failed to read history", http.StatusInternalServerError)
			return
		}
		records := make([]fasta.Record, len(entries))
		for i, e := range entries {
			records[i] = e.Record()
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_ = report.Render(w, records)
	}
}

func main() {
	addr := flag.String("addr", ":8080", "HTTP address to serve on")
	dbPath := flag.String("db", "history.db", "path to the sqlite history database")
	logFile := flag.String("log", "", "path to write access logs (optional). If empty, logs go to stdout only")
	flag.Parse()

	store, err := history.Open(*dbPath)
	if err != nil {
		log.Fatalf("failed to open history database: %v", err)
	}
	defer store.Close()

	// prepare mux so we can wrap with middleware
	mux := http.NewServeMux()
	mux.HandleFunc("/", indexHandler(store))
	mux.HandleFunc("/export.txt", exportHandler(store))

	// configure logger
	var out io.Writer = os.Stdout
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			log.Fatalf("failed to open log file: %v", err)
		}
		out = io.MultiWriter(os.Stdout, f)
	}
	logger := log.New(out, "seqanalyzer: ", log.LstdFlags)

	handler := loggingMiddleware(logger, mux)

	srv := &http.Server{Addr: *addr, Handler: handler, ReadTimeout: 5 * time.Second, WriteTimeout: 10 * time.Second}
	fmt.Printf("serving history UI at http://%s/ (db=%s)\n", *addr, *dbPath)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
