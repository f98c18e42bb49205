// Package crmtest provides an in-memory stand-in for the Supabase
// row-level REST interface, used by handler and resource tests.
package crmtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Server struct {
	mu       sync.Mutex
	tables   map[string][]map[string]any
	requests int
	failWith int

	srv *httptest.Server
}

func New() *Server {
	s := &Server{
		tables: make(map[string][]map[string]any),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

func (s *Server) Close()      { s.srv.Close() }
func (s *Server) URL() string { return s.srv.URL }

// RequestCount reports how many calls reached the backend.
func (s *Server) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// FailWith makes every subsequent request answer with the given status.
// Zero restores normal behavior.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = status
}

// Seed inserts rows directly, bypassing the HTTP surface.
func (s *Server) Seed(table string, rows ...map[string]any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append(s.tables[table], rows...)
}

// Rows returns the current content of a table.
func (s *Server) Rows(table string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any{}, s.tables[table]...)
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests++

	if s.failWith != 0 {
		http.Error(w, `{"message":"backend failure"}`, s.failWith)
		return
	}

	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	if table == "" || strings.Contains(table, "/") {
		http.Error(w, `{"message":"unknown path"}`, http.StatusNotFound)
		return
	}

	filters := map[string]string{}
	order := ""
	for key, vals := range r.URL.Query() {
		if key == "order" {
			order = vals[0]
			continue
		}
		filters[key] = strings.TrimPrefix(vals[0], "eq.")
	}

	matches := func(row map[string]any) bool {
		for col, val := range filters {
			if fmt.Sprint(row[col]) != val {
				return false
			}
		}
		return true
	}

	switch r.Method {
	case http.MethodGet:
		var out []map[string]any
		for _, row := range s.tables[table] {
			if matches(row) {
				out = append(out, row)
			}
		}
		sortRows(out, order)
		writeRows(w, out)

	case http.MethodPost:
		var row map[string]any
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			http.Error(w, `{"message":"bad payload"}`, http.StatusBadRequest)
			return
		}
		if _, ok := row["id"]; !ok {
			if table == "planos" {
				row["id"] = len(s.tables[table]) + 1
			} else {
				row["id"] = uuid.NewString()
			}
		}
		now := time.Now().UTC().Format(time.RFC3339)
		for _, col := range []string{"created_at", "updated_at"} {
			if _, ok := row[col]; !ok {
				row[col] = now
			}
		}
		s.tables[table] = append(s.tables[table], row)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		writeRows(w, []map[string]any{row})

	case http.MethodPut:
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, `{"message":"bad payload"}`, http.StatusBadRequest)
			return
		}
		var out []map[string]any
		for _, row := range s.tables[table] {
			if matches(row) {
				for col, val := range patch {
					row[col] = val
				}
				out = append(out, row)
			}
		}
		writeRows(w, out)

	case http.MethodDelete:
		var kept, removed []map[string]any
		for _, row := range s.tables[table] {
			if matches(row) {
				removed = append(removed, row)
			} else {
				kept = append(kept, row)
			}
		}
		s.tables[table] = kept
		writeRows(w, removed)

	default:
		http.Error(w, `{"message":"method not allowed"}`, http.StatusMethodNotAllowed)
	}
}

func sortRows(rows []map[string]any, order string) {
	if order == "" {
		return
	}
	field := order
	desc := false
	if i := strings.LastIndex(order, "."); i > 0 {
		field = order[:i]
		desc = order[i+1:] == "desc"
	}
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := fmt.Sprint(rows[i][field]), fmt.Sprint(rows[j][field])
		if desc {
			return a > b
		}
		return a < b
	})
}

func writeRows(w http.ResponseWriter, rows []map[string]any) {
	if rows == nil {
		rows = []map[string]any{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rows)
}
