// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package router holds the route table of the shell: the static, ordered
// mapping of URL paths to page views.
package router

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/tool-suite/internal/views"
)

// Route binds a URL path to a named view.
type Route struct {
	Path string
	Name string
	View views.ID
}

// Table is an immutable ordered list of routes. It is safe for concurrent
// use.
type Table struct {
	routes []Route
	byPath map[string]int
	byName map[string]int
}

// NewTable builds a table from routes in declaration order.
//
// Returns ErrInvalidRoute for an empty name, an empty view or a path that
// does not start with "/", and ErrDuplicatePath when a path repeats.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{
		routes: make([]Route, 0, len(routes)),
		byPath: make(map[string]int, len(routes)),
		byName: make(map[string]int, len(routes)),
	}

	for _, r := range routes {
		if !strings.HasPrefix(r.Path, "/") || r.Name == "" || r.View == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidRoute, r)
		}
		if _, ok := t.byPath[r.Path]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePath, r.Path)
		}

		t.byPath[r.Path] = len(t.routes)
		if _, ok := t.byName[r.Name]; !ok {
			t.byName[r.Name] = len(t.routes)
		}
		t.routes = append(t.routes, r)
	}

	return t, nil
}

// Lookup returns the route registered for path. A single trailing slash is
// ignored, so "/translator/" matches "/translator".
func (t *Table) Lookup(path string) (Route, bool) {
	if i, ok := t.byPath[path]; ok {
		return t.routes[i], true
	}

	if len(path) > 1 && strings.HasSuffix(path, "/") {
		if i, ok := t.byPath[path[:len(path)-1]]; ok {
			return t.routes[i], true
		}
	}

	return Route{}, false
}

// Resolve returns the view rendered for path.
func (t *Table) Resolve(path string) (views.ID, bool) {
	r, ok := t.Lookup(path)
	return r.View, ok
}

// ByName returns the route with the given name.
func (t *Table) ByName(name string) (Route, bool) {
	i, ok := t.byName[name]
	if !ok {
		return Route{}, false
	}
	return t.routes[i], true
}

// Routes returns a copy of the routes in declaration order.
func (t *Table) Routes() []Route {
	out := make([]Route, len(t.routes))
	copy(out, t.routes)
	return out
}

// Len returns the number of routes.
func (t *Table) Len() int {
	return len(t.routes)
}
