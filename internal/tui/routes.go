package tui

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

type route string

const (
	routeHome     route = "/"
	routeAbout    route = "/about"
	routeTheme    route = "/theme"
	routeAuth     route = "/authlogin"
	routeBank     route = "/bankaccount"
	routeCallback route = "/usecallback"
)

// routes is the navbar order; number keys index into it.
var routes = []struct {
	path  route
	title string
}{
	{routeHome, "Home"},
	{routeAbout, "About"},
	{routeTheme, "Theme"},
	{routeAuth, "Auth Login"},
	{routeBank, "Bank Account"},
	{routeCallback, "UseCallback"},
}

func normalizePath(p string) string {
	p = strings.ToLower(strings.TrimSpace(p))
	p = strings.TrimRight(p, "/")
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// LookupRoute resolves a path typed by the user. When nothing matches it
// returns the closest known path by edit distance as a suggestion.
func LookupRoute(path string) (found string, suggestion string, ok bool) {
	p := normalizePath(path)
	best, bestDist := "", -1
	for _, r := range routes {
		if string(r.path) == p {
			return p, "", true
		}
		d := levenshtein.ComputeDistance(p, string(r.path))
		if bestDist < 0 || d < bestDist {
			best, bestDist = string(r.path), d
		}
	}
	return "", best, false
}

func routeTitle(r route) string {
	for _, e := range routes {
		if e.path == r {
			return e.title
		}
	}
	return string(r)
}
