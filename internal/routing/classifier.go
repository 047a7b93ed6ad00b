package routing

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

type RouteClass string

const (
	RouteClassUI     RouteClass = "ui"
	RouteClassAPI    RouteClass = "api"
	RouteClassOps    RouteClass = "ops"
	RouteClassStatic RouteClass = "static"
)

func (rc RouteClass) valid() bool {
	switch rc {
	case RouteClassUI, RouteClassAPI, RouteClassOps, RouteClassStatic:
		return true
	}
	return false
}

type Classifier struct {
	entrypoint        string
	allowExact        map[string]allowedRoute
	allowPathPatterns []pathPatternRoute
}

type allowedRoute struct {
	rc      RouteClass
	methods []string
}

func NewClassifier(a Allowlist, entrypoint string) (*Classifier, error) {
	ep, ok := a.Entrypoints[entrypoint]
	if !ok {
		return nil, errors.New("allowlist: missing entrypoint")
	}
	if len(ep.Routes) == 0 {
		return nil, errors.New("allowlist: entrypoint routes empty")
	}

	exact := make(map[string]allowedRoute, len(ep.Routes))
	var patterns []pathPatternRoute
	for _, r := range ep.Routes {
		if r.Path == "" || r.RouteClass == "" {
			return nil, errors.New("allowlist: invalid route")
		}
		rc := RouteClass(r.RouteClass)
		if !rc.valid() {
			return nil, fmt.Errorf("allowlist: unknown route_class %q for %s", r.RouteClass, r.Path)
		}
		allowed := allowedRoute{rc: rc, methods: r.Methods}
		if p, ok := parsePathPattern(r.Path); ok {
			patterns = append(patterns, pathPatternRoute{pattern: p, allowed: allowed})
			continue
		}
		exact[r.Path] = allowed
	}
	return &Classifier{entrypoint: entrypoint, allowExact: exact, allowPathPatterns: patterns}, nil
}

func (c *Classifier) Classify(path string) RouteClass {
	if r, ok := c.lookup(path); ok {
		return r.rc
	}

	switch {
	case hasPrefixSegment(path, "/api"):
		return RouteClassAPI
	case hasPrefixSegment(path, "/assets") || hasPrefixSegment(path, "/static"):
		return RouteClassStatic
	default:
		return RouteClassUI
	}
}

// Allowed reports whether the allowlist declares method on path (or on a pattern matching it).
func (c *Classifier) Allowed(method, path string) bool {
	r, ok := c.lookup(path)
	return ok && slices.Contains(r.methods, method)
}

func (c *Classifier) lookup(path string) (allowedRoute, bool) {
	if r, ok := c.allowExact[path]; ok {
		return r, true
	}
	for _, p := range c.allowPathPatterns {
		if p.pattern.Match(path) {
			return p.allowed, true
		}
	}
	return allowedRoute{}, false
}

func hasPrefixSegment(path, prefix string) bool {
	if path == prefix {
		return true
	}
	return strings.HasPrefix(path, prefix+"/")
}

type pathPatternRoute struct {
	pattern PathPattern
	allowed allowedRoute
}
