package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy of cfg plus everything wrong
// with it. Callers should refuse to run when !OK().
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	out.App.Output = strings.TrimSpace(out.App.Output)
	if out.App.Output == "" {
		out.App.Output = "internships.md"
	}

	out.Search.Host = strings.TrimRight(strings.TrimSpace(out.Search.Host), "/")
	if out.Search.Host == "" {
		res.addErr("search.host is required")
	} else if u, err := url.Parse(out.Search.Host); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("search.host %q is not an absolute URL", out.Search.Host)
	}

	out.Search.Keywords = strings.TrimSpace(out.Search.Keywords)
	if out.Search.Keywords == "" {
		res.addErr("search.keywords is required")
	}

	locs := make(map[string]string, len(out.Search.Locations))
	for name, geoID := range out.Search.Locations {
		name = strings.TrimSpace(name)
		geoID = strings.TrimSpace(geoID)
		if name == "" || geoID == "" {
			res.addWarn("dropping location entry with empty name or geoId")
			continue
		}
		locs[name] = geoID
	}
	out.Search.Locations = locs
	if len(out.Search.Locations) == 0 {
		res.addErr("search.locations must list at least one location")
	}

	if len(out.Search.Headers) == 0 {
		res.addWarn("search.headers is empty; requests will carry Go's default User-Agent")
	}

	return out, res
}
