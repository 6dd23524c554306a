package htmlhelper

import (
	"regexp"
	"strings"
)

var bracketReplacer = strings.NewReplacer("[", "-", "]", "-")

// NameToID converts a form field name in array notation into a string
// usable as an element id.
//
//	user[location][city] -> user-location-city
func NameToID(name string) string {
	id := bracketReplacer.Replace(name)
	id = strings.ReplaceAll(id, "--", "-")
	return strings.TrimRight(id, "-")
}

var arrayNameRegexp = regexp.MustCompile(`^([^\]]+)(?:\[(.+)\])+$`)

// NameToArray splits a form field name in array notation into its
// segments. Empty segments and "0" segments are dropped, so a numeric
// index of zero does not survive.
//
//	user[location][city] -> [user location city]
//	items[0][name]       -> [items name]
//	user[]               -> [user[]]
func NameToArray(name string) []string {
	if !strings.ContainsAny(name, "[]") {
		return segments([]string{name})
	}

	m := arrayNameRegexp.FindStringSubmatch(name)
	if m == nil {
		return segments([]string{name})
	}
	parts := append([]string{m[1]}, strings.Split(m[2], "][")...)
	return segments(parts)
}

func segments(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" && p != "0" {
			out = append(out, p)
		}
	}
	return out
}
