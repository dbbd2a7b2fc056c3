package telemetry

import "strings"

// <prefix>/<domain>/<kind>/<name>/...
func capBase(prefix, domain, kind, name string) string {
	return strings.Join([]string{prefix, domain, kind, name}, "/")
}

func capInfo(p, d, k, n string) string   { return capBase(p, d, k, n) + "/info" }
func capStatus(p, d, k, n string) string { return capBase(p, d, k, n) + "/status" }
func capValue(p, d, k, n string) string  { return capBase(p, d, k, n) + "/value" }
func capEvent(p, d, k, n string) string  { return capBase(p, d, k, n) + "/event" }
func capEventTagged(p, d, k, n, tag string) string {
	return capEvent(p, d, k, n) + "/" + tag
}

// <prefix>/+/+/+/control/+
func ctrlWildcard(prefix string) string { return prefix + "/+/+/+/control/+" }

// parseCtrl splits <prefix>/<domain>/<kind>/<name>/control/<verb>.
func parseCtrl(prefix, topic string) (domain, kind, name, verb string, ok bool) {
	rest, found := strings.CutPrefix(topic, prefix+"/")
	if !found {
		return "", "", "", "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 5 || parts[3] != "control" {
		return "", "", "", "", false
	}
	for _, p := range parts {
		if p == "" {
			return "", "", "", "", false
		}
	}
	return parts[0], parts[1], parts[2], parts[4], true
}
