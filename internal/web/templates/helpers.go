// Package templates renders the onboarding pages. The *_templ.go files are
// generated from the .templ sources with `templ generate`.
package templates

import "github.com/JonMunkholm/onboard/internal/core"

// Flash is a one-shot message carried across a redirect.
type Flash struct {
	Category string `json:"c"` // success, danger, warning, info
	Message  string `json:"m"`
}

var kindLabels = map[core.DocumentKind]string{
	core.KindInsurance: "Certificate of insurance",
	core.KindLicense:   "Business license",
	core.KindW9:        "W-9",
	core.KindPolicy:    "Security policy",
}

func kindLabel(k core.DocumentKind) string {
	if l, ok := kindLabels[k]; ok {
		return l
	}
	return string(k)
}
