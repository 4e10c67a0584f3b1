package service

import "strings"

type ImageResolver interface {
	URL(ref string) string
}

// MediaURLResolver serves stored image references from a media prefix.
type MediaURLResolver struct {
	BaseURL string
}

func (r MediaURLResolver) URL(ref string) string {
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return strings.TrimRight(r.BaseURL, "/") + "/" + strings.TrimLeft(ref, "/")
}
