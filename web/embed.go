// Package web embeds the site's templates, static files, images and content.
package web

import "embed"

// FS holds templates/, static/, assets/img/ and content/.
//
//go:embed templates static assets content
var FS embed.FS

const (
	ImageRoot   = "assets/img"
	ContentFile = "content/site.yaml"
)
