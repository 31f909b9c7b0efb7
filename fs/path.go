// Package fs stores extraction results as Markdown files with YAML
// frontmatter.
package fs

import (
	"net/url"
	"path"
	"strings"

	"github.com/fwojciec/bw"
)

// ResultPath maps a page URL to a relative file path under the host name.
// Example: https://example.com/notes/fox → example.com/notes/fox.md
func ResultPath(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", bw.Errorf(bw.EINVALID, "invalid page URL %q", rawURL)
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		host = "local"
	}

	p := u.Path
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return "", bw.Errorf(bw.EINVALID, "path traversal in %q", rawURL)
		}
	}

	p = strings.TrimPrefix(p, "/")
	switch {
	case p == "":
		p = "index.md"
	case strings.HasSuffix(p, "/"):
		p += "index.md"
	default:
		p = strings.TrimSuffix(p, ".html") + ".md"
	}
	return path.Join(host, p), nil
}
