package query

import (
	"fmt"
	"strings"
)

// Key joins parts into a stable hierarchical cache key:
// Key("posts", "detail", id) → "posts/detail/<id>".
func Key(parts ...string) string {
	return strings.Join(parts, "/")
}

// ListKey names one page of a listing; extra parameters (filters) extend
// the key so differently-filtered pages never collide.
func ListKey(resource string, page, size int, extra ...string) string {
	key := fmt.Sprintf("%s/list/p%d/s%d", resource, page, size)
	if len(extra) > 0 {
		key += "/" + strings.Join(extra, "/")
	}
	return key
}

// ListPrefix is the invalidation prefix covering every cached page of a
// resource's listing.
func ListPrefix(resource string) string {
	return resource + "/list/"
}
