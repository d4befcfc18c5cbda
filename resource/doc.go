// Package resource caches display-ready page resources.
//
// Decoded page images are converted once per key into a resource (by
// default a [Texture] of straight-alpha RGBA pixels) and kept for the
// lifetime of the cache. Entries are never evicted or invalidated.
//
// Keys combine the archive identity with the entry name, so two archives
// that both contain "001.jpg" do not share a cache entry.
package resource
