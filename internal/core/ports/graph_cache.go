package ports

// DependencyGraphCache maps an absolute stylesheet path to the absolute paths
// it imports directly.
//
// A present key with an empty list means the file was scanned and has no
// imports. An absent key means the file was never scanned.
//
//go:generate mockgen -source=graph_cache.go -destination=mocks/mock_graph_cache.go -package=mocks
type DependencyGraphCache interface {
	// Get returns the cached imports of path and whether path was ever scanned.
	Get(path string) ([]string, bool)

	// Set replaces the cached imports of path.
	Set(path string, imports []string)
}
