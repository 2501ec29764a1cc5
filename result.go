package hnsw

// SearchResult is one match returned by Index.Search, ordered ascending
// by Distance.
type SearchResult struct {
	Id       VectorId
	Vector   Vector
	Distance float32
}
