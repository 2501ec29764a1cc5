package hnsw

import "errors"

// ErrEmptyIndex is returned by Search when the index holds no vectors.
var ErrEmptyIndex = errors.New("hnsw: index is empty")

// ErrInvalidConfig is returned by New when the supplied Config fails
// validation. It is never returned by Insert or Search.
var ErrInvalidConfig = errors.New("hnsw: invalid config")
