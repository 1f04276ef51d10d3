package models

type SearchResult[T any] struct {
	SearchTerm string
	Count      int
	Data       []T
}

func NewSearchResult[T any](term string, data []T) SearchResult[T] {
	return SearchResult[T]{
		SearchTerm: term,
		Count:      len(data),
		Data:       data,
	}
}
