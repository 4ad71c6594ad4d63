package dto

// Document wraps a single resource or an unpaginated collection.
type Document struct {
	Data interface{} `json:"data"`
}

// ListMeta carries pagination metadata computed over the filtered set.
type ListMeta struct {
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
}

// ListDocument wraps a paginated collection together with its meta.
type ListDocument struct {
	Data interface{} `json:"data"`
	Meta ListMeta    `json:"meta"`
}
