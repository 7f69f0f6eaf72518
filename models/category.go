package models

// Category is a node of the store's category tree. Parent is 0 for roots.
type Category struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Parent      int            `json:"parent"`
	Description string         `json:"description"`
	Image       *CategoryImage `json:"image"`
	Count       int            `json:"count"`
}

type CategoryImage struct {
	ID  int    `json:"id"`
	Src string `json:"src"`
	Alt string `json:"alt"`
}
