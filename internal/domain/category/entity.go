package category

// Category groups albums for browsing. It carries no files, so it is the
// one vertical whose writes never touch the data directory.
type Category struct {
	ID   int32  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name" json:"name"`
}

func (Category) TableName() string { return "category" }

type CategoryResponse struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

func FromCategory(c Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

func FromCategories(cs []Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromCategory(c))
	}
	return out
}
