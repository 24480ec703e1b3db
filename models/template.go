package models

// Template is a catalog entry used to pre-populate the service-creation
// wizard. Defaults flow into form state on selection; live edits win after that.
type Template struct {
	ID              string  `bson:"id" json:"id"`
	Name            string  `bson:"name" json:"name"`
	Category        string  `bson:"category" json:"category"`
	Description     string  `bson:"description,omitempty" json:"description,omitempty"`
	DefaultDuration int     `bson:"defaultDuration" json:"defaultDuration"` // minutes
	DefaultPrice    float64 `bson:"defaultPrice" json:"defaultPrice"`
	DefaultCapacity int     `bson:"defaultCapacity" json:"defaultCapacity"`
}

// TemplateFilter narrows catalog listings.
type TemplateFilter struct {
	Category string `json:"category,omitempty"`
}
