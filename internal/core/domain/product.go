package domain

// Product is a catalogue entry. IDs are sequential within the collection.
type Product struct {
	ID        int      `json:"id" bson:"id"`
	Name      string   `json:"name" bson:"name"`
	Price     float64  `json:"price" bson:"price"`
	Color     int      `json:"color" bson:"color"`
	Thumbnail string   `json:"thumbnail" bson:"thumbnail"`
	DetailImg []string `json:"detailimg" bson:"detailimg"`
	ColorImg  []string `json:"colorimg" bson:"colorimg"`
	Size      []string `json:"size" bson:"size"`
	Type      string   `json:"type" bson:"type"`
	Gender    string   `json:"gender" bson:"gender"`
}

// Clone returns a copy that shares no slices with p.
func (p Product) Clone() Product {
	p.DetailImg = cloneStrings(p.DetailImg)
	p.ColorImg = cloneStrings(p.ColorImg)
	p.Size = cloneStrings(p.Size)
	return p
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
