package model

// Document is the single persisted root object holding every collection.
type Document struct {
	Users    []User    `json:"users"`
	Products []Product `json:"products"`
	Orders   []Order   `json:"orders"`
}

// NewDocument returns an empty document with non-nil collections.
func NewDocument() *Document {
	return &Document{
		Users:    []User{},
		Products: []Product{},
		Orders:   []Order{},
	}
}

// Normalize replaces nil collections with empty ones so the document always
// serialises as three arrays.
func (d *Document) Normalize() *Document {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Products == nil {
		d.Products = []Product{}
	}
	if d.Orders == nil {
		d.Orders = []Order{}
	}
	return d
}

// FindUserByEmail performs an exact, case-sensitive email match.
func (d *Document) FindUserByEmail(email string) (*User, bool) {
	for i := range d.Users {
		if d.Users[i].Email == email {
			return &d.Users[i], true
		}
	}
	return nil, false
}

// ProductIndex returns the position of the product with id, or -1.
func (d *Document) ProductIndex(id string) int {
	for i, p := range d.Products {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
