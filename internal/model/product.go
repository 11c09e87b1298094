package model

// FieldID is the service-owned identifier key shared by products and orders.
const FieldID = "id"

// Product is a catalog record. Apart from "id" the field set is owned by
// the caller (title, price, image, description, category, ...).
type Product map[string]interface{}

// ID returns the product identifier or "" when unset.
func (p Product) ID() string {
	id, _ := p[FieldID].(string)
	return id
}

// Clone returns a shallow copy of the product.
func (p Product) Clone() Product {
	out := make(Product, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Merge overwrites fields of p with those in patch and returns the result
// as a new record. Keys in patch replace the whole value, nested objects
// included. The id of p is kept regardless of what patch carries.
func (p Product) Merge(patch map[string]interface{}) Product {
	out := p.Clone()
	for k, v := range patch {
		if k == FieldID {
			continue
		}
		out[k] = v
	}
	return out
}
