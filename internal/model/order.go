package model

// FieldCreatedAt is the intake timestamp key of an order, in Unix milliseconds.
const FieldCreatedAt = "createdAt"

// Order is an immutable intake record: customer, items and total are
// caller supplied, id and createdAt belong to the service.
type Order map[string]interface{}

// ID returns the order identifier or "" when unset.
func (o Order) ID() string {
	id, _ := o[FieldID].(string)
	return id
}

// CreatedAt returns the intake timestamp in Unix milliseconds.
func (o Order) CreatedAt() int64 {
	switch v := o[FieldCreatedAt].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}
