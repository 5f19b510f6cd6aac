package landmark

import "errors"

// ErrMissing is returned when a required landmark id is not in the set.
// A non-empty set without the fixed ids means the model and the id table disagree.
var ErrMissing = errors.New("landmark: missing landmark")
