package pagination

// DefaultOffset is the offset used when none is specified
const DefaultOffset = 0

// DefaultLimit is the page size used when none is specified
const DefaultLimit = 50

// MaxLimit is the largest page size a client may request
const MaxLimit = 100

// AllowedLimits are the page sizes a list view offers, in display order
var AllowedLimits = []int{5, 10, 25, 50, 100}

const (
	offsetKey = "offset"
	limitKey  = "limit"
)
