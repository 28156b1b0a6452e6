package model

// Enum values accepted by the input schemas. Validation enforces membership via
// the oneof rules on the input structs.

// User roles
const (
	RoleAdmin    = "admin"
	RoleManager  = "manager"
	RoleOperator = "operator"
)

// User account status, distinct from the soft-delete flag
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// Branch address variants
const (
	AddressTypeStreet = "street"
	AddressTypeRoad   = "road"
)

// Road classification
const (
	RoadEntityFederal   = "federal"
	RoadEntityState     = "state"
	RoadEntityMunicipal = "municipal"
)

// Circulation of a road
const (
	CirculationOneWay = "oneWay"
	CirculationTwoWay = "twoWay"
)

// Vehicle registration check directions
const (
	CheckTypeEntry = "entry"
	CheckTypeExit  = "exit"
)
