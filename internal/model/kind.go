package model

// ItemKind is the closed set of top-level declaration kinds. Consumers
// switch exhaustively over it, so a new kind forces every consumer to be
// revisited.
type ItemKind uint8

const (
	// KindRecord is a record-like type (struct).
	KindRecord ItemKind = iota
	// KindEnum is an enumerated type; its variants are modelled as fields.
	KindEnum
	// KindCapability is a capability (trait-like) declaration.
	KindCapability
)

func (k ItemKind) String() string {
	switch k {
	case KindRecord:
		return "record"
	case KindEnum:
		return "enum"
	case KindCapability:
		return "capability"
	}
	return "unknown"
}

// Visibility of an item or member.
type Visibility uint8

const (
	VisPrivate Visibility = iota
	VisPublic
)

func (v Visibility) String() string {
	if v == VisPublic {
		return "pub"
	}
	return "private"
}

// RelKind is the closed set of relationship kinds.
type RelKind uint8

const (
	// RelComposition: a field's type names another item.
	RelComposition RelKind = iota
	// RelCapabilityImpl: an item is declared to implement a capability.
	RelCapabilityImpl
)

func (k RelKind) String() string {
	switch k {
	case RelComposition:
		return "composition"
	case RelCapabilityImpl:
		return "capability-implementation"
	}
	return "unknown"
}
