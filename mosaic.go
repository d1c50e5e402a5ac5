package nemkit

import (
	"fmt"
	"strings"
)

// MosaicId identifies a ledger asset type by its namespace and name,
// e.g. namespace "nem" and name "xem".
type MosaicId struct {
	// NamespaceID is the namespace the mosaic belongs to.
	NamespaceID string
	// Name is the mosaic name within the namespace.
	Name string
}

// MosaicIdDTO is the transport form of a mosaic identifier. It carries
// exactly the two fields remote nodes expect; attributes added to MosaicId
// elsewhere can never leak into serialization through this type.
type MosaicIdDTO struct {
	NamespaceID string `json:"namespaceId"`
	Name        string `json:"name"`
}

// ParseMosaicID parses a qualified mosaic name of the form "namespace:name".
func ParseMosaicID(s string) (MosaicId, error) {
	namespace, name, ok := strings.Cut(s, ":")
	if !ok || namespace == "" || name == "" {
		return MosaicId{}, fmt.Errorf("%w: %q", ErrInvalidMosaicID, s)
	}
	return MosaicId{NamespaceID: namespace, Name: name}, nil
}

// QualifiedName returns the canonical dotted form "namespace:name".
// Both fields are assumed pre-validated by the caller or deserializer;
// no character-set validation is performed here.
func (m MosaicId) QualifiedName() string {
	return m.NamespaceID + ":" + m.Name
}

// String returns the qualified name.
func (m MosaicId) String() string {
	return m.QualifiedName()
}

// Validate reports whether both identifier components are present.
func (m MosaicId) Validate() error {
	if m.NamespaceID == "" {
		return fmt.Errorf("%w: missing namespace", ErrInvalidMosaicID)
	}
	if m.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidMosaicID)
	}
	return nil
}

// DTO returns the transport form of the identifier.
func (m MosaicId) DTO() MosaicIdDTO {
	return MosaicIdDTO{
		NamespaceID: m.NamespaceID,
		Name:        m.Name,
	}
}
