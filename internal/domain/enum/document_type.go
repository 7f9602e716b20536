package enum

// DocumentType represents an identity document class used in Colombia
type DocumentType string

const (
	DocumentTypeCC        DocumentType = "CC"
	DocumentTypeCE        DocumentType = "CE"
	DocumentTypeNIT       DocumentType = "NIT"
	DocumentTypePasaporte DocumentType = "Pasaporte"
)

// DocumentTypes returns all known document types
func DocumentTypes() []DocumentType {
	return []DocumentType{DocumentTypeCC, DocumentTypeCE, DocumentTypeNIT, DocumentTypePasaporte}
}

// IsValid reports whether the document type is a known value
func (d DocumentType) IsValid() bool {
	for _, v := range DocumentTypes() {
		if d == v {
			return true
		}
	}
	return false
}

func (d DocumentType) String() string {
	return string(d)
}
