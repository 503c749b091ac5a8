package domain

// DocumentType es el tipo de publicación según el catálogo SEDICI.
// Determina el prompt y el conjunto de claves requeridas.
type DocumentType string

const (
	TypeArticulo    DocumentType = "Articulo"
	TypeLibro       DocumentType = "Libro"
	TypeTesis       DocumentType = "Tesis"
	TypeConferencia DocumentType = "Objeto de conferencia"
	TypeGeneral     DocumentType = "General"
	TypeNone        DocumentType = "None" // clasificar automáticamente
)

// ParseDocumentType normaliza el valor recibido en el formulario. Un valor
// vacío o desconocido equivale a None (clasificación automática).
func ParseDocumentType(value string) DocumentType {
	switch DocumentType(value) {
	case TypeArticulo, TypeLibro, TypeTesis, TypeConferencia, TypeGeneral:
		return DocumentType(value)
	default:
		return TypeNone
	}
}

// MetadataRecord es el registro final: claves estilo Dublin Core con valores
// string o lista de strings según el esquema.
type MetadataRecord map[string]any

// SubjectKey es la clave donde el orquestador adjunta la materia predicha.
const SubjectKey = "sedici.subject.materias"

// generalKeys es el mínimo común a todos los tipos de documento.
var generalKeys = []string{
	"dc.language",
	"dc.subject",
	"dc.title",
	"dc.type",
	"sedici.creator.person",
	"sedici.subject.materias",
}

// RequiredKeys devuelve el conjunto de claves requeridas para un tipo.
// Todo tipo incluye las claves generales; los tipos conocidos agregan las suyas.
func RequiredKeys(docType DocumentType) []string {
	keys := append([]string{}, generalKeys...)
	switch docType {
	case TypeTesis:
		keys = append(keys,
			"sedici.contributor.director",
			"sedici.contributor.codirector",
			"thesis.degree.name",
			"thesis.degree.grantor",
			"sedici.date.exposure",
		)
	case TypeArticulo:
		keys = append(keys,
			"sedici.title.subtitle",
			"sedici.relation.journalTitle",
			"sedici.relation.journalVolumeAndIssue",
			"sedici.identifier.issn",
		)
	case TypeConferencia:
		keys = append(keys,
			"sedici.relation.event",
			"sedici.date.exposure",
		)
	case TypeLibro:
		keys = append(keys, "sedici.title.subtitle")
	}
	return keys
}
