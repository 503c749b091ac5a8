package services

import (
	"sedici_metadata_server/internal/domain"
)

// TypeStrategy empareja el prompt de un tipo de documento con su conjunto de
// claves requeridas
type TypeStrategy struct {
	Prompt       string
	RequiredKeys []string
}

// Despacho estático por tipo: agregar un tipo nuevo es agregar una entrada
var typeStrategies = map[domain.DocumentType]TypeStrategy{
	domain.TypeGeneral:     {Prompt: domain.PromptGeneral, RequiredKeys: domain.RequiredKeys(domain.TypeGeneral)},
	domain.TypeTesis:       {Prompt: domain.PromptTesis, RequiredKeys: domain.RequiredKeys(domain.TypeTesis)},
	domain.TypeArticulo:    {Prompt: domain.PromptArticulo, RequiredKeys: domain.RequiredKeys(domain.TypeArticulo)},
	domain.TypeConferencia: {Prompt: domain.PromptConferencia, RequiredKeys: domain.RequiredKeys(domain.TypeConferencia)},
	domain.TypeLibro:       {Prompt: domain.PromptLibro, RequiredKeys: domain.RequiredKeys(domain.TypeLibro)},
}

// StrategyFor devuelve la estrategia del tipo, con General como default para
// tipos ausentes o no reconocidos
func StrategyFor(docType domain.DocumentType) TypeStrategy {
	if strategy, ok := typeStrategies[docType]; ok {
		return strategy
	}
	return typeStrategies[domain.TypeGeneral]
}

// MergeRecord completa el registro del LLM: toda clave requerida ausente se
// inserta vacía, la materia predicha va en sedici.subject.materias y dc.type
// queda fijado al tipo resuelto.
func MergeRecord(record domain.MetadataRecord, strategy TypeStrategy, docType domain.DocumentType, subject string) domain.MetadataRecord {
	if record == nil {
		record = make(domain.MetadataRecord)
	}
	for _, key := range strategy.RequiredKeys {
		if _, ok := record[key]; !ok {
			record[key] = ""
		}
	}
	record[domain.SubjectKey] = subject
	record["dc.type"] = string(docType)
	return record
}
