package domain

// Prompts por tipo de documento. Cada prompt enumera las claves requeridas del
// tipo y muestra un ejemplo del JSON esperado; el orquestador concatena el
// prompt con el texto extraído antes de llamar al servicio LLM.

const headerPrompt = `You're an advanced data extractor with expertise in structuring and formatting information into JSON format from various texts.
Your task is to extract specific information from a given text and present it in the required JSON format.
You have to extract the metadata: `

const middlePrompt = "\nHere is a JSON Example format:\n"

const endPrompt = "\nNow, extract the information from the following text and provide it in the specified JSON format:\n"

const jsonGeneral = `{
  "dc.language": "es",
  "dc.subject": "['Energía eólica', 'modelos analíticos de estelas', 'eficiencia del parque']",
  "dc.title": "Simulación mediante modelos analíticos de estela en parques eólicos",
  "dc.type": "Articulo",
  "sedici.creator.person": "['Lazzari, Florencia', 'Otero, Alejandro']",
  "sedici.subject.materias": "Otras ingenierías y tecnologías"
}`

const jsonTesis = `{
  "dc.language": "es",
  "dc.subject": "['Sistemas silvopastoriles', 'Eucalyptus', 'Pastizal natural']",
  "dc.title": "¿Es compatible la producción forestal con la producción forrajera en plantaciones de Eucalyptus híbrido?",
  "dc.type": "Tesis",
  "sedici.creator.person": "Siccardi, Bárbara",
  "sedici.subject.materias": "Agricultura, silvicultura y pesca",
  "sedici.contributor.director": "Dra. Carolina Pérez",
  "sedici.contributor.codirector": "Ing. Agr. Bárbara Heguy",
  "thesis.degree.name": "Ingeniero Forestal",
  "thesis.degree.grantor": "Universidad Nacional de La Plata",
  "sedici.date.exposure": "2023-03-17"
}`

const jsonArticulo = `{
  "dc.language": "es",
  "dc.subject": "['Subjetividad', 'Infancias institucionalizadas', 'Salud mental']",
  "dc.title": "Infancias institucionalizadas en casas de abrigo",
  "dc.type": "Articulo",
  "sedici.creator.person": "['Gastaminza, Florencia', 'Pérez, Edith Alba']",
  "sedici.subject.materias": "Psicología y ciencias cognitivas",
  "sedici.title.subtitle": "Una propuesta preliminar en el campo de las políticas públicas",
  "sedici.relation.journalTitle": "Investigación Joven",
  "sedici.relation.journalVolumeAndIssue": "Vol 6 (especial)",
  "sedici.identifier.issn": "2314-3991"
}`

const jsonConferencia = `{
  "dc.language": "es",
  "dc.subject": "['Energías renovables', 'Validación de modelos']",
  "dc.title": "Validación con mediciones del parque eólico Rawson",
  "dc.type": "Objeto de conferencia",
  "sedici.creator.person": "['Lazzari, Florencia', 'Otero, Alejandro']",
  "sedici.subject.materias": "Otras ingenierías y tecnologías",
  "sedici.relation.event": "ASADES 2018",
  "sedici.date.exposure": "2018-10-01"
}`

const jsonLibro = `{
  "dc.language": "es",
  "dc.subject": "['Historia argentina', 'Siglo XIX']",
  "dc.title": "La construcción del estado provincial",
  "dc.type": "Libro",
  "sedici.creator.person": "Barcos, María Fernanda",
  "sedici.subject.materias": "Historia y arqueología",
  "sedici.title.subtitle": "Tierras, poder y sociedad en Buenos Aires"
}`

const (
	PromptGeneral = headerPrompt +
		"dc.language, dc.subject, dc.title, dc.type, sedici.creator.person, sedici.subject.materias" +
		middlePrompt + jsonGeneral + endPrompt

	PromptTesis = headerPrompt +
		"dc.language, dc.subject, dc.title, dc.type, sedici.creator.person, sedici.subject.materias, sedici.contributor.director, sedici.contributor.codirector, thesis.degree.name, thesis.degree.grantor, sedici.date.exposure" +
		middlePrompt + jsonTesis + endPrompt

	PromptArticulo = headerPrompt +
		"dc.language, dc.subject, dc.title, dc.type, sedici.creator.person, sedici.subject.materias, sedici.title.subtitle, sedici.relation.journalTitle, sedici.relation.journalVolumeAndIssue, sedici.identifier.issn" +
		middlePrompt + jsonArticulo + endPrompt

	PromptConferencia = headerPrompt +
		"dc.language, dc.subject, dc.title, dc.type, sedici.creator.person, sedici.subject.materias, sedici.relation.event, sedici.date.exposure" +
		middlePrompt + jsonConferencia + endPrompt

	PromptLibro = headerPrompt +
		"dc.language, dc.subject, dc.title, dc.type, sedici.creator.person, sedici.subject.materias, sedici.title.subtitle" +
		middlePrompt + jsonLibro + endPrompt
)
