package services

// Catálogo de arquitecturas soportadas por el servicio LLM. MODEL_SELECTED
// elige la entrada; MODEL_PATH puede pisar el modelo base (pesos fine-tuned).

type modelFamily int

const (
	familySeq2Seq modelFamily = iota
	familyCausal
)

type modelSpec struct {
	baseModel string
	family    modelFamily
	// Los tokenizers de las familias causal son rápidos (no estándar) y
	// fuerzan truncamiento only_first
	standardTokenizer bool
	// Nombre del modelo en un host de chat compatible con Ollama
	chatTag string
}

var modelCatalog = map[string]modelSpec{
	"LED":         {baseModel: "allenai/led-base-16384", family: familySeq2Seq, standardTokenizer: true},
	"LED_SPANISH": {baseModel: "vgaraujov/led-base-16384-spanish", family: familySeq2Seq, standardTokenizer: true},
	"LED_LARGE":   {baseModel: "allenai/led-large-16384", family: familySeq2Seq, standardTokenizer: true},
	"T5":          {baseModel: "google-t5/t5-base", family: familySeq2Seq, standardTokenizer: true},
	"LLAMA":       {baseModel: "meta-llama/Llama-3.2-1B", family: familyCausal, chatTag: "llama3.2"},
	"GEMMA":       {baseModel: "google/gemma-3-1b-pt", family: familyCausal, chatTag: "gemma3"},
	"QWEN":        {baseModel: "Qwen/Qwen3-4B", family: familyCausal, chatTag: "qwen3"},
	"DEEPSEK_QWEN": {
		baseModel: "deepseek-ai/DeepSeek-R1-Distill-Qwen-1.5B",
		family:    familyCausal,
		chatTag:   "deepseek-r1",
	},
	"NUEXTRACT": {baseModel: "numind/NuExtract-tiny", family: familyCausal, chatTag: "nuextract"},
	"MISTRAL":   {baseModel: "mistralai/Mistral-7B-v0.1", family: familyCausal, chatTag: "mistral"},
}

// resolveModelSpec busca la entrada del catálogo para MODEL_SELECTED,
// cayendo en LED si el valor no se reconoce
func resolveModelSpec(selected string) modelSpec {
	if spec, ok := modelCatalog[selected]; ok {
		return spec
	}
	return modelCatalog["LED"]
}
