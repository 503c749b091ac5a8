package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strings"
	"sync"
)

// Clasificadores de tipo y materia. Los artefactos entrenados con scikit-learn
// se exportan a JSON (vocabulario, vector idf, coeficientes lineales,
// intercepts y etiquetas en el orden de las filas de coeficientes); acá se
// implementa el transform TF-IDF y la regla de decisión lineal.

type classifierArtifact struct {
	Vocabulary map[string]int `json:"vocabulary"`
	IDF        []float64      `json:"idf"`
	Coef       [][]float64    `json:"coef"`
	Intercept  []float64      `json:"intercept"`
	Labels     []string       `json:"labels"`
}

// LinearClassifier es el par vectorizador + clasificador cargado de un
// artefacto. Inmutable después de la carga; seguro para uso concurrente.
type LinearClassifier struct {
	artifact classifierArtifact
}

// Mismo patrón de tokens que el vectorizador de entrenamiento: palabras de
// dos o más caracteres
var tokenRe = regexp.MustCompile(`[\pL\p{Nd}_]{2,}`)

// LoadClassifier lee y valida un artefacto serializado
func LoadClassifier(path string) (*LinearClassifier, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error al abrir artefacto del clasificador: %w", err)
	}
	var artifact classifierArtifact
	if err := json.Unmarshal(raw, &artifact); err != nil {
		return nil, fmt.Errorf("error al parsear artefacto del clasificador: %w", err)
	}
	if len(artifact.Vocabulary) == 0 || len(artifact.Coef) == 0 || len(artifact.Labels) == 0 {
		return nil, errors.New("artefacto del clasificador incompleto")
	}
	if len(artifact.IDF) != len(artifact.Vocabulary) {
		return nil, errors.New("vector idf no coincide con el vocabulario")
	}
	for term, idx := range artifact.Vocabulary {
		if idx < 0 || idx >= len(artifact.IDF) {
			return nil, fmt.Errorf("índice fuera de rango en el vocabulario: %q -> %d", term, idx)
		}
	}
	for i, row := range artifact.Coef {
		if len(row) != len(artifact.Vocabulary) {
			return nil, fmt.Errorf("fila de coeficientes %d no coincide con el vocabulario", i)
		}
	}
	if len(artifact.Intercept) != len(artifact.Coef) {
		return nil, errors.New("vector de intercepts no coincide con los coeficientes")
	}
	// Una sola fila implica clasificador binario con dos etiquetas
	wantLabels := len(artifact.Coef)
	if len(artifact.Coef) == 1 {
		wantLabels = 2
	}
	if len(artifact.Labels) != wantLabels {
		return nil, errors.New("etiquetas no coinciden con los coeficientes")
	}
	return &LinearClassifier{artifact: artifact}, nil
}

// Predict vectoriza el texto y devuelve la etiqueta de mayor puntaje
func (c *LinearClassifier) Predict(text string) string {
	features := c.vectorize(text)

	// Con una sola fila de coeficientes el clasificador es binario: el signo
	// del puntaje decide entre las dos etiquetas
	if len(c.artifact.Coef) == 1 && len(c.artifact.Labels) == 2 {
		if c.score(0, features) > 0 {
			return c.artifact.Labels[1]
		}
		return c.artifact.Labels[0]
	}

	best := 0
	bestScore := math.Inf(-1)
	for i := range c.artifact.Coef {
		if s := c.score(i, features); s > bestScore {
			bestScore = s
			best = i
		}
	}
	return c.artifact.Labels[best]
}

func (c *LinearClassifier) score(class int, features map[int]float64) float64 {
	score := c.artifact.Intercept[class]
	row := c.artifact.Coef[class]
	for idx, value := range features {
		score += row[idx] * value
	}
	return score
}

// vectorize aplica el mismo preprocesamiento del entrenamiento (colapsar
// espacios y pasar a minúsculas) y el transform tf-idf con norma l2
func (c *LinearClassifier) vectorize(text string) map[int]float64 {
	text = strings.ToLower(strings.Join(strings.Fields(text), " "))

	counts := make(map[int]float64)
	for _, token := range tokenRe.FindAllString(text, -1) {
		if idx, ok := c.artifact.Vocabulary[token]; ok {
			counts[idx]++
		}
	}

	var norm float64
	for idx := range counts {
		counts[idx] *= c.artifact.IDF[idx]
		norm += counts[idx] * counts[idx]
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range counts {
			counts[idx] /= norm
		}
	}
	return counts
}

// lazyClassifier carga el artefacto una sola vez en el primer uso y queda
// inmutable hasta el reinicio del proceso
type lazyClassifier struct {
	path string
	once sync.Once
	clf  *LinearClassifier
	err  error
}

func (l *lazyClassifier) get() (*LinearClassifier, error) {
	l.once.Do(func() {
		l.clf, l.err = LoadClassifier(l.path)
	})
	return l.clf, l.err
}
