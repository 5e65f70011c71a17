package templates

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/osteele/liquid"
)

//go:embed *.liquid
var files embed.FS

// Renderer рендерит встроенные liquid шаблоны, разобранные шаблоны кешируются
type Renderer struct {
	engine *liquid.Engine

	mu     sync.RWMutex
	parsed map[string]*liquid.Template
}

// NewRenderer создает рендерер с фильтрами дашборда
func NewRenderer() *Renderer {
	engine := liquid.NewEngine()
	engine.RegisterFilter("initials", Initials)

	return &Renderer{
		engine: engine,
		parsed: make(map[string]*liquid.Template),
	}
}

// Render рендерит шаблон name (без расширения .liquid)
func (r *Renderer) Render(name string, data map[string]interface{}) ([]byte, error) {
	tpl, err := r.template(name)
	if err != nil {
		return nil, err
	}

	out, renderErr := tpl.Render(data)
	if renderErr != nil {
		return nil, fmt.Errorf("failed to render template %s: %w", name, renderErr)
	}
	return out, nil
}

func (r *Renderer) template(name string) (*liquid.Template, error) {
	r.mu.RLock()
	tpl, ok := r.parsed[name]
	r.mu.RUnlock()
	if ok {
		return tpl, nil
	}

	source, err := files.ReadFile(name + ".liquid")
	if err != nil {
		return nil, fmt.Errorf("template %s not found: %w", name, err)
	}

	tpl, parseErr := r.engine.ParseTemplate(source)
	if parseErr != nil {
		return nil, fmt.Errorf("failed to parse template %s: %w", name, parseErr)
	}

	r.mu.Lock()
	r.parsed[name] = tpl
	r.mu.Unlock()

	return tpl, nil
}

// Initials - первые буквы первых двух слов имени, для аватара клиента
func Initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		out = append(out, []rune(word)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}
