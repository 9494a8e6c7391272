package sampling

import (
	"math/rand"
	"strings"
	"sync"
)

// Picker sorteia cores da paleta; seguro para uso concorrente
type Picker struct {
	mu      sync.Mutex
	rng     *rand.Rand
	palette []string
	suffix  string
}

func NewPicker(palette []string, suffix string, rng *rand.Rand) *Picker {
	return &Picker{
		rng:     rng,
		palette: palette,
		suffix:  suffix,
	}
}

func (p *Picker) Color() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.palette[p.rng.Intn(len(p.palette))]
}

// Title monta "<cor> <sufixo>", ex: "Red Snowboard"
func (p *Picker) Title() string {
	return strings.TrimSpace(p.Color() + " " + p.suffix)
}
