// Package idgen genera semillas únicas y ordenadas en el tiempo para
// códigos de barra y nombres de archivo de imágenes.
package idgen

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/snowflake"
)

// Generator entrega una semilla única por llamada
type Generator interface {
	NextID() string
}

// SnowflakeGenerator usa un nodo snowflake (timestamp en ms + secuencia)
type SnowflakeGenerator struct {
	node *snowflake.Node
}

// NewSnowflake crea un generador para el nodo indicado (0..1023)
func NewSnowflake(nodeID int64) (*SnowflakeGenerator, error) {
	node, err := snowflake.NewNode(nodeID)
	if err != nil {
		return nil, fmt.Errorf("snowflake node %d: %w", nodeID, err)
	}
	return &SnowflakeGenerator{node: node}, nil
}

func (g *SnowflakeGenerator) NextID() string {
	return g.node.Generate().String()
}

// Sequence devuelve semillas fijas en orden; pensado para pruebas
type Sequence struct {
	mu   sync.Mutex
	ids  []string
	next int
}

func NewSequence(ids ...string) *Sequence {
	return &Sequence{ids: ids}
}

// NextID repite la última semilla cuando la lista se agota
func (s *Sequence) NextID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.ids) == 0 {
		return ""
	}
	if s.next >= len(s.ids) {
		return s.ids[len(s.ids)-1]
	}
	id := s.ids[s.next]
	s.next++
	return id
}
