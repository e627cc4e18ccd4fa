package migrating

import (
	"github.com/vfg2006/sales-report-api/internal/config"
	"github.com/vfg2006/sales-report-api/pkg/utils"
)

// IdentityMap guarda, durante uma execução, o id gerado para cada chave natural
type IdentityMap[K comparable] struct {
	ids map[K]int64
}

func NewIdentityMap[K comparable]() *IdentityMap[K] {
	return &IdentityMap[K]{ids: make(map[K]int64)}
}

// ResolveOrCreate devolve o id já conhecido para key ou chama create uma única
// vez. Se create falhar nada é registrado.
func (m *IdentityMap[K]) ResolveOrCreate(key K, create func() (int64, error)) (int64, error) {
	if id, ok := m.ids[key]; ok {
		return id, nil
	}

	id, err := create()
	if err != nil {
		return 0, err
	}

	m.ids[key] = id
	return id, nil
}

func (m *IdentityMap[K]) Len() int {
	return len(m.ids)
}

// ClientIdentities aplica a política de clientes sem documento sobre um IdentityMap
type ClientIdentities struct {
	byDocument *IdentityMap[string]
	policy     string
}

func NewClientIdentities(policy string) *ClientIdentities {
	return &ClientIdentities{
		byDocument: NewIdentityMap[string](),
		policy:     policy,
	}
}

// Resolve usa o documento como chave. Sem documento, a política distinct cria
// sempre um cliente novo e a shared reaproveita um único cliente na execução.
func (c *ClientIdentities) Resolve(document *string, create func() (int64, error)) (int64, error) {
	key := DocumentKey(document)
	if key == nil {
		if c.policy != config.NullDocumentShared {
			return create()
		}
		// documentos vazios nunca viram chave, então "" não colide
		return c.byDocument.ResolveOrCreate("", create)
	}

	return c.byDocument.ResolveOrCreate(*key, create)
}

// DocumentKey normaliza o documento do cliente. Vazio vira nil.
func DocumentKey(document *string) *string {
	return utils.TrimToNil(document)
}

// runState concentra os mapas de identidade de uma única execução
type runState struct {
	clients  *ClientIdentities
	products *IdentityMap[string]
}

func newRunState(policy string) *runState {
	return &runState{
		clients:  NewClientIdentities(policy),
		products: NewIdentityMap[string](),
	}
}
