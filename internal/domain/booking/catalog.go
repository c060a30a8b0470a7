package booking

// ===============================
// Catálogo de Serviços
// ===============================

type Service struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DurationMin int    `json:"duration_min"`
	Price       int    `json:"price"` // em reais
}

// Catalog é imutável após a construção e compartilhado entre requisições.
type Catalog struct {
	services map[string]Service
	order    []string
}

func NewCatalog(services []Service) *Catalog {
	c := &Catalog{
		services: make(map[string]Service, len(services)),
		order:    make([]string, 0, len(services)),
	}
	for _, s := range services {
		c.services[s.ID] = s
		c.order = append(c.order, s.ID)
	}
	return c
}

// DefaultCatalog retorna a tabela de serviços do estúdio.
func DefaultCatalog() *Catalog {
	return NewCatalog([]Service{
		{ID: "volume-brasileiro", Name: "Volume Brasileiro", DurationMin: 90, Price: 130},
		{ID: "volume-5d", Name: "Volume 5D", DurationMin: 90, Price: 150},
		{ID: "mega-volume", Name: "Mega Volume", DurationMin: 120, Price: 180},
		{ID: "designer-simples", Name: "Designer de Sobrancelha Simples", DurationMin: 30, Price: 30},
		{ID: "designer-henna", Name: "Designer de Sobrancelha com Henna", DurationMin: 45, Price: 50},
		{ID: "limpeza-pele", Name: "Limpeza de Pele / Dermaplaning", DurationMin: 60, Price: 100},
		{ID: "manutencao-vb-5d", Name: "Manutenção (Vol. Brasileiro/5D)", DurationMin: 60, Price: 95},
		{ID: "manutencao-mega", Name: "Manutenção (Mega Volume)", DurationMin: 60, Price: 100},
		{ID: "remocao", Name: "Remoção", DurationMin: 30, Price: 30},
	})
}

func (c *Catalog) Lookup(id string) (Service, bool) {
	s, ok := c.services[id]
	return s, ok
}

// List retorna os serviços na ordem de cadastro.
func (c *Catalog) List() []Service {
	out := make([]Service, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.services[id])
	}
	return out
}
