package product

// Service answers catalog queries for the HTTP layer and other packages.
type Service struct {
	catalog *Catalog
}

func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog}
}

// ServiceInterface is what collaborators such as the cart handler depend on.
type ServiceInterface interface {
	GetByID(id string) (Product, error)
	GetBySlug(slug string) (Product, bool)
}

var _ ServiceInterface = (*Service)(nil)

func (s *Service) List() []Product {
	return s.catalog.List()
}

func (s *Service) GetByID(id string) (Product, error) {
	return s.catalog.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Product, bool) {
	return s.catalog.GetBySlug(slug)
}

func (s *Service) ListByCategory(category Category) []Product {
	return s.catalog.ByCategory(category)
}

func (s *Service) Featured(count int) []Product {
	return s.catalog.Featured(count)
}

func (s *Service) Categories() []CategoryItem {
	return s.catalog.Categories()
}

// Query narrows the catalog to q.Category (all products when nil), applies the
// filters and then sorts, the same order the listing pages use.
func (s *Service) Query(q Query) []Product {
	var products []Product
	if q.Category != nil {
		products = s.catalog.ByCategory(*q.Category)
	} else {
		products = s.catalog.List()
	}
	return SortProducts(ApplyFilters(products, q.Filter), q.Sort)
}

func (s *Service) Search(query string, limit int) []Product {
	return Search(s.catalog.List(), query, limit)
}
