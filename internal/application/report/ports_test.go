package report_test

import "github.com/jhoicas/rustock/internal/domain/repository"

// Interfaces embebidas en los fakes; los métodos no usados entran en pánico si se llaman.
type (
	productsPort  = repository.ProductRepository
	salesPort     = repository.SaleRepository
	purchasesPort = repository.PurchaseRepository
)
