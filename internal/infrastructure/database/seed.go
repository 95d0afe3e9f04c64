package database

import (
	"github.com/pastesytony/pos-api/internal/domain/entity"
	"github.com/pastesytony/pos-api/internal/domain/enum"
)

// SeedEmployee pairs an employee record with its plain terminal PIN.
// The PIN is hashed at seed time; it never reaches storage in clear.
type SeedEmployee struct {
	Name string
	PIN  string
	Role string
}

// DefaultBranches returns the store locations seeded on first run
func DefaultBranches() []entity.Branch {
	return []entity.Branch{
		{
			Name:     "Pastes y Empanadas Tony",
			Address:  "Calle Lisboa 22, Juárez, Cuauhtémoc, 06600 Ciudad de México, CDMX",
			Phone:    "55 2676 6580",
			IsActive: true,
		},
		{
			Name:     "Pastes y Empanadas Toni",
			Address:  "Dr. Jimenez 101-C, Doctores, Cuauhtémoc, 06720 Ciudad de México, CDMX",
			Phone:    "55 2676 6580",
			IsActive: true,
		},
	}
}

// DefaultEmployees returns the register operators seeded on first run
func DefaultEmployees() []SeedEmployee {
	return []SeedEmployee{
		{Name: "Edith", PIN: "123456", Role: entity.RoleCashier},
		{Name: "Daniel", PIN: "567890", Role: entity.RoleCashier},
		{Name: "Administrador", PIN: "999999", Role: entity.RoleAdmin},
	}
}

// DefaultProducts returns the full catalog seeded on first run. Prices
// are tax-inclusive.
func DefaultProducts() []entity.Product {
	return []entity.Product{
		// Pastes Salados
		{ID: "ps-001", Name: "Minero Tradicional", Price: 27.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "ps-002", Name: "Pollo con Mole", Price: 29.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "ps-003", Name: "Tinga de Pollo", Price: 29.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "ps-004", Name: "Hawaiano", Price: 30.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "ps-005", Name: "Champiñones", Price: 28.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "ps-006", Name: "Rajas con Queso", Price: 28.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "ps-007", Name: "Atún", Price: 30.00, Category: enum.CategoryPastesSalados, IsAvailable: true},
		{ID: "ps-008", Name: "Picadillo", Price: 27.00, Category: enum.CategoryPastesSalados, IsAvailable: true},

		// Empanadas Saladas
		{ID: "es-001", Name: "Emp. Pollo", Price: 25.00, Category: enum.CategoryEmpanadasSaladas, IsAvailable: true},
		{ID: "es-002", Name: "Emp. Carne", Price: 25.00, Category: enum.CategoryEmpanadasSaladas, IsAvailable: true},
		{ID: "es-003", Name: "Emp. Queso", Price: 24.00, Category: enum.CategoryEmpanadasSaladas, IsAvailable: true},
		{ID: "es-004", Name: "Emp. Jamón y Queso", Price: 26.00, Category: enum.CategoryEmpanadasSaladas, IsAvailable: true},
		{ID: "es-005", Name: "Emp. Rajas", Price: 25.00, Category: enum.CategoryEmpanadasSaladas, IsAvailable: true},
		{ID: "es-006", Name: "Emp. Champiñones", Price: 26.00, Category: enum.CategoryEmpanadasSaladas, IsAvailable: true},

		// Empanadas Dulces
		{ID: "ed-001", Name: "Emp. Manzana", Price: 22.00, Category: enum.CategoryEmpanadasDulces, IsAvailable: true},
		{ID: "ed-002", Name: "Emp. Piña", Price: 22.00, Category: enum.CategoryEmpanadasDulces, IsAvailable: true},
		{ID: "ed-003", Name: "Emp. Cajeta", Price: 23.00, Category: enum.CategoryEmpanadasDulces, IsAvailable: true},
		{ID: "ed-004", Name: "Emp. Chocolate", Price: 24.00, Category: enum.CategoryEmpanadasDulces, IsAvailable: true},
		{ID: "ed-005", Name: "Emp. Fresa", Price: 22.00, Category: enum.CategoryEmpanadasDulces, IsAvailable: true},
		{ID: "ed-006", Name: "Emp. Nutella", Price: 26.00, Category: enum.CategoryEmpanadasDulces, IsAvailable: true},

		// Bebidas
		{ID: "bb-001", Name: "Agua Natural", Price: 15.00, Category: enum.CategoryBebidas, IsAvailable: true},
		{ID: "bb-002", Name: "Refresco 355ml", Price: 18.00, Category: enum.CategoryBebidas, IsAvailable: true},
		{ID: "bb-003", Name: "Refresco 600ml", Price: 25.00, Category: enum.CategoryBebidas, IsAvailable: true},
		{ID: "bb-004", Name: "Agua de Sabor", Price: 20.00, Category: enum.CategoryBebidas, IsAvailable: true},
		{ID: "bb-005", Name: "Café Americano", Price: 22.00, Category: enum.CategoryBebidas, IsAvailable: true},
		{ID: "bb-006", Name: "Jugo Natural", Price: 28.00, Category: enum.CategoryBebidas, IsAvailable: true},

		// Promociones
		{ID: "pm-001", Name: "Combo 2 Pastes + Refresco", Price: 70.00, Category: enum.CategoryPromociones, IsAvailable: true},
		{ID: "pm-002", Name: "Combo 3 Empanadas + Bebida", Price: 85.00, Category: enum.CategoryPromociones, IsAvailable: true},
		{ID: "pm-003", Name: "Combo Familiar (6 Pastes)", Price: 150.00, Category: enum.CategoryPromociones, IsAvailable: true},
		{ID: "pm-004", Name: "Combo Dulce (4 Emp. + Café)", Price: 95.00, Category: enum.CategoryPromociones, IsAvailable: true},
	}
}
