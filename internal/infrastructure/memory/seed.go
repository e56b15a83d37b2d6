package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/facturacion-sv/internal/domain/entity"
	"golang.org/x/crypto/bcrypt"
)

// Datos demo sembrados al inicio. El sistema no tiene flujo de creación de
// DTE en este alcance: los documentos solo entran por aquí.

// DemoUser credenciales de un usuario demo.
type DemoUser struct {
	Email    string
	Name     string
	Role     string
	Password string
}

// SeedUsers siembra los usuarios demo con el password hasheado con bcrypt.
func SeedUsers(repo *UserRepository, users []DemoUser) error {
	now := time.Now()
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := repo.Create(&entity.User{
			ID:           uuid.New().String(),
			Email:        u.Email,
			PasswordHash: string(hash),
			Name:         u.Name,
			Role:         u.Role,
			CreatedAt:    now,
		}); err != nil {
			return err
		}
	}
	return nil
}

// SeedCatalog siembra productos y clientes demo.
func SeedCatalog(products *ProductRepository, clients *ClientRepository) error {
	for _, p := range demoProducts() {
		if err := products.Create(p); err != nil {
			return err
		}
	}
	for _, c := range demoClients() {
		if err := clients.Create(c); err != nil {
			return err
		}
	}
	return nil
}

// SeedDTEDocuments devuelve los DTE demo para NewDTERepository.
func SeedDTEDocuments() []*entity.DTEDocument {
	return []*entity.DTEDocument{
		{
			ID:             "1",
			DocumentNumber: "DTE001-001",
			Type:           entity.DocTypeFactura,
			ClientName:     "Juan Pérez",
			Date:           time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			Total:          decimal.RequireFromString("125.50"),
			Status:         entity.DTEStatusEnviado,
			GenerationCode: "A1DC304-C374-8901-ABC0-12345678912",
			ReceptionSeal:  "MH-DTE-2024-001",
		},
		{
			ID:             "2",
			DocumentNumber: "DTE001-002",
			Type:           entity.DocTypeCreditoFiscal,
			ClientName:     "María González",
			Date:           time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
			Total:          decimal.RequireFromString("89.75"),
			Status:         entity.DTEStatusProcesando,
			GenerationCode: "B2CD455-F467-8901-BCD1-23456789123",
			ReceptionSeal:  "N/A",
		},
		{
			ID:             "3",
			DocumentNumber: "DTE001-003",
			Type:           entity.DocTypeNotaRemision,
			ClientName:     "Carlos Rodríguez",
			Date:           time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
			Total:          decimal.RequireFromString("256.00"),
			Status:         entity.DTEStatusRechazado,
			GenerationCode: "C3DE566-G578-9012-CDE2-34567890134",
			ReceptionSeal:  "N/A",
		},
		{
			ID:             "4",
			DocumentNumber: "DTE001-004",
			Type:           entity.DocTypeFactura,
			ClientName:     "Ana Martínez",
			Date:           time.Date(2024, 1, 18, 0, 0, 0, 0, time.UTC),
			Total:          decimal.RequireFromString("45.25"),
			Status:         entity.DTEStatusPendiente,
			GenerationCode: "D4EF677-H689-0123-DEF3-45678901245",
			ReceptionSeal:  "N/A",
		},
	}
}

func demoProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:          "1",
			Code:        "PROD001",
			Name:        "Laptop Dell Inspiron 15",
			Description: "Laptop Dell Inspiron 15 pulgadas, 8GB RAM, 256GB SSD",
			Price:       decimal.RequireFromString("899.99"),
			Stock:       25,
			Category:    "Electrónicos",
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Code:        "PROD002",
			Name:        "Mouse Inalámbrico Logitech",
			Description: "Mouse inalámbrico Logitech MX Master 3",
			Price:       decimal.RequireFromString("45.50"),
			Stock:       100,
			Category:    "Accesorios",
			CreatedAt:   time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Code:        "PROD003",
			Name:        "Teclado Mecánico RGB",
			Description: "Teclado mecánico con iluminación RGB",
			Price:       decimal.RequireFromString("120.00"),
			Stock:       50,
			Category:    "Accesorios",
			CreatedAt:   time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC),
		},
	}
}

func demoClients() []*entity.Client {
	return []*entity.Client{
		{
			ID:        "1",
			Name:      "María González",
			Email:     "maria.gonzalez@email.com",
			Phone:     "7555-1234",
			DUI:       "12345678-9",
			NIT:       "0614-120589-101-2",
			NRC:       "123456-7",
			Address:   "Col. Escalón, San Salvador",
			CreatedAt: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			Name:      "Carlos Rodríguez",
			Email:     "carlos.rodriguez@email.com",
			Phone:     "7555-5678",
			DUI:       "87654321-0",
			NIT:       "0614-150690-102-1",
			NRC:       "234567-8",
			Address:   "Col. San Benito, San Salvador",
			CreatedAt: time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:        "3",
			Name:      "Ana Martínez",
			Email:     "ana.martinez@email.com",
			Phone:     "7555-9012",
			DUI:       "11223344-5",
			NIT:       "0614-180791-103-5",
			NRC:       "345678-9",
			Address:   "Col. Centroamérica, San Salvador",
			CreatedAt: time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
		},
	}
}
