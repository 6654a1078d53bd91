package main

import (
	"context"
	"flag"
	"log"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catreq-service/internal/models/m_category"
	"github.com/light-bringer/catreq-service/internal/models/m_supplier"
	"github.com/light-bringer/catreq-service/internal/models/m_team"
	"github.com/light-bringer/catreq-service/internal/models/m_user"
)

// Seeds the directory tables with a minimal working org: the three review
// teams, one manager per approval tier, two staff members, and a couple of
// categories and suppliers to reference from requests.
func main() {
	var spannerDB string
	flag.StringVar(&spannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.Parse()

	if spannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, spannerDB)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	if err := seed(ctx, client); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding completed successfully")
}

func seed(ctx context.Context, client *spanner.Client) error {
	teamModel := m_team.NewModel()
	userModel := m_user.NewModel()
	categoryModel := m_category.NewModel()
	supplierModel := m_supplier.NewModel()

	staffManager := "mgr-staff"
	inventoryManager := "mgr-inventory"

	muts := []*spanner.Mutation{
		teamModel.InsertMut(&m_team.Data{TeamID: 1, Name: "Staff", Kind: m_team.KindStaff}),
		teamModel.InsertMut(&m_team.Data{TeamID: 2, Name: "Inventory Managers", Kind: m_team.KindInventory}),
		teamModel.InsertMut(&m_team.Data{TeamID: 3, Name: "Department Managers", Kind: m_team.KindDepartment}),

		userModel.InsertMut(&m_user.Data{
			UserID: staffManager, FirstName: "Sam", LastName: "Ortiz",
			Email: "sam.ortiz@example.com", TeamID: 1, IsManager: true,
		}),
		userModel.InsertMut(&m_user.Data{
			UserID: "staff-1", FirstName: "Riley", LastName: "Chen",
			Email: "riley.chen@example.com", TeamID: 1,
			ManagerID: spanner.NullString{StringVal: staffManager, Valid: true},
		}),
		userModel.InsertMut(&m_user.Data{
			UserID: "staff-2", FirstName: "Noor", LastName: "Haddad",
			Email: "noor.haddad@example.com", TeamID: 1,
			ManagerID: spanner.NullString{StringVal: staffManager, Valid: true},
		}),
		userModel.InsertMut(&m_user.Data{
			UserID: inventoryManager, FirstName: "Ada", LastName: "Novak",
			Email: "ada.novak@example.com", TeamID: 2, IsManager: true,
		}),
		userModel.InsertMut(&m_user.Data{
			UserID: "mgr-department", FirstName: "Leo", LastName: "Akintola",
			Email: "leo.akintola@example.com", TeamID: 3, IsManager: true,
		}),

		categoryModel.InsertMut(&m_category.Data{CategoryID: 1, Name: "Electronics"}),
		categoryModel.InsertMut(&m_category.Data{CategoryID: 2, Name: "Office Supplies"}),

		supplierModel.InsertMut(&m_supplier.Data{
			SupplierID: 1, FirstName: "Grace", LastName: "Ibarra", Email: "grace@supplier.example.com",
		}),
		supplierModel.InsertMut(&m_supplier.Data{
			SupplierID: 2, FirstName: "Tomas", LastName: "Keller", Email: "tomas@supplier.example.com",
		}),
	}

	if _, err := client.Apply(ctx, muts); err != nil {
		return err
	}

	log.Printf("Wrote %d rows", len(muts))
	return nil
}
