package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/catreq-service/internal/app/request/contracts"
	"github.com/light-bringer/catreq-service/internal/app/request/domain/services"
	"github.com/light-bringer/catreq-service/internal/app/request/queries/get_request"
	"github.com/light-bringer/catreq-service/internal/app/request/queries/list_requests"
	"github.com/light-bringer/catreq-service/internal/app/request/queries/list_workloads"
	"github.com/light-bringer/catreq-service/internal/app/request/repo"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/allocate_sku"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/apply_decision"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/assign_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/create_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/delete_product_request"
	"github.com/light-bringer/catreq-service/internal/app/request/usecases/update_request"
	"github.com/light-bringer/catreq-service/internal/pkg/clock"
	"github.com/light-bringer/catreq-service/internal/pkg/committer"
	"github.com/light-bringer/catreq-service/tests/testutil"
)

// Services holds all use cases and queries for E2E tests.
type Services struct {
	// Commands
	CreateRequest        *create_request.Interactor
	UpdateRequest        *update_request.Interactor
	DeleteProductRequest *delete_product_request.Interactor
	ApplyDecision        *apply_decision.Interactor
	AssignRequest        *assign_request.Interactor
	AllocateSKU          *allocate_sku.Interactor

	// Queries
	GetRequest    *get_request.Query
	ListRequests  *list_requests.Query
	ListWorkloads *list_workloads.Query

	// Infrastructure
	Clock     clock.Clock
	Client    *spanner.Client
	Committer *committer.Committer
	Repo      contracts.RequestRepository
}

// setupTest initializes all dependencies for E2E testing and seeds the
// directory fixtures every workflow depends on.
func setupTest(t *testing.T) (*Services, func()) {
	t.Helper()

	// Setup Spanner client with clean database
	client, cleanup := testutil.SetupSpannerTest(t)
	testutil.SeedDirectory(t, client)

	// Create infrastructure components
	clk := clock.NewRealClock()
	comm := committer.NewCommitter(client)

	// Create repositories and adapters
	requestRepo := repo.NewRequestRepo(client, clk)
	catalogStore := repo.NewCatalogStore(client)
	directory := repo.NewDirectory(client)
	outboxRepo := repo.NewOutboxRepo(client)
	readModel := repo.NewReadModel(client)
	skuIndex := repo.NewSKUIndex(client)

	// Create domain services
	skuAllocator := services.NewSKUAllocator(skuIndex)

	// Create command use cases
	createRequestUseCase := create_request.NewInteractor(requestRepo, catalogStore, directory, outboxRepo, comm, clk)
	updateRequestUseCase := update_request.NewInteractor(requestRepo, directory, skuIndex, outboxRepo, comm, clk)
	deleteProductRequestUseCase := delete_product_request.NewInteractor(requestRepo, catalogStore, directory, outboxRepo, comm, clk)
	applyDecisionUseCase := apply_decision.NewInteractor(requestRepo, catalogStore, directory, outboxRepo, comm, clk)
	assignRequestUseCase := assign_request.NewInteractor(requestRepo, directory, outboxRepo, comm, clk)
	allocateSKUUseCase := allocate_sku.NewInteractor(skuAllocator)

	// Create query use cases
	getRequestQuery := get_request.NewQuery(readModel)
	listRequestsQuery := list_requests.NewQuery(readModel, directory)
	listWorkloadsQuery := list_workloads.NewQuery(readModel, directory)

	svcs := &Services{
		CreateRequest:        createRequestUseCase,
		UpdateRequest:        updateRequestUseCase,
		DeleteProductRequest: deleteProductRequestUseCase,
		ApplyDecision:        applyDecisionUseCase,
		AssignRequest:        assignRequestUseCase,
		AllocateSKU:          allocateSKUUseCase,
		GetRequest:           getRequestQuery,
		ListRequests:         listRequestsQuery,
		ListWorkloads:        listWorkloadsQuery,
		Clock:                clk,
		Client:               client,
		Committer:            comm,
		Repo:                 requestRepo,
	}

	return svcs, cleanup
}

// ctx returns a context for testing.
func ctx() context.Context {
	return context.Background()
}
